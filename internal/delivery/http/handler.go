package http //nolint:revive // directory-based package name, imported with alias

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	paychangu "github.com/Xausdorf/paychangu-go"
	"github.com/Xausdorf/paychangu-go/internal/domain/checkout"
	"github.com/Xausdorf/paychangu-go/internal/domain/entity"
	"github.com/Xausdorf/paychangu-go/internal/domain/repository"
	"github.com/Xausdorf/paychangu-go/internal/usecase/createlink"
	"github.com/Xausdorf/paychangu-go/internal/usecase/generateqr"
	"github.com/Xausdorf/paychangu-go/internal/usecase/verify"
)

const idempotencyHeader = "X-Idempotency-Key"

type Handler struct {
	createLinkUC *createlink.UseCase
	verifyUC     *verify.UseCase
	generateQRUC *generateqr.UseCase
	logger       *slog.Logger
}

func NewHandler(
	createLinkUC *createlink.UseCase,
	verifyUC *verify.UseCase,
	generateQRUC *generateqr.UseCase,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		createLinkUC: createLinkUC,
		verifyUC:     verifyUC,
		generateQRUC: generateQRUC,
		logger:       logger,
	}
}

type CreateLinkRequest struct {
	Amount      decimal.NullDecimal `json:"amount"`
	Currency    string              `json:"currency"`
	Email       string              `json:"email"`
	FirstName   string              `json:"first_name"`
	LastName    string              `json:"last_name"`
	CallbackURL string              `json:"callback_url"`
	ReturnURL   string              `json:"return_url"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
}

type CreateLinkResponse struct {
	TxRef       string `json:"tx_ref"`
	CheckoutURL string `json:"checkout_url"`
	Status      string `json:"status"`
}

type VerifyResponse struct {
	TxRef    string          `json:"tx_ref"`
	Status   string          `json:"status"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) HandleCreateLink(w http.ResponseWriter, r *http.Request) {
	idempotencyKey := r.Header.Get(idempotencyHeader)
	if idempotencyKey == "" {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: idempotencyHeader + " header required"})
		return
	}

	var req CreateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return
	}

	resp, err := h.createLinkUC.Execute(r.Context(), createlink.Request{
		IdempotencyKey: idempotencyKey,
		Amount:         req.Amount,
		Currency:       req.Currency,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		CallbackURL:    req.CallbackURL,
		ReturnURL:      req.ReturnURL,
		Title:          req.Title,
		Description:    req.Description,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, CreateLinkResponse{
		TxRef:       resp.TxRef,
		CheckoutURL: resp.CheckoutURL,
		Status:      string(resp.Status),
	})
}

func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	resp, err := h.verifyUC.Execute(r.Context(), verify.Request{TxRef: chi.URLParam(r, "tx_ref")})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, VerifyResponse{
		TxRef:    resp.TxRef,
		Status:   string(resp.Status),
		Amount:   resp.Amount,
		Currency: resp.Currency,
	})
}

func (h *Handler) HandleQR(w http.ResponseWriter, r *http.Request) {
	png, err := h.generateQRUC.Execute(r.Context(), generateqr.Request{TxRef: chi.URLParam(r, "tx_ref")})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(png)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"error", err,
		)
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, paychangu.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, paychangu.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrPaymentSettled), errors.Is(err, entity.ErrAmountMismatch):
		return http.StatusConflict
	case errors.Is(err, paychangu.ErrAPI), errors.Is(err, checkout.ErrMalformedResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

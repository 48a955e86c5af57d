package provider

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	paychangu "github.com/Xausdorf/paychangu-go"
	"github.com/Xausdorf/paychangu-go/internal/domain/checkout"
)

// API is the part of *paychangu.Client the gateway needs.
type API interface {
	CreatePaymentLink(ctx context.Context, req paychangu.PaymentLinkRequest) (*paychangu.Response, error)
	VerifyPayment(ctx context.Context, txRef string) (*paychangu.Response, error)
}

type Client struct {
	api API
}

func NewClient(api API) *Client {
	return &Client{api: api}
}

type linkResponse struct {
	Data struct {
		TxRef       string `json:"tx_ref"`
		CheckoutURL string `json:"checkout_url"`
	} `json:"data"`
}

type verifyResponse struct {
	Data struct {
		TxRef    string          `json:"tx_ref"`
		Status   string          `json:"status"`
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency"`
	} `json:"data"`
}

func (c *Client) CreateLink(ctx context.Context, req checkout.LinkRequest) (*checkout.Link, error) {
	resp, err := c.api.CreatePaymentLink(ctx, paychangu.PaymentLinkRequest{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CallbackURL: req.CallbackURL,
		ReturnURL:   req.ReturnURL,
		TxRef:       req.TxRef,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	var body linkResponse
	if err := resp.Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %w", checkout.ErrMalformedResponse, err)
	}
	if body.Data.CheckoutURL == "" {
		return nil, fmt.Errorf("%w: missing data.checkout_url", checkout.ErrMalformedResponse)
	}

	txRef := body.Data.TxRef
	if txRef == "" {
		txRef = req.TxRef
	}
	return &checkout.Link{TxRef: txRef, CheckoutURL: body.Data.CheckoutURL}, nil
}

func (c *Client) Verify(ctx context.Context, txRef string) (*checkout.Verification, error) {
	resp, err := c.api.VerifyPayment(ctx, txRef)
	if err != nil {
		return nil, err
	}

	var body verifyResponse
	if err := resp.Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %w", checkout.ErrMalformedResponse, err)
	}
	if body.Data.Status == "" {
		return nil, fmt.Errorf("%w: missing data.status", checkout.ErrMalformedResponse)
	}

	ref := body.Data.TxRef
	if ref == "" {
		ref = txRef
	}
	return &checkout.Verification{
		TxRef:    ref,
		Status:   body.Data.Status,
		Amount:   body.Data.Amount,
		Currency: body.Data.Currency,
	}, nil
}

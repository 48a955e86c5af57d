package createlink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	paychangu "github.com/Xausdorf/paychangu-go"
	"github.com/Xausdorf/paychangu-go/internal/domain/checkout"
	"github.com/Xausdorf/paychangu-go/internal/domain/entity"
	"github.com/Xausdorf/paychangu-go/internal/domain/repository"
)

type Request struct {
	IdempotencyKey string
	Amount         decimal.NullDecimal
	Currency       string
	Email          string
	FirstName      string
	LastName       string
	CallbackURL    string
	ReturnURL      string
	Title          string
	Description    string
}

type Response struct {
	TxRef       string
	CheckoutURL string
	Status      entity.PaymentStatus
}

type responseCache struct {
	TxRef       string `json:"tx_ref"`
	CheckoutURL string `json:"checkout_url"`
	Status      string `json:"status"`
}

type UseCase struct {
	uow      repository.UnitOfWork
	gateway  checkout.Gateway
	newTxRef func() string
}

func NewUseCase(uow repository.UnitOfWork, gateway checkout.Gateway) *UseCase {
	return &UseCase{
		uow:      uow,
		gateway:  gateway,
		newTxRef: paychangu.NewTxRef,
	}
}

// Execute creates one payment link per idempotency key. Repeated calls with
// the same key return the stored response without contacting the provider.
// Provider failures are not stored, so a retry with the same key tries again.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	cached, err := uc.uow.Idempotency().Find(ctx, req.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return uc.parseCache(cached.ResponseBody())
	}

	tx, err := uc.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.Idempotency().Lock(ctx, req.IdempotencyKey); err != nil {
		return nil, err
	}

	cached, err = tx.Idempotency().Find(ctx, req.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return uc.parseCache(cached.ResponseBody())
	}

	txRef := uc.newTxRef()
	link, err := uc.gateway.CreateLink(ctx, checkout.LinkRequest{
		TxRef:       txRef,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CallbackURL: req.CallbackURL,
		ReturnURL:   req.ReturnURL,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("create payment link: %w", err)
	}

	payment := entity.NewPayment(txRef, req.Amount.Decimal, req.Currency, req.Email, link.CheckoutURL)
	if err := tx.Payments().Create(ctx, payment); err != nil {
		return nil, err
	}

	return uc.saveAndReturn(ctx, tx, req.IdempotencyKey, payment)
}

func (uc *UseCase) saveAndReturn(
	ctx context.Context,
	tx repository.UnitOfWork,
	key string,
	payment *entity.Payment,
) (*Response, error) {
	body, err := json.Marshal(responseCache{
		TxRef:       payment.TxRef(),
		CheckoutURL: payment.CheckoutURL(),
		Status:      string(payment.Status()),
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Idempotency().Save(ctx, entity.NewIdempotencyRecord(key, payment.TxRef(), body)); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &Response{
		TxRef:       payment.TxRef(),
		CheckoutURL: payment.CheckoutURL(),
		Status:      payment.Status(),
	}, nil
}

func (uc *UseCase) parseCache(body []byte) (*Response, error) {
	var cache responseCache
	if err := json.Unmarshal(body, &cache); err != nil {
		return nil, err
	}
	return &Response{
		TxRef:       cache.TxRef,
		CheckoutURL: cache.CheckoutURL,
		Status:      entity.PaymentStatus(cache.Status),
	}, nil
}

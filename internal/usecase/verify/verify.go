package verify

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Xausdorf/paychangu-go/internal/domain/checkout"
	"github.com/Xausdorf/paychangu-go/internal/domain/entity"
	"github.com/Xausdorf/paychangu-go/internal/domain/repository"
)

type Request struct {
	TxRef string
}

type Response struct {
	TxRef    string
	Status   entity.PaymentStatus
	Amount   decimal.Decimal
	Currency string
}

type UseCase struct {
	uow     repository.UnitOfWork
	gateway checkout.Gateway
}

func NewUseCase(uow repository.UnitOfWork, gateway checkout.Gateway) *UseCase {
	return &UseCase{uow: uow, gateway: gateway}
}

// Execute asks the provider for the state of a stored payment and records
// the outcome. A successful verification whose amount or currency differs
// from the stored payment is rejected with entity.ErrAmountMismatch.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	payment, err := uc.uow.Payments().FindByTxRef(ctx, req.TxRef)
	if err != nil {
		return nil, err
	}

	v, err := uc.gateway.Verify(ctx, req.TxRef)
	if err != nil {
		return nil, fmt.Errorf("verify payment %s: %w", req.TxRef, err)
	}

	status := entity.ParseStatus(v.Status)
	if status == entity.StatusSuccess && !payment.Matches(v.Amount, v.Currency) {
		return nil, fmt.Errorf(
			"payment %s: expected %s %s, got %s %s: %w",
			req.TxRef, payment.Amount(), payment.Currency(), v.Amount, v.Currency, entity.ErrAmountMismatch,
		)
	}

	if payment.Resolve(status) {
		if err := uc.uow.Payments().UpdateStatus(ctx, payment.TxRef(), payment.Status()); err != nil {
			return nil, err
		}
	}

	return &Response{
		TxRef:    payment.TxRef(),
		Status:   payment.Status(),
		Amount:   v.Amount,
		Currency: v.Currency,
	}, nil
}

package generateqr

import (
	"context"
	"fmt"

	"github.com/Xausdorf/paychangu-go/internal/domain/entity"
	"github.com/Xausdorf/paychangu-go/internal/domain/qrcode"
	"github.com/Xausdorf/paychangu-go/internal/domain/repository"
)

type Request struct {
	TxRef string
}

type UseCase struct {
	payments  repository.PaymentRepository
	generator qrcode.Generator
}

func NewUseCase(payments repository.PaymentRepository, generator qrcode.Generator) *UseCase {
	return &UseCase{payments: payments, generator: generator}
}

// Execute renders the checkout URL of a pending payment as a QR code.
func (uc *UseCase) Execute(ctx context.Context, req Request) ([]byte, error) {
	payment, err := uc.payments.FindByTxRef(ctx, req.TxRef)
	if err != nil {
		return nil, err
	}
	if payment.Settled() {
		return nil, fmt.Errorf("payment %s is %s: %w", payment.TxRef(), payment.Status(), entity.ErrPaymentSettled)
	}
	return uc.generator.Generate(payment.CheckoutURL())
}

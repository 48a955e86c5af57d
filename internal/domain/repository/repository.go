package repository

//go:generate mockgen -destination=../../mocks/repository.go -package=mocks . PaymentRepository,IdempotencyRepository,UnitOfWork

import (
	"context"
	"errors"

	"github.com/Xausdorf/paychangu-go/internal/domain/entity"
)

var ErrNotFound = errors.New("not found")

type PaymentRepository interface {
	Create(ctx context.Context, p *entity.Payment) error
	FindByTxRef(ctx context.Context, txRef string) (*entity.Payment, error)
	UpdateStatus(ctx context.Context, txRef string, status entity.PaymentStatus) error
}

type IdempotencyRepository interface {
	Find(ctx context.Context, key string) (*entity.IdempotencyRecord, error)
	Save(ctx context.Context, record *entity.IdempotencyRecord) error
	Lock(ctx context.Context, key string) error
}

package postgres

import (
	"context"
	"errors"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Xausdorf/paychangu-go/internal/domain/entity"
	"github.com/Xausdorf/paychangu-go/internal/domain/repository"
)

var errNoTransaction = errors.New("postgres: operation requires a transaction")

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UnitOfWork struct {
	pool *pgxpool.Pool
	tx   pgx.Tx
}

func NewUnitOfWork(pool *pgxpool.Pool) *UnitOfWork {
	return &UnitOfWork{pool: pool}
}

func (u *UnitOfWork) Begin(ctx context.Context) (repository.UnitOfWork, error) {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &UnitOfWork{pool: u.pool, tx: tx}, nil
}

func (u *UnitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	return u.tx.Commit(ctx)
}

func (u *UnitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	return u.tx.Rollback(ctx)
}

func (u *UnitOfWork) Payments() repository.PaymentRepository {
	return &PaymentRepo{q: u.querier()}
}

func (u *UnitOfWork) Idempotency() repository.IdempotencyRepository {
	return &IdempotencyRepo{q: u.querier(), tx: u.tx}
}

func (u *UnitOfWork) querier() querier {
	if u.tx != nil {
		return u.tx
	}
	return u.pool
}

type PaymentRepo struct {
	q querier
}

func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO payments (id, tx_ref, amount, currency, email, checkout_url, status, created_at, updated_at)
		 VALUES ($1, $2, $3::text::numeric, $4, $5, $6, $7, $8, $9)`,
		p.ID().String(), p.TxRef(), p.Amount().String(), p.Currency(), p.Email(),
		p.CheckoutURL(), string(p.Status()), p.CreatedAt(), p.UpdatedAt(),
	)
	return err
}

func (r *PaymentRepo) FindByTxRef(ctx context.Context, txRef string) (*entity.Payment, error) {
	var (
		id, amount, currency, email, checkoutURL, status string
		createdAt, updatedAt                             time.Time
	)
	err := r.q.QueryRow(ctx,
		`SELECT id::text, amount::text, currency, email, checkout_url, status, created_at, updated_at
		 FROM payments WHERE tx_ref = $1`,
		txRef,
	).Scan(&id, &amount, &currency, &email, &checkoutURL, &status, &createdAt, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	paymentID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, err
	}

	return entity.ReconstructPayment(
		paymentID, txRef, value, currency, email, checkoutURL,
		entity.PaymentStatus(status), createdAt, updatedAt,
	), nil
}

func (r *PaymentRepo) UpdateStatus(ctx context.Context, txRef string, status entity.PaymentStatus) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE payments SET status = $2, updated_at = now() WHERE tx_ref = $1`,
		txRef, string(status),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type IdempotencyRepo struct {
	q  querier
	tx pgx.Tx
}

func (r *IdempotencyRepo) Find(ctx context.Context, key string) (*entity.IdempotencyRecord, error) {
	var (
		txRef     string
		body      []byte
		createdAt time.Time
	)
	err := r.q.QueryRow(ctx,
		`SELECT tx_ref, response_body, created_at FROM idempotency_keys WHERE key = $1`,
		key,
	).Scan(&txRef, &body, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entity.ReconstructIdempotencyRecord(key, txRef, body, createdAt), nil
}

func (r *IdempotencyRepo) Save(ctx context.Context, record *entity.IdempotencyRecord) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO idempotency_keys (key, tx_ref, response_body, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (key) DO NOTHING`,
		record.Key(), record.TxRef(), record.ResponseBody(), record.CreatedAt(),
	)
	return err
}

// Lock serializes callers sharing key until the surrounding transaction ends.
func (r *IdempotencyRepo) Lock(ctx context.Context, key string) error {
	if r.tx == nil {
		return errNoTransaction
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	_, err := r.tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(h.Sum64()))
	return err
}

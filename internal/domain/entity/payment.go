package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAmountMismatch = errors.New("verified amount or currency does not match the payment")
	ErrPaymentSettled = errors.New("payment is already settled")
)

type PaymentStatus string

const (
	StatusPending PaymentStatus = "pending"
	StatusSuccess PaymentStatus = "success"
	StatusFailed  PaymentStatus = "failed"
)

// ParseStatus maps a status reported by the provider onto a PaymentStatus.
// Anything that is neither successful nor terminally failed stays pending.
func ParseStatus(s string) PaymentStatus {
	switch s {
	case "success", "successful":
		return StatusSuccess
	case "failed", "cancelled", "canceled", "expired":
		return StatusFailed
	default:
		return StatusPending
	}
}

type Payment struct {
	id          uuid.UUID
	txRef       string
	amount      decimal.Decimal
	currency    string
	email       string
	checkoutURL string
	status      PaymentStatus
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPayment(txRef string, amount decimal.Decimal, currency, email, checkoutURL string) *Payment {
	now := time.Now()
	return &Payment{
		id:          uuid.New(),
		txRef:       txRef,
		amount:      amount,
		currency:    currency,
		email:       email,
		checkoutURL: checkoutURL,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}
}

func ReconstructPayment(
	id uuid.UUID,
	txRef string,
	amount decimal.Decimal,
	currency, email, checkoutURL string,
	status PaymentStatus,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:          id,
		txRef:       txRef,
		amount:      amount,
		currency:    currency,
		email:       email,
		checkoutURL: checkoutURL,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Payment) ID() uuid.UUID {
	return p.id
}

func (p *Payment) TxRef() string {
	return p.txRef
}

func (p *Payment) Amount() decimal.Decimal {
	return p.amount
}

func (p *Payment) Currency() string {
	return p.currency
}

func (p *Payment) Email() string {
	return p.email
}

func (p *Payment) CheckoutURL() string {
	return p.checkoutURL
}

func (p *Payment) Status() PaymentStatus {
	return p.status
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Payment) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Payment) Settled() bool {
	return p.status != StatusPending
}

// Matches reports whether a verified amount and currency equal the ones the
// payment was created with.
func (p *Payment) Matches(amount decimal.Decimal, currency string) bool {
	return p.amount.Equal(amount) && p.currency == currency
}

// Resolve moves a pending payment to status and reports whether anything
// changed. Settled payments keep their status.
func (p *Payment) Resolve(status PaymentStatus) bool {
	if p.Settled() || status == p.status {
		return false
	}
	p.status = status
	p.updatedAt = time.Now()
	return true
}

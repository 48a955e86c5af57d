// Package checkout describes the hosted-checkout provider the gateway talks to.
package checkout

//go:generate mockgen -destination=../../mocks/checkout.go -package=mocks . Gateway

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrMalformedResponse is returned when the provider answers successfully
// but without the fields the gateway relies on.
var ErrMalformedResponse = errors.New("malformed provider response")

type LinkRequest struct {
	TxRef       string
	Amount      decimal.NullDecimal
	Currency    string
	Email       string
	FirstName   string
	LastName    string
	CallbackURL string
	ReturnURL   string
	Title       string
	Description string
}

type Link struct {
	TxRef       string
	CheckoutURL string
}

type Verification struct {
	TxRef    string
	Status   string
	Amount   decimal.Decimal
	Currency string
}

type Gateway interface {
	CreateLink(ctx context.Context, req LinkRequest) (*Link, error)
	Verify(ctx context.Context, txRef string) (*Verification, error)
}

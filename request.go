package paychangu

import "github.com/shopspring/decimal"

// Amounts are decimal.NullDecimal so that an omitted amount can be told apart
// from a zero amount. Use decimal.NewNullDecimal to set one.

// PaymentLinkRequest creates a hosted checkout page.
//
// TxRef is generated when empty. Title and Description are sent under
// "customization"; empty optional fields are sent as null.
type PaymentLinkRequest struct {
	Amount      decimal.NullDecimal
	Currency    string
	Email       string
	FirstName   string
	LastName    string
	CallbackURL string
	ReturnURL   string
	TxRef       string
	Title       string
	Description string
	Logo        string
}

// VirtualCardRequest issues a virtual card. Only CardCurrencies are accepted.
type VirtualCardRequest struct {
	Amount      decimal.NullDecimal
	Currency    string
	FirstName   string
	LastName    string
	CallbackURL string
}

// CardFundsRequest moves funds onto or off an existing virtual card.
type CardFundsRequest struct {
	Amount   decimal.NullDecimal
	CardHash string
}

type AirtimeRequest struct {
	Operator    string
	Amount      decimal.NullDecimal
	Phone       string
	CallbackURL string
}

// MobileMoneyChargeRequest collects a payment directly from a mobile-money wallet.
type MobileMoneyChargeRequest struct {
	Amount      decimal.NullDecimal
	Currency    string
	Email       string
	PhoneNumber string
	Network     string
	FirstName   string
	LastName    string
	CallbackURL string
	ReturnURL   string
	TxRef       string
}

// BankTransferChargeRequest collects a payment by bank transfer.
type BankTransferChargeRequest struct {
	Amount        decimal.NullDecimal
	Currency      string
	Email         string
	BankCode      string
	AccountNumber string
	FirstName     string
	LastName      string
	CallbackURL   string
	ReturnURL     string
	TxRef         string
}

// MobileMoneyPayoutRequest disburses funds to a mobile-money wallet.
type MobileMoneyPayoutRequest struct {
	Amount      decimal.NullDecimal
	Currency    string
	PhoneNumber string
	Network     string
	Reason      string
	Reference   string
}

// BankPayoutRequest disburses funds to a bank account.
type BankPayoutRequest struct {
	Amount        decimal.NullDecimal
	Currency      string
	BankCode      string
	AccountNumber string
	AccountName   string
	Reason        string
	Reference     string
}

package paychangu

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Payload structs fix the field set, order and names sent to the API.

type customization struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type paymentLinkPayload struct {
	Amount        json.Number   `json:"amount"`
	Currency      string        `json:"currency"`
	Email         string        `json:"email"`
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	CallbackURL   string        `json:"callback_url"`
	ReturnURL     string        `json:"return_url"`
	TxRef         string        `json:"tx_ref"`
	Customization customization `json:"customization"`
	Logo          *string       `json:"logo"`
}

type virtualCardPayload struct {
	Amount      json.Number `json:"amount"`
	Currency    string      `json:"currency"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	CallbackURL string      `json:"callback_url"`
}

type cardFundsPayload struct {
	Amount   json.Number `json:"amount"`
	CardHash string      `json:"card_hash"`
}

type airtimePayload struct {
	Operator    string      `json:"operator"`
	Amount      json.Number `json:"amount"`
	Phone       string      `json:"phone"`
	CallbackURL string      `json:"callback_url"`
}

type mobileMoneyChargePayload struct {
	Amount      json.Number `json:"amount"`
	Currency    string      `json:"currency"`
	Email       string      `json:"email"`
	PhoneNumber string      `json:"phone_number"`
	Network     string      `json:"network"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	CallbackURL string      `json:"callback_url"`
	ReturnURL   string      `json:"return_url"`
	TxRef       string      `json:"tx_ref"`
}

type bankTransferChargePayload struct {
	Amount        json.Number `json:"amount"`
	Currency      string      `json:"currency"`
	Email         string      `json:"email"`
	BankCode      string      `json:"bank_code"`
	AccountNumber string      `json:"account_number"`
	FirstName     string      `json:"first_name"`
	LastName      string      `json:"last_name"`
	CallbackURL   string      `json:"callback_url"`
	ReturnURL     string      `json:"return_url"`
	TxRef         string      `json:"tx_ref"`
}

type mobileMoneyPayoutPayload struct {
	Amount      json.Number `json:"amount"`
	Currency    string      `json:"currency"`
	PhoneNumber string      `json:"phone_number"`
	Network     string      `json:"network"`
	Reason      string      `json:"reason"`
	Reference   string      `json:"reference"`
}

type bankPayoutPayload struct {
	Amount        json.Number `json:"amount"`
	Currency      string      `json:"currency"`
	BankCode      string      `json:"bank_code"`
	AccountNumber string      `json:"account_number"`
	AccountName   string      `json:"account_name"`
	Reason        string      `json:"reason"`
	Reference     string      `json:"reference"`
}

func number(amount decimal.NullDecimal) json.Number {
	return json.Number(amount.Decimal.String())
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func buildPaymentLink(r PaymentLinkRequest) (*paymentLinkPayload, error) {
	err := validateRequired(
		required("amount", r.Amount),
		required("currency", r.Currency),
		required("email", r.Email),
		required("first_name", r.FirstName),
		required("last_name", r.LastName),
		required("callback_url", r.CallbackURL),
		required("return_url", r.ReturnURL),
	)
	if err != nil {
		return nil, err
	}
	if err := generalCurrencies.validate(r.Currency); err != nil {
		return nil, err
	}

	return &paymentLinkPayload{
		Amount:      number(r.Amount),
		Currency:    r.Currency,
		Email:       r.Email,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		CallbackURL: r.CallbackURL,
		ReturnURL:   r.ReturnURL,
		TxRef:       txRefOrNew(r.TxRef),
		Customization: customization{
			Title:       nullable(r.Title),
			Description: nullable(r.Description),
		},
		Logo: nullable(r.Logo),
	}, nil
}

func buildVirtualCard(r VirtualCardRequest) (*virtualCardPayload, error) {
	err := validateRequired(
		required("amount", r.Amount),
		required("currency", r.Currency),
		required("first_name", r.FirstName),
		required("last_name", r.LastName),
		required("callback_url", r.CallbackURL),
	)
	if err != nil {
		return nil, err
	}
	if err := cardCurrencies.validate(r.Currency); err != nil {
		return nil, err
	}

	return &virtualCardPayload{
		Amount:      number(r.Amount),
		Currency:    r.Currency,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		CallbackURL: r.CallbackURL,
	}, nil
}

func buildCardFunds(r CardFundsRequest) (*cardFundsPayload, error) {
	err := validateRequired(
		required("amount", r.Amount),
		required("card_hash", r.CardHash),
	)
	if err != nil {
		return nil, err
	}
	return &cardFundsPayload{Amount: number(r.Amount), CardHash: r.CardHash}, nil
}

func buildAirtime(r AirtimeRequest) (*airtimePayload, error) {
	err := validateRequired(
		required("operator", r.Operator),
		required("amount", r.Amount),
		required("phone", r.Phone),
		required("callback_url", r.CallbackURL),
	)
	if err != nil {
		return nil, err
	}
	return &airtimePayload{
		Operator:    r.Operator,
		Amount:      number(r.Amount),
		Phone:       r.Phone,
		CallbackURL: r.CallbackURL,
	}, nil
}

func buildMobileMoneyCharge(r MobileMoneyChargeRequest) (*mobileMoneyChargePayload, error) {
	err := validateRequired(
		required("amount", r.Amount),
		required("currency", r.Currency),
		required("email", r.Email),
		required("phone_number", r.PhoneNumber),
		required("network", r.Network),
		required("first_name", r.FirstName),
		required("last_name", r.LastName),
		required("callback_url", r.CallbackURL),
		required("return_url", r.ReturnURL),
	)
	if err != nil {
		return nil, err
	}
	if err := generalCurrencies.validate(r.Currency); err != nil {
		return nil, err
	}

	return &mobileMoneyChargePayload{
		Amount:      number(r.Amount),
		Currency:    r.Currency,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Network:     r.Network,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		CallbackURL: r.CallbackURL,
		ReturnURL:   r.ReturnURL,
		TxRef:       txRefOrNew(r.TxRef),
	}, nil
}

func buildBankTransferCharge(r BankTransferChargeRequest) (*bankTransferChargePayload, error) {
	err := validateRequired(
		required("amount", r.Amount),
		required("currency", r.Currency),
		required("email", r.Email),
		required("bank_code", r.BankCode),
		required("account_number", r.AccountNumber),
		required("first_name", r.FirstName),
		required("last_name", r.LastName),
		required("callback_url", r.CallbackURL),
		required("return_url", r.ReturnURL),
	)
	if err != nil {
		return nil, err
	}
	if err := generalCurrencies.validate(r.Currency); err != nil {
		return nil, err
	}

	return &bankTransferChargePayload{
		Amount:        number(r.Amount),
		Currency:      r.Currency,
		Email:         r.Email,
		BankCode:      r.BankCode,
		AccountNumber: r.AccountNumber,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		CallbackURL:   r.CallbackURL,
		ReturnURL:     r.ReturnURL,
		TxRef:         txRefOrNew(r.TxRef),
	}, nil
}

func buildMobileMoneyPayout(r MobileMoneyPayoutRequest) (*mobileMoneyPayoutPayload, error) {
	err := validateRequired(
		required("amount", r.Amount),
		required("currency", r.Currency),
		required("phone_number", r.PhoneNumber),
		required("network", r.Network),
		required("reason", r.Reason),
		required("reference", r.Reference),
	)
	if err != nil {
		return nil, err
	}
	if err := generalCurrencies.validate(r.Currency); err != nil {
		return nil, err
	}

	return &mobileMoneyPayoutPayload{
		Amount:      number(r.Amount),
		Currency:    r.Currency,
		PhoneNumber: r.PhoneNumber,
		Network:     r.Network,
		Reason:      r.Reason,
		Reference:   r.Reference,
	}, nil
}

func buildBankPayout(r BankPayoutRequest) (*bankPayoutPayload, error) {
	err := validateRequired(
		required("amount", r.Amount),
		required("currency", r.Currency),
		required("bank_code", r.BankCode),
		required("account_number", r.AccountNumber),
		required("account_name", r.AccountName),
		required("reason", r.Reason),
		required("reference", r.Reference),
	)
	if err != nil {
		return nil, err
	}
	if err := generalCurrencies.validate(r.Currency); err != nil {
		return nil, err
	}

	return &bankPayoutPayload{
		Amount:        number(r.Amount),
		Currency:      r.Currency,
		BankCode:      r.BankCode,
		AccountNumber: r.AccountNumber,
		AccountName:   r.AccountName,
		Reason:        r.Reason,
		Reference:     r.Reference,
	}, nil
}

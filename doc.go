// Package paychangu is a client for the PayChangu payments API.
//
// It covers hosted payment links, virtual cards, airtime top-ups, direct
// mobile-money and bank-transfer charges, payouts and transaction
// verification. A Client is created once per secret key and is safe for
// concurrent use. Every operation validates its request locally, sends
// exactly one HTTPS request and returns either the decoded JSON body or a
// typed error:
//
//	client, err := paychangu.New(os.Getenv("PAYCHANGU_SECRET_KEY"))
//	if err != nil {
//		return err
//	}
//
//	resp, err := client.CreatePaymentLink(ctx, paychangu.PaymentLinkRequest{
//		Amount:      decimal.NewNullDecimal(decimal.NewFromInt(1000)),
//		Currency:    "MWK",
//		Email:       "jane@example.com",
//		FirstName:   "Jane",
//		LastName:    "Banda",
//		CallbackURL: "https://shop.example.com/paychangu/callback",
//		ReturnURL:   "https://shop.example.com/checkout/done",
//	})
//
// Validation failures match ErrInvalidInput and never touch the network.
// Non-2xx responses come back as *APIError and match one of ErrAuthentication,
// ErrBadRequest, ErrNotFound, ErrUnprocessableEntity, and always ErrAPI.
// Nothing is retried.
package paychangu

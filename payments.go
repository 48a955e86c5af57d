package paychangu

import (
	"context"
	"net/url"
)

// CreatePaymentLink creates a hosted checkout session. The checkout URL is
// in data.checkout_url of the response.
func (c *Client) CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (*Response, error) {
	body, err := buildPaymentLink(req)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, pathPayment, body)
}

// VerifyPayment fetches the current state of the transaction txRef.
func (c *Client) VerifyPayment(ctx context.Context, txRef string) (*Response, error) {
	if err := validateRequired(required("tx_ref", txRef)); err != nil {
		return nil, err
	}
	return c.get(ctx, pathVerifyPayment+url.PathEscape(txRef))
}

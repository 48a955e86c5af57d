package paychangu

import (
	"context"
	"net/url"
)

// ChargeMobileMoney starts a direct mobile-money collection. A TxRef is
// generated when the request has none; read it back from the response.
func (c *Client) ChargeMobileMoney(ctx context.Context, req MobileMoneyChargeRequest) (*Response, error) {
	body, err := buildMobileMoneyCharge(req)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, pathMobileMoneyCharge, body)
}

func (c *Client) ChargeBankTransfer(ctx context.Context, req BankTransferChargeRequest) (*Response, error) {
	body, err := buildBankTransferCharge(req)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, pathBankTransferCharge, body)
}

// ChargeDetails returns a single direct charge by transaction reference.
func (c *Client) ChargeDetails(ctx context.Context, txRef string) (*Response, error) {
	if err := validateRequired(required("tx_ref", txRef)); err != nil {
		return nil, err
	}
	return c.get(ctx, pathChargeDetails+url.PathEscape(txRef))
}

package paychangu

import "context"

// PayoutMobileOperators lists the mobile-money networks payouts can target.
func (c *Client) PayoutMobileOperators(ctx context.Context) (*Response, error) {
	return c.get(ctx, pathPayoutOperators)
}

// PayoutBanks lists the banks payouts can target.
func (c *Client) PayoutBanks(ctx context.Context) (*Response, error) {
	return c.get(ctx, pathPayoutBanks)
}

func (c *Client) PayoutMobileMoney(ctx context.Context, req MobileMoneyPayoutRequest) (*Response, error) {
	body, err := buildMobileMoneyPayout(req)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, pathPayoutMobileMoney, body)
}

func (c *Client) PayoutBankAccount(ctx context.Context, req BankPayoutRequest) (*Response, error) {
	body, err := buildBankPayout(req)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, pathPayoutBank, body)
}

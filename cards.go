package paychangu

import "context"

func (c *Client) CreateVirtualCard(ctx context.Context, req VirtualCardRequest) (*Response, error) {
	body, err := buildVirtualCard(req)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, pathVirtualCardCreate, body)
}

func (c *Client) FundCard(ctx context.Context, req CardFundsRequest) (*Response, error) {
	body, err := buildCardFunds(req)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, pathVirtualCardFund, body)
}

func (c *Client) WithdrawCardFunds(ctx context.Context, req CardFundsRequest) (*Response, error) {
	body, err := buildCardFunds(req)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, pathVirtualCardWithdraw, body)
}

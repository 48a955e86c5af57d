package paychangu

import "context"

// AirtimeOperators lists the operators accepted by BuyAirtime.
func (c *Client) AirtimeOperators(ctx context.Context) (*Response, error) {
	return c.get(ctx, pathAirtimeOperators)
}

func (c *Client) BuyAirtime(ctx context.Context, req AirtimeRequest) (*Response, error) {
	body, err := buildAirtime(req)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, pathAirtimeCreate, body)
}

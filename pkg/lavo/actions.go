package lavo

import "context"

// SubmitKYC submits identity documents for verification. The response body
// is not inspected; whether the submission changed anything is learned from
// the next account snapshot.
func (c *Client) SubmitKYC(ctx context.Context, token string, req KYCRequest) error {
	return c.postJSON(ctx, "/kyc/submit", token, req, nil)
}

// Deposit credits an asset balance. Like SubmitKYC, the response body is not
// inspected.
func (c *Client) Deposit(ctx context.Context, token string, req DepositRequest) error {
	return c.postJSON(ctx, "/deposit", token, req, nil)
}

// PlaceOrder submits a market order. Rejection is signalled solely by a
// `detail` field in the response body; an absent detail means acceptance.
func (c *Client) PlaceOrder(ctx context.Context, token string, req OrderRequest) (*OrderResult, error) {
	var result OrderResult
	if err := c.postJSON(ctx, "/trade/order", token, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

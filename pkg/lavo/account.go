package lavo

import "context"

// Me fetches the authoritative account snapshot for the given token. The
// response replaces any previously held snapshot wholesale; missing fields
// decode to zero values and are treated as absent by the caller.
func (c *Client) Me(ctx context.Context, token string) (*AccountSnapshot, error) {
	var snapshot AccountSnapshot
	if err := c.getJSON(ctx, "/me", token, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

package lavo

import "context"

// Prices fetches the current asset-pair price table. The endpoint is
// unauthenticated; an empty table is indistinguishable from an empty market.
func (c *Client) Prices(ctx context.Context) (PriceTable, error) {
	var table PriceTable
	if err := c.getJSON(ctx, "/prices", "", &table); err != nil {
		return nil, err
	}
	if table == nil {
		table = PriceTable{}
	}
	return table, nil
}

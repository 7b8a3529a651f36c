package kasa

import "context"

func (c *Client) Connect(ctx context.Context, host string) (*Device, error) {
	return c.connect(ctx, host)
}

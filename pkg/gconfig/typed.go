package gconfig

import (
	"context"

	"github.com/goliatone/go-gconfig/pkg/value"
)

// String resolves l as text. ok is false when nothing was resolved.
func (c *Config) String(ctx context.Context, l Lookup) (s string, ok bool, err error) {
	res, err := c.Resolve(ctx, value.String, l)
	if err != nil || !res.Found() {
		return "", false, err
	}
	s, _ = value.Parse(value.String, res.Value).(string)
	return s, true, nil
}

// Number resolves l as a float64. Non-numeric values yield NaN, not an error.
func (c *Config) Number(ctx context.Context, l Lookup) (n float64, ok bool, err error) {
	res, err := c.Resolve(ctx, value.Number, l)
	if err != nil || !res.Found() {
		return 0, false, err
	}
	n, _ = value.Parse(value.Number, res.Value).(float64)
	return n, true, nil
}

// Boolean resolves l as a bool; only "true" (any case) is true.
func (c *Config) Boolean(ctx context.Context, l Lookup) (b bool, ok bool, err error) {
	res, err := c.Resolve(ctx, value.Boolean, l)
	if err != nil || !res.Found() {
		return false, false, err
	}
	b, _ = value.Parse(value.Boolean, res.Value).(bool)
	return b, true, nil
}

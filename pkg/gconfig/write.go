package gconfig

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/goliatone/go-gconfig/pkg/secretstore"
)

// Writes go straight to the remote store under the prefixed key. Caches are
// not touched; they only reflect reads.

// CreateSecret creates key in the remote store. Errors are returned unchanged.
func (c *Config) CreateSecret(ctx context.Context, key, val string) error {
	return c.write(ctx, "gconfig.CreateSecret", key, func(ctx context.Context, s secretstore.Store, k string) error {
		return s.CreateSecret(ctx, k, val)
	})
}

// UpdateSecret overwrites key in the remote store. Errors are returned
// unchanged.
func (c *Config) UpdateSecret(ctx context.Context, key, val string) error {
	return c.write(ctx, "gconfig.UpdateSecret", key, func(ctx context.Context, s secretstore.Store, k string) error {
		return s.UpdateSecret(ctx, k, val)
	})
}

// PutSecret updates key, creating it when the store reports it missing.
func (c *Config) PutSecret(ctx context.Context, key, val string) error {
	err := c.UpdateSecret(ctx, key, val)
	if secretstore.IsNotFound(err) {
		return c.CreateSecret(ctx, key, val)
	}
	return err
}

func (c *Config) write(ctx context.Context, op, key string, fn func(context.Context, secretstore.Store, string) error) error {
	store, err := c.Store(ctx)
	if err != nil {
		return err
	}
	remoteKey := c.RemoteKey(key)
	ctx, span := c.tracer.Start(ctx, op, trace.WithAttributes(
		attribute.String("gconfig.remote_key", remoteKey),
	))
	defer span.End()

	if err := fn(ctx, store, remoteKey); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, op+" failed")
		return err
	}
	return nil
}

package gconfig

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/goliatone/go-gconfig/pkg/cache"
	"github.com/goliatone/go-gconfig/pkg/logger"
	"github.com/goliatone/go-gconfig/pkg/secretstore"
	"github.com/goliatone/go-gconfig/pkg/value"
)

// Resolve walks env, remote store, default and the required check in that
// order and returns the first value found.
//
// A required value that cannot be found is reported to the NotFoundFunc and
// returned as StatusMissing with a nil error; without a hook Resolve returns
// ErrRequiredNotFound. Remote errors other than not-found fall back to the
// default when the lookup is optional or has one, and are otherwise returned
// unchanged.
func (c *Config) Resolve(ctx context.Context, t value.Type, l Lookup) (Result, error) {
	res, err := c.Evaluate(ctx, t, l)
	if err != nil {
		return Result{}, err
	}
	if res.Status != StatusMissing {
		return res, nil
	}
	if c.notFound == nil {
		return Result{}, ErrRequiredNotFound
	}
	c.notFound(NotFound{
		Env:      l.Env,
		Remote:   l.Remote,
		Default:  l.Default,
		Required: l.Required,
	})
	return res, nil
}

// Evaluate runs the same fallback chain as Resolve but never invokes the
// NotFoundFunc; a missing required value comes back as StatusMissing.
func (c *Config) Evaluate(ctx context.Context, t value.Type, l Lookup) (Result, error) {
	if l.Env != "" {
		if v, ok := c.env.Lookup(c.envPrefix + l.Env); ok {
			c.envCache.Set(cache.Entry{Type: t, Key: l.Env, Value: v, OnChange: l.OnChange})
			c.logger.Debug("config value resolved",
				logger.F("source", SourceEnv.String()),
				logger.F("key", l.Env),
				logger.Secret("value", v),
			)
			return Result{Value: v, Source: SourceEnv, Status: StatusResolved}, nil
		}
	}

	if l.Remote != "" {
		v, err := c.getRemote(ctx, l.Remote)
		switch {
		case err == nil:
			c.remoteCache.Set(cache.Entry{Type: t, Key: l.Remote, Value: v, OnChange: l.OnChange})
			c.logger.Debug("config value resolved",
				logger.F("source", SourceRemote.String()),
				logger.F("key", l.Remote),
				logger.Secret("value", v),
			)
			return Result{Value: v, Source: SourceRemote, Status: StatusResolved}, nil
		case secretstore.IsNotFound(err):
		case !l.Required || l.Default != nil:
			c.logger.Debug("remote lookup failed, falling back",
				logger.F("key", l.Remote),
				logger.F("has_default", l.Default != nil),
				logger.Err(err),
			)
		default:
			return Result{}, err
		}
	}

	if l.Default != nil {
		return Result{Value: *l.Default, Source: SourceDefault, Status: StatusResolved}, nil
	}
	if l.Required {
		return Result{Source: SourceNone, Status: StatusMissing}, nil
	}
	return Result{Source: SourceNone, Status: StatusAbsent}, nil
}

func (c *Config) getRemote(ctx context.Context, key string) (string, error) {
	store, err := c.Store(ctx)
	if err != nil {
		return "", err
	}

	remoteKey := c.RemoteKey(key)
	ctx, span := c.tracer.Start(ctx, "gconfig.GetSecret", trace.WithAttributes(
		attribute.String("gconfig.remote_key", remoteKey),
	))
	defer span.End()

	v, err := store.GetSecret(ctx, remoteKey)
	if err != nil {
		if !secretstore.IsNotFound(err) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "get secret failed")
		}
		return "", err
	}
	return v, nil
}

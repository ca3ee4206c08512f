package gconfig

import (
	"context"
	"errors"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/goliatone/go-gconfig/pkg/awsauth"
	"github.com/goliatone/go-gconfig/pkg/cache"
	"github.com/goliatone/go-gconfig/pkg/config"
	"github.com/goliatone/go-gconfig/pkg/env"
	"github.com/goliatone/go-gconfig/pkg/logger"
	"github.com/goliatone/go-gconfig/pkg/secretstore"
)

const tracerName = "github.com/goliatone/go-gconfig/pkg/gconfig"

var errNilStore = errors.New("gconfig: store factory returned nil store")

// StoreFactory builds the remote store client. It is called until it
// succeeds once; the successful store is kept for the Config's lifetime.
type StoreFactory func(ctx context.Context) (secretstore.Store, error)

// Config resolves configuration values from the environment and a remote
// secret store.
type Config struct {
	envPrefix    string
	remotePrefix string
	region       string
	endpoint     string
	singleFlight bool

	env      env.Source
	notFound NotFoundFunc
	logger   logger.Logger
	tracer   trace.Tracer
	assumer  awsauth.RoleAssumer
	factory  StoreFactory

	envCache    *cache.Cache
	remoteCache *cache.Cache

	mu    sync.Mutex
	store secretstore.Store
	group singleflight.Group
}

// Option configures a Config.
type Option func(*Config)

// WithEnvPrefix prefixes every environment key read, including the AWS
// bootstrap variables.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// WithRemotePrefix namespaces remote keys as "<prefix>/<key>".
func WithRemotePrefix(prefix string) Option {
	return func(c *Config) {
		c.remotePrefix = prefix
	}
}

// WithNotFound registers the hook notified when a required value is missing.
func WithNotFound(fn NotFoundFunc) Option {
	return func(c *Config) {
		c.notFound = fn
	}
}

// WithEnv replaces the process environment as the local source.
func WithEnv(src env.Source) Option {
	return func(c *Config) {
		if src != nil {
			c.env = src
		}
	}
}

// WithStore uses s as the remote store and skips credential bootstrap.
func WithStore(s secretstore.Store) Option {
	return func(c *Config) {
		if s != nil {
			c.store = s
		}
	}
}

// WithStoreFactory overrides how the remote store is built.
func WithStoreFactory(f StoreFactory) Option {
	return func(c *Config) {
		if f != nil {
			c.factory = f
		}
	}
}

// WithRoleAssumer overrides the STS exchange used by the default factory.
func WithRoleAssumer(a awsauth.RoleAssumer) Option {
	return func(c *Config) {
		if a != nil {
			c.assumer = a
		}
	}
}

// WithLogger sets the logger. Values are only ever logged masked.
func WithLogger(l logger.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracer sets the tracer used around remote store calls.
func WithTracer(t trace.Tracer) Option {
	return func(c *Config) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithSettings applies loaded settings.
func WithSettings(s config.Settings) Option {
	return func(c *Config) {
		c.envPrefix = s.EnvPrefix
		c.remotePrefix = s.RemotePrefix
		c.region = s.Region
		c.endpoint = s.Endpoint
		c.singleFlight = !s.DisableSingleFlight
	}
}

// New builds a Config. Without options it reads the process environment and
// bootstraps an AWS Secrets Manager client on first remote lookup.
func New(opts ...Option) *Config {
	c := &Config{
		singleFlight: true,
		env:          env.OS(),
		logger:       &logger.Nop{},
		envCache:     cache.New(),
		remoteCache:  cache.New(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(tracerName)
	}
	if c.factory == nil {
		c.factory = c.awsStore
	}
	return c
}

// EnvCache holds the last value read from the environment per key.
func (c *Config) EnvCache() *cache.Cache { return c.envCache }

// RemoteCache holds the last value read from the remote store per key.
func (c *Config) RemoteCache() *cache.Cache { return c.remoteCache }

// RemoteKey applies the remote namespace prefix to key.
func (c *Config) RemoteKey(key string) string {
	return secretstore.Key(c.remotePrefix, key)
}

// Store returns the remote store, bootstrapping it on first use. Failed
// bootstraps are not remembered; the next call tries again.
func (c *Config) Store(ctx context.Context) (secretstore.Store, error) {
	if s := c.current(); s != nil {
		return s, nil
	}
	if !c.singleFlight {
		return c.bootstrap(ctx)
	}
	// The shared bootstrap outlives any single caller; each caller still
	// stops waiting when its own context ends.
	ch := c.group.DoChan("store", func() (any, error) {
		return c.bootstrap(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(secretstore.Store), nil
	}
}

func (c *Config) current() secretstore.Store {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store
}

func (c *Config) bootstrap(ctx context.Context) (secretstore.Store, error) {
	if s := c.current(); s != nil {
		return s, nil
	}
	s, err := c.factory(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errNilStore
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = s
	}
	return c.store, nil
}

func (c *Config) awsStore(ctx context.Context) (secretstore.Store, error) {
	res, err := awsauth.Bootstrapper{
		Env:     c.env,
		Prefix:  c.envPrefix,
		Region:  c.region,
		Assumer: c.assumer,
		Logger:  c.logger,
		Tracer:  c.tracer,
	}.Bootstrap(ctx)
	if err != nil {
		return nil, err
	}
	var opts []secretstore.AWSOption
	if c.endpoint != "" {
		endpoint := c.endpoint
		opts = append(opts, secretstore.WithClientOptions(func(o *secretsmanager.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		}))
	}
	return secretstore.NewAWS(res.Config, opts...), nil
}

package awsauth

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/goliatone/go-gconfig/pkg/env"
	"github.com/goliatone/go-gconfig/pkg/logger"
)

const tracerName = "github.com/goliatone/go-gconfig/pkg/awsauth"

// Mode records which credential path produced a client configuration.
type Mode int

const (
	ModeAmbient Mode = iota + 1
	ModeDirect
	ModeAssumedRole
)

func (m Mode) String() string {
	switch m {
	case ModeAmbient:
		return "ambient"
	case ModeDirect:
		return "direct"
	case ModeAssumedRole:
		return "assumed_role"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// LoadDefaultFunc matches config.LoadDefaultConfig.
type LoadDefaultFunc func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error)

// Bootstrapper derives an aws.Config for the remote store from environment
// variables or the ambient platform identity.
//
// Every call starts from scratch. Callers memoise the successful result.
type Bootstrapper struct {
	Env    env.Source
	Prefix string
	// Region is used when the prefixed AWS_REGION variable is absent.
	Region      string
	Assumer     RoleAssumer
	LoadDefault LoadDefaultFunc
	Logger      logger.Logger
	Tracer      trace.Tracer
}

// Result is a successful bootstrap.
type Result struct {
	Config      aws.Config
	Mode        Mode
	Credentials Credentials
}

// Bootstrap runs the credential state machine:
//
//	ambient markers present      -> ModeAmbient (SDK default chain)
//	key, secret, region required -> ErrMissing{AccessKeyID,SecretAccessKey,Region}
//	session token set (even "")  -> ModeDirect
//	role ARN + session required  -> ErrMissing{RoleARN,RoleSessionName}
//	AssumeRole                   -> ModeAssumedRole (errors unchanged)
//	token still empty            -> ErrMissingSessionToken
func (b Bootstrapper) Bootstrap(ctx context.Context) (Result, error) {
	src := b.Env
	if src == nil {
		src = env.OS()
	}
	log := logger.OrNop(b.Logger)
	creds := LoadCredentials(src, b.Prefix)
	has := presence(src, b.Prefix)
	if creds.Region == "" && b.Region != "" {
		creds.Region = b.Region
	}

	if OnAWS(src) {
		cfg, err := b.loadAmbient(ctx, creds.Region)
		if err != nil {
			return Result{}, err
		}
		log.Debug("aws credentials bootstrapped", logger.F("mode", ModeAmbient.String()), logger.F("region", cfg.Region))
		return Result{Config: cfg, Mode: ModeAmbient, Credentials: Credentials{Region: cfg.Region}}, nil
	}

	if !has(EnvAccessKeyID) {
		return Result{}, ErrMissingAccessKeyID
	}
	if !has(EnvSecretAccessKey) {
		return Result{}, ErrMissingSecretAccessKey
	}
	if !has(EnvRegion) && b.Region == "" {
		return Result{}, ErrMissingRegion
	}

	mode := ModeDirect
	if !has(EnvSessionToken) {
		if !has(EnvRoleARN) {
			return Result{}, ErrMissingRoleARN
		}
		if !has(EnvRoleSessionName) {
			return Result{}, ErrMissingRoleSessionName
		}
		assumed, err := b.assumeRole(ctx, creds)
		if err != nil {
			return Result{}, err
		}
		if assumed.SessionToken == "" {
			return Result{}, ErrMissingSessionToken
		}
		creds = assumed
		mode = ModeAssumedRole
	}

	log.Debug("aws credentials bootstrapped", logger.F("mode", mode.String()), logger.F("region", creds.Region))
	return Result{Config: creds.Config(), Mode: mode, Credentials: creds}, nil
}

func (b Bootstrapper) loadAmbient(ctx context.Context, region string) (aws.Config, error) {
	load := b.LoadDefault
	if load == nil {
		load = config.LoadDefaultConfig
	}
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := load(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("awsauth: load default config: %w", err)
	}
	return cfg, nil
}

func (b Bootstrapper) assumeRole(ctx context.Context, creds Credentials) (Credentials, error) {
	tracer := b.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	ctx, span := tracer.Start(ctx, "awsauth.AssumeRole", trace.WithAttributes(
		attribute.String("aws.role_arn", creds.RoleARN),
		attribute.String("aws.role_session_name", creds.RoleSessionName),
		attribute.String("aws.region", creds.Region),
	))
	defer span.End()

	assumer := b.Assumer
	if assumer == nil {
		assumer = STSAssumer{}
	}
	out, err := assumer.AssumeRole(ctx, creds.RoleARN, creds.RoleSessionName, creds)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "assume role failed")
		return Credentials{}, err
	}
	return out, nil
}

// presence reports whether a prefixed variable is set. A variable set to the
// empty string counts as set.
func presence(src env.Source, prefix string) func(string) bool {
	src = env.Prefixed(src, prefix)
	return func(name string) bool {
		_, ok := src.Lookup(name)
		return ok
	}
}

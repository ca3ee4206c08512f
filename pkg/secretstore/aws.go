package secretstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/aws/smithy-go"
)

const notFoundCode = "ResourceNotFoundException"

// SecretsManagerClient abstracts the Secrets Manager client for testing.
type SecretsManagerClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
	CreateSecret(ctx context.Context, params *secretsmanager.CreateSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.CreateSecretOutput, error)
	UpdateSecret(ctx context.Context, params *secretsmanager.UpdateSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.UpdateSecretOutput, error)
}

// AWS reads and writes secrets in AWS Secrets Manager.
//
// SDK errors are returned unchanged; use IsNotFound to detect missing keys.
type AWS struct {
	client SecretsManagerClient
}

var _ Store = (*AWS)(nil)

type AWSOption func(*awsOptions)

type awsOptions struct {
	client    SecretsManagerClient
	clientOpt []func(*secretsmanager.Options)
}

// WithClient injects a custom Secrets Manager client.
func WithClient(c SecretsManagerClient) AWSOption {
	return func(o *awsOptions) {
		if c != nil {
			o.client = c
		}
	}
}

// WithClientOptions forwards SDK client options (endpoint overrides, retries).
func WithClientOptions(fns ...func(*secretsmanager.Options)) AWSOption {
	return func(o *awsOptions) {
		o.clientOpt = append(o.clientOpt, fns...)
	}
}

// NewAWS builds a Secrets Manager backed store from cfg.
func NewAWS(cfg aws.Config, opts ...AWSOption) *AWS {
	o := awsOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.client == nil {
		o.client = secretsmanager.NewFromConfig(cfg, o.clientOpt...)
	}
	return &AWS{client: o.client}
}

// GetSecret returns the SecretString stored under key. Secrets that only carry
// a binary payload are reported as not found.
func (s *AWS) GetSecret(ctx context.Context, key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(key),
	})
	if err != nil {
		return "", err
	}
	if out == nil || out.SecretString == nil {
		return "", fmt.Errorf("%w: %q has no string value", ErrNotFound, key)
	}
	return aws.ToString(out.SecretString), nil
}

func (s *AWS) CreateSecret(ctx context.Context, key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	_, err := s.client.CreateSecret(ctx, &secretsmanager.CreateSecretInput{
		Name:         aws.String(key),
		SecretString: aws.String(value),
	})
	return err
}

func (s *AWS) UpdateSecret(ctx context.Context, key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	_, err := s.client.UpdateSecret(ctx, &secretsmanager.UpdateSecretInput{
		SecretId:     aws.String(key),
		SecretString: aws.String(value),
	})
	return err
}

func isAWSNotFound(err error) bool {
	var rnf *types.ResourceNotFoundException
	if errors.As(err, &rnf) {
		return true
	}
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == notFoundCode
}

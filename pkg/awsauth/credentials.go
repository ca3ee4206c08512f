package awsauth

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/goliatone/go-gconfig/pkg/env"
)

// Variable names read (with the caller's prefix) during bootstrap.
const (
	EnvAccessKeyID     = "AWS_ACCESS_KEY_ID"
	EnvSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	EnvRegion          = "AWS_REGION"
	EnvSessionToken    = "AWS_SESSION_TOKEN"
	EnvRoleARN         = "AWS_ROLE_ARN"
	EnvRoleSessionName = "AWS_ROLE_SESSION_NAME"
)

// Credentials is the key material used to build a Secrets Manager client.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	SessionToken    string
	RoleARN         string
	RoleSessionName string
}

// LoadCredentials reads every bootstrap variable from src, prefixing each
// name with prefix. Absent variables are left empty; no validation happens.
func LoadCredentials(src env.Source, prefix string) Credentials {
	src = env.Prefixed(src, prefix)
	return Credentials{
		AccessKeyID:     env.Get(src, EnvAccessKeyID),
		SecretAccessKey: env.Get(src, EnvSecretAccessKey),
		Region:          env.Get(src, EnvRegion),
		SessionToken:    env.Get(src, EnvSessionToken),
		RoleARN:         env.Get(src, EnvRoleARN),
		RoleSessionName: env.Get(src, EnvRoleSessionName),
	}
}

// Config returns an aws.Config with static credentials taken from c.
func (c Credentials) Config() aws.Config {
	return aws.Config{
		Region: c.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, c.SessionToken),
		),
	}
}

// OnAWS reports whether the process runs inside a managed AWS runtime whose
// ambient identity should be used instead of explicit keys. Markers are read
// without any prefix.
func OnAWS(src env.Source) bool {
	if src == nil {
		return false
	}
	if v, _ := src.Lookup("AWS_LAMBDA_FUNCTION_NAME"); v != "" {
		return true
	}
	if _, ok := src.Lookup("AWS_EC2_METADATA_DISABLED"); ok {
		return true
	}
	if v, _ := src.Lookup("ECS_CONTAINER_METADATA_URI"); v != "" {
		return true
	}
	if v, _ := src.Lookup("ECS_AGENT_URI"); v != "" {
		return true
	}
	return false
}

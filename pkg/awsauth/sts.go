package awsauth

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// RoleAssumer exchanges long-lived keys for temporary role credentials.
type RoleAssumer interface {
	AssumeRole(ctx context.Context, roleARN, sessionName string, creds Credentials) (Credentials, error)
}

// STSClient abstracts the STS client for testing.
type STSClient interface {
	AssumeRole(ctx context.Context, params *sts.AssumeRoleInput, optFns ...func(*sts.Options)) (*sts.AssumeRoleOutput, error)
}

// STSAssumer assumes roles through AWS STS.
type STSAssumer struct {
	// NewClient overrides client construction. Defaults to sts.NewFromConfig.
	NewClient func(cfg aws.Config) STSClient
}

var _ RoleAssumer = STSAssumer{}

// AssumeRole signs with creds' access key pair and returns creds with the
// temporary key, secret and token from the response. SDK errors are returned
// unchanged.
func (a STSAssumer) AssumeRole(ctx context.Context, roleARN, sessionName string, creds Credentials) (Credentials, error) {
	signing := creds
	signing.SessionToken = ""

	client := a.client(signing.Config())
	out, err := client.AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(roleARN),
		RoleSessionName: aws.String(sessionName),
	})
	if err != nil {
		return Credentials{}, err
	}

	next := creds
	next.AccessKeyID, next.SecretAccessKey, next.SessionToken = "", "", ""
	if out != nil && out.Credentials != nil {
		next.AccessKeyID = aws.ToString(out.Credentials.AccessKeyId)
		next.SecretAccessKey = aws.ToString(out.Credentials.SecretAccessKey)
		next.SessionToken = aws.ToString(out.Credentials.SessionToken)
	}
	return next, nil
}

func (a STSAssumer) client(cfg aws.Config) STSClient {
	if a.NewClient != nil {
		return a.NewClient(cfg)
	}
	return sts.NewFromConfig(cfg)
}

package awsauth

import "errors"

var (
	ErrMissingAccessKeyID     = errors.New("awsauth: AWS_ACCESS_KEY_ID not found in the environment")
	ErrMissingSecretAccessKey = errors.New("awsauth: AWS_SECRET_ACCESS_KEY not found in the environment")
	ErrMissingRegion          = errors.New("awsauth: AWS_REGION not found in the environment")
	ErrMissingRoleARN         = errors.New("awsauth: AWS_ROLE_ARN is not provided")
	ErrMissingRoleSessionName = errors.New("awsauth: AWS_ROLE_SESSION_NAME is not provided")
	ErrMissingSessionToken    = errors.New("awsauth: AWS_SESSION_TOKEN not found after role assumption")
)

// IsMissingCredential reports whether err is one of the missing-field errors.
func IsMissingCredential(err error) bool {
	switch {
	case errors.Is(err, ErrMissingAccessKeyID),
		errors.Is(err, ErrMissingSecretAccessKey),
		errors.Is(err, ErrMissingRegion),
		errors.Is(err, ErrMissingRoleARN),
		errors.Is(err, ErrMissingRoleSessionName),
		errors.Is(err, ErrMissingSessionToken):
		return true
	default:
		return false
	}
}

package secretstore

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound     = errors.New("secretstore: not found")
	ErrInvalidKey   = errors.New("secretstore: invalid key")
	ErrAlreadyExist = errors.New("secretstore: already exists")
)

// Store is the remote secret store the resolver reads from and writes to.
//
// GetSecret must report a missing key with an error matching ErrNotFound.
// Implementations must be safe for concurrent use and must not log values.
type Store interface {
	GetSecret(ctx context.Context, key string) (string, error)
	CreateSecret(ctx context.Context, key, value string) error
	UpdateSecret(ctx context.Context, key, value string) error
}

// IsNotFound reports whether err signals a missing secret, either through
// ErrNotFound or the Secrets Manager ResourceNotFoundException.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrNotFound) || isAWSNotFound(err)
}

// Key joins a namespace prefix and a key as "<prefix>/<key>". An empty prefix
// leaves key unchanged.
func Key(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "/" + key
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	return nil
}

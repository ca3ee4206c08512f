package gconfig

import (
	"errors"

	"github.com/goliatone/go-gconfig/pkg/cache"
)

// ErrRequiredNotFound is returned when a required value is absent from every
// source and no NotFoundFunc is registered.
var ErrRequiredNotFound = errors.New("gconfig: required value not found in the environment or secret store")

// Lookup describes where a value may come from. Empty keys are skipped; a nil
// Default means no default.
type Lookup struct {
	Env      string
	Remote   string
	Default  *string
	Required bool
	// OnChange is attached to the cache entry written for this lookup.
	OnChange cache.ChangeFunc
}

// Default returns a pointer to v for use as Lookup.Default.
func Default(v string) *string {
	return &v
}

// Source names where a resolved value came from.
type Source int

const (
	SourceNone Source = iota
	SourceEnv
	SourceRemote
	SourceDefault
)

func (s Source) String() string {
	switch s {
	case SourceEnv:
		return "env"
	case SourceRemote:
		return "remote"
	case SourceDefault:
		return "default"
	default:
		return "none"
	}
}

// Status classifies a Result.
type Status int

const (
	// StatusResolved carries a value.
	StatusResolved Status = iota
	// StatusAbsent means nothing was found and nothing was required.
	StatusAbsent
	// StatusMissing means a required value was absent and the registered
	// NotFoundFunc was notified.
	StatusMissing
)

func (s Status) String() string {
	switch s {
	case StatusResolved:
		return "resolved"
	case StatusAbsent:
		return "absent"
	case StatusMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Result is the outcome of a resolution.
type Result struct {
	Value  string
	Source Source
	Status Status
}

// Found reports whether the result carries a value.
func (r Result) Found() bool {
	return r.Status == StatusResolved
}

// NotFound is handed to a NotFoundFunc when a required value is missing.
type NotFound struct {
	Env      string
	Remote   string
	Default  *string
	Required bool
}

// NotFoundFunc is notified instead of returning ErrRequiredNotFound.
type NotFoundFunc func(NotFound)

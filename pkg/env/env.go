// Package env abstracts the process environment so resolvers can be driven by
// an injected key/value source.
package env

import "os"

// Source looks up a single variable. The boolean reports presence; a variable
// set to the empty string is present.
type Source interface {
	Lookup(key string) (string, bool)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(key string) (string, bool)

func (f SourceFunc) Lookup(key string) (string, bool) { return f(key) }

type osSource struct{}

func (osSource) Lookup(key string) (string, bool) { return os.LookupEnv(key) }

// OS returns a Source backed by the process environment.
func OS() Source { return osSource{} }

// Map is an in-memory Source, handy for tests and fixed overrides.
type Map map[string]string

func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Prefixed reads every key from src with prefix prepended.
func Prefixed(src Source, prefix string) Source {
	if prefix == "" {
		return src
	}
	return SourceFunc(func(key string) (string, bool) {
		return src.Lookup(prefix + key)
	})
}

// Chain returns the first hit across sources, in order.
func Chain(sources ...Source) Source {
	return SourceFunc(func(key string) (string, bool) {
		for _, src := range sources {
			if src == nil {
				continue
			}
			if v, ok := src.Lookup(key); ok {
				return v, true
			}
		}
		return "", false
	})
}

// Get returns the value for key or the empty string.
func Get(src Source, key string) string {
	if src == nil {
		return ""
	}
	v, _ := src.Lookup(key)
	return v
}

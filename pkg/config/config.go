package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/goliatone/go-config/cfgx"
)

// Settings captures the knobs a resolver is constructed with.
type Settings struct {
	// EnvPrefix is prepended to every environment key read, including the
	// AWS bootstrap variables.
	EnvPrefix string `mapstructure:"env_prefix" json:"env_prefix"`
	// RemotePrefix namespaces remote keys as "<prefix>/<key>".
	RemotePrefix string `mapstructure:"remote_prefix" json:"remote_prefix"`
	// Region is used when the prefixed AWS_REGION variable is absent.
	Region string `mapstructure:"region" json:"region"`
	// Endpoint overrides the Secrets Manager endpoint, e.g. a local emulator.
	Endpoint string `mapstructure:"endpoint" json:"endpoint"`
	// DisableSingleFlight lets concurrent first calls bootstrap independently.
	DisableSingleFlight bool `mapstructure:"disable_single_flight" json:"disable_single_flight"`
}

// Defaults returns the baseline settings: no prefixes, single-flight on.
func Defaults() Settings {
	return Settings{}
}

// Validate ensures the prefixes produce well formed keys.
func (s *Settings) Validate() error {
	if strings.ContainsAny(s.EnvPrefix, " \t\n=") {
		return fmt.Errorf("env_prefix must not contain whitespace or '='")
	}
	if strings.HasSuffix(s.RemotePrefix, "/") {
		return fmt.Errorf("remote_prefix must not end with '/'")
	}
	if strings.TrimSpace(s.Region) != s.Region {
		return fmt.Errorf("region must not carry surrounding whitespace")
	}
	if s.Endpoint != "" && !strings.Contains(s.Endpoint, "://") {
		return fmt.Errorf("endpoint must be an absolute URL")
	}
	return nil
}

// Load decodes arbitrary input (struct, map, cfg struct) using cfgx helpers.
// Inputs cfgx cannot decode yet fall back to a JSON round trip.
func Load(input any, opts ...LoadOption) (Settings, error) {
	settings := loadOptions{}
	for _, opt := range opts {
		opt(&settings)
	}

	cfg, err := cfgx.Build(input, settings.buildOpts...)
	if err != nil {
		return Settings{}, err
	}

	if isZero(cfg) {
		if err := decodeFallback(input, &cfg); err != nil {
			return Settings{}, err
		}
	}

	cfg = cfg.withDefaults()

	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}

	return cfg, nil
}

// LoadOption lets callers amend cfgx build options.
type LoadOption func(*loadOptions)

type loadOptions struct {
	buildOpts []cfgx.Option[Settings]
}

// WithBuildOptions forwards cfgx options (preprocessors, hooks, etc.).
func WithBuildOptions(opts ...cfgx.Option[Settings]) LoadOption {
	return func(lo *loadOptions) {
		lo.buildOpts = append(lo.buildOpts, opts...)
	}
}

func (s Settings) withDefaults() Settings {
	s.EnvPrefix = strings.TrimSpace(s.EnvPrefix)
	s.RemotePrefix = strings.TrimSpace(s.RemotePrefix)
	s.Region = strings.TrimSpace(s.Region)
	s.Endpoint = strings.TrimSpace(s.Endpoint)
	return s
}

func isZero(cfg Settings) bool {
	return reflect.DeepEqual(cfg, Settings{})
}

func decodeFallback(input any, cfg *Settings) error {
	switch v := input.(type) {
	case nil:
		return nil
	case Settings:
		*cfg = v
		return nil
	case *Settings:
		if v != nil {
			*cfg = *v
		}
		return nil
	case map[string]any:
		return decodeMap(v, cfg)
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[k] = val
		}
		return decodeMap(m, cfg)
	default:
		return fmt.Errorf("unsupported settings input type: %T", input)
	}
}

func decodeMap(input map[string]any, cfg *Settings) error {
	if input == nil {
		return nil
	}
	payload, err := json.Marshal(input)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, cfg)
}

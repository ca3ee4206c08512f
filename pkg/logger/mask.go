package logger

import (
	"strings"

	masker "github.com/goliatone/go-masker"
)

const maskRule = "preserveEnds(2,2)"

var secretFields = []string{
	"value", "secret", "secret_string",
	"access_key_id", "secret_access_key", "session_token",
}

func init() {
	for _, field := range secretFields {
		masker.Default.RegisterMaskField(field, maskRule)
	}
}

// Secret builds a field whose value is masked before it reaches any sink.
// Resolved configuration values must only be logged through it.
func Secret(key, raw string) Field {
	return Field{Key: key, Value: Mask(raw)}
}

// Mask hides all but the outer two characters of raw.
func Mask(raw string) string {
	if raw == "" {
		return ""
	}
	if masked, err := masker.Default.String(maskRule, raw); err == nil && masked != raw {
		return masked
	}
	runes := []rune(raw)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:2]) + strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-2:])
}

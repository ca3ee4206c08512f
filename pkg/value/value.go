package value

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Type is the semantic type a raw configuration value is coerced into.
type Type int

const (
	String Type = iota
	Number
	Boolean
)

var ErrUnknownType = errors.New("value: unknown type")

func (t Type) String() string {
	switch t {
	case String:
		return "string"
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// ParseType maps a type name (case-insensitive) to a Type.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "string", "str":
		return String, nil
	case "number", "num", "float":
		return Number, nil
	case "boolean", "bool":
		return Boolean, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

// Parse coerces v into t. A nil input yields nil. Number never fails: values
// that are not numeric become NaN. Boolean yields nil for anything that is
// neither a bool nor a string.
func Parse(t Type, v any) any {
	if v == nil {
		return nil
	}
	switch t {
	case String:
		s, _ := AsString(v)
		return s
	case Number:
		n, _ := AsNumber(v)
		return n
	case Boolean:
		b, ok := AsBoolean(v)
		if !ok {
			return nil
		}
		return b
	default:
		return nil
	}
}

// AsString returns the textual form of v.
func AsString(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case fmt.Stringer:
		return val.String(), true
	case float64:
		return formatNumber(val), true
	case float32:
		return formatNumber(float64(val)), true
	default:
		return fmt.Sprint(val), true
	}
}

// AsNumber converts v to a float64. The boolean reports whether v was non-nil;
// a non-numeric input still returns true with a NaN result.
func AsNumber(v any) (float64, bool) {
	switch val := v.(type) {
	case nil:
		return 0, false
	case string:
		return parseNumber(val), true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	default:
		return math.NaN(), true
	}
}

// AsBoolean returns bool inputs unchanged and reports true for strings equal
// to "true" ignoring case. Other inputs are not convertible.
func AsBoolean(v any) (bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case string:
		return strings.EqualFold(val, "true"), true
	default:
		return false, false
	}
}

func parseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			if strings.Contains(s, "_") {
				return math.NaN()
			}
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err == nil {
				return float64(n)
			}
			if errors.Is(err, strconv.ErrRange) {
				if b, ok := new(big.Int).SetString(s[2:], base); ok {
					f, _ := b.Float64()
					return f
				}
			}
			return math.NaN()
		}
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '+', r == '-', r == 'e', r == 'E':
		default:
			return math.NaN()
		}
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return n
		}
		return math.NaN()
	}
	return n
}

func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

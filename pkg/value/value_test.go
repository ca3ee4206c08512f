package value

import (
	"math"
	"strings"
	"testing"
)

func TestParseBoolean(t *testing.T) {
	if got := Parse(Boolean, "TRUE"); got != true {
		t.Fatalf("expected true for TRUE, got %v", got)
	}
	if got := Parse(Boolean, "no"); got != false {
		t.Fatalf("expected false for no, got %v", got)
	}
	if got := Parse(Boolean, 42); got != nil {
		t.Fatalf("expected nil for numeric input, got %v", got)
	}
	if got := Parse(Boolean, false); got != false {
		t.Fatalf("expected native bool passthrough, got %v", got)
	}
}

func TestParseNilPassthrough(t *testing.T) {
	for _, typ := range []Type{String, Number, Boolean} {
		if got := Parse(typ, nil); got != nil {
			t.Fatalf("%s: expected nil, got %v", typ, got)
		}
	}
}

func TestParseString(t *testing.T) {
	if got := Parse(String, "hello"); got != "hello" {
		t.Fatalf("expected hello, got %v", got)
	}
	if got := Parse(String, 12); got != "12" {
		t.Fatalf("expected 12, got %v", got)
	}
	if got := Parse(String, 1.5); got != "1.5" {
		t.Fatalf("expected 1.5, got %v", got)
	}
	if got := Parse(String, true); got != "true" {
		t.Fatalf("expected true, got %v", got)
	}
}

func TestParseNumber(t *testing.T) {
	cases := map[string]float64{
		"42":        42,
		" 3.5 ":     3.5,
		"":          0,
		"1e3":       1000,
		"-7":        -7,
		"0x1F":      31,
		"0b101":     5,
		"0o17":      15,
		".5":        0.5,
		"Infinity":  math.Inf(1),
		"-Infinity": math.Inf(-1),
	}
	for in, want := range cases {
		got, ok := Parse(Number, in).(float64)
		if !ok {
			t.Fatalf("%q: expected float64", in)
		}
		if got != want {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}
}

func TestParseNumberRadixBeyondUint64(t *testing.T) {
	want := math.Ldexp(1, 64)
	for _, in := range []string{"0x10000000000000000", "0o2000000000000000000000", "0b1" + strings.Repeat("0", 64)} {
		got := Parse(Number, in).(float64)
		if got != want {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}
	if got := Parse(Number, "0x1"+strings.Repeat("0", 300)).(float64); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf for huge hex literal, got %v", got)
	}
	if got := Parse(Number, "0x1"+strings.Repeat("0", 16)+"G").(float64); !math.IsNaN(got) {
		t.Fatalf("expected NaN for invalid digit, got %v", got)
	}
}

func TestParseNumberNonNumericIsNaN(t *testing.T) {
	for _, in := range []string{"abc", "12px", "inf", "NaN", "1_000", "-0x10", "0xZZ"} {
		got := Parse(Number, in).(float64)
		if !math.IsNaN(got) {
			t.Fatalf("%q: expected NaN, got %v", in, got)
		}
	}
	if got := Parse(Number, struct{}{}).(float64); !math.IsNaN(got) {
		t.Fatalf("expected NaN for struct input, got %v", got)
	}
}

func TestParseNumberFromNativeKinds(t *testing.T) {
	if got := Parse(Number, true); got != float64(1) {
		t.Fatalf("expected 1, got %v", got)
	}
	if got := Parse(Number, int64(9)); got != float64(9) {
		t.Fatalf("expected 9, got %v", got)
	}
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("Boolean")
	if err != nil || typ != Boolean {
		t.Fatalf("expected boolean, got %v (%v)", typ, err)
	}
	if _, err := ParseType("map"); err == nil {
		t.Fatalf("expected error for unknown type")
	}
}

package env

import "testing"

func TestOSSourceReadsProcessEnv(t *testing.T) {
	t.Setenv("GCONFIG_TEST_PRESENT", "ok")
	t.Setenv("GCONFIG_TEST_EMPTY", "")

	src := OS()
	if v, ok := src.Lookup("GCONFIG_TEST_PRESENT"); !ok || v != "ok" {
		t.Fatalf("expected ok, got %q (%v)", v, ok)
	}
	if _, ok := src.Lookup("GCONFIG_TEST_EMPTY"); !ok {
		t.Fatalf("expected empty variable to be present")
	}
	if _, ok := src.Lookup("GCONFIG_TEST_MISSING_XYZ"); ok {
		t.Fatalf("expected missing variable")
	}
}

func TestPrefixed(t *testing.T) {
	src := Prefixed(Map{"APP_FOO": "bar", "FOO": "raw"}, "APP_")
	if v, ok := src.Lookup("FOO"); !ok || v != "bar" {
		t.Fatalf("expected prefixed lookup, got %q", v)
	}
	if same := Prefixed(Map{"FOO": "raw"}, ""); Get(same, "FOO") != "raw" {
		t.Fatalf("expected empty prefix to pass through")
	}
}

func TestChain(t *testing.T) {
	src := Chain(nil, Map{"A": "first"}, Map{"A": "second", "B": "b"})
	if Get(src, "A") != "first" {
		t.Fatalf("expected first source to win")
	}
	if Get(src, "B") != "b" {
		t.Fatalf("expected fallthrough to second source")
	}
	if _, ok := src.Lookup("C"); ok {
		t.Fatalf("expected miss")
	}
}

package env

import "testing"

func TestGetPrefersPrefixedValue(t *testing.T) {
	t.Setenv("LOG_FORMAT", "console")
	if got := Get("LOG_FORMAT", "json"); got != "console" {
		t.Fatalf("expected bare value, got %q", got)
	}
	t.Setenv(Prefix+"LOG_FORMAT", "json")
	if got := Get("LOG_FORMAT", "console"); got != "json" {
		t.Fatalf("expected prefixed value, got %q", got)
	}
	if got := Get("MISSING_SWITCH", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

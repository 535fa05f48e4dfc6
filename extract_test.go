package authcore

import (
	"errors"
	"net/http"
	"testing"
)

func TestHeaderExtract(t *testing.T) {
	loc, err := NewHeaderLocation("Authorization", "Bearer {token}")
	if err != nil {
		t.Fatalf("NewHeaderLocation: %v", err)
	}

	h := http.Header{}
	h.Set("API-Key", "12345")
	h.Set("Authorization", "Bearer sometoken")

	tok, err := loc.Extract(h)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if tok != "sometoken" {
		t.Fatalf("want bare token, got %q", tok)
	}

	if _, err := loc.Extract(http.Header{}); !errors.Is(err, ErrMissingField) {
		t.Fatalf("missing header: want ErrMissingField, got %v", err)
	}
}

func TestHeaderExtractTolerantTrim(t *testing.T) {
	loc, err := NewHeaderLocation("Authorization", "Bearer {token} Key")
	if err != nil {
		t.Fatalf("NewHeaderLocation: %v", err)
	}

	// Absent boundaries are a no-op, not an error: the unchanged value flows
	// on to signature validation.
	h := http.Header{}
	h.Set("Authorization", "sometoken")
	tok, err := loc.Extract(h)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if tok != "sometoken" {
		t.Fatalf("unbounded value should pass through, got %q", tok)
	}

	h.Set("Authorization", "Bearer sometoken")
	if tok, _ = loc.Extract(h); tok != "sometoken" {
		t.Fatalf("prefix-only value: got %q", tok)
	}
}

func TestExtractFrameField(t *testing.T) {
	frame := map[string]any{"token": "abc", "count": float64(3)}

	tok, err := extractFrameField("token", frame)
	if err != nil {
		t.Fatalf("extractFrameField: %v", err)
	}
	if tok != "abc" {
		t.Fatalf("want abc, got %q", tok)
	}

	if _, err := extractFrameField("token", []any{"abc"}); !errors.Is(err, ErrInvalidRequestShape) {
		t.Fatalf("non-object frame: want ErrInvalidRequestShape, got %v", err)
	}
	if _, err := extractFrameField("missing", frame); !errors.Is(err, ErrMissingField) {
		t.Fatalf("missing field: want ErrMissingField, got %v", err)
	}
	if _, err := extractFrameField("count", frame); !errors.Is(err, ErrMalformed) {
		t.Fatalf("non-string field: want ErrMalformed, got %v", err)
	}
}

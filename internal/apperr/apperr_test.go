package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := New(KindValidation, "job description is too short")
	if got := err.Error(); got != "job description is too short" {
		t.Fatalf("unexpected message: %q", got)
	}

	wrapped := Wrap(KindProvider, "chat completion request failed", errors.New("connection refused"))
	if got := wrapped.Error(); got != "chat completion request failed: connection refused" {
		t.Fatalf("unexpected wrapped message: %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(KindExtraction, "failed to read PDF", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to find the cause")
	}
}

func TestKindOf(t *testing.T) {
	err := New(KindNoJSONFound, "no JSON object found in model response")

	if got := KindOf(err); got != KindNoJSONFound {
		t.Fatalf("expected %q, got %q", KindNoJSONFound, got)
	}

	// Kind survives further wrapping with %w.
	outer := fmt.Errorf("analysis failed: %w", err)
	if got := KindOf(outer); got != KindNoJSONFound {
		t.Fatalf("expected %q through wrap, got %q", KindNoJSONFound, got)
	}

	if got := KindOf(errors.New("plain")); got != "" {
		t.Fatalf("expected empty kind for foreign error, got %q", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindExtraction, http.StatusUnprocessableEntity},
		{KindExtractionEmpty, http.StatusUnprocessableEntity},
		{KindProvider, http.StatusBadGateway},
		{KindNoJSONFound, http.StatusBadGateway},
		{KindMalformedJSON, http.StatusBadGateway},
		{KindConfiguration, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := New(tt.kind, "x").HTTPStatus(); got != tt.want {
				t.Fatalf("expected status %d, got %d", tt.want, got)
			}
		})
	}
}

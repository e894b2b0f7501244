package ui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kterry/ladle/internal/recipes"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 4, "hel…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
		{"héllo wörld", 6, "héllo…"},
	}

	for _, tc := range cases {
		if got := truncate(tc.in, tc.max); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestClassifyRequestError(t *testing.T) {
	remote := &recipes.RemoteError{Op: "POST /recipes", StatusCode: 422}
	if got := classifyRequestError(remote); got != "server returned status 422" {
		t.Fatalf("remote error = %q", got)
	}

	wrapped := fmt.Errorf("execute request: %w", remote)
	if got := classifyRequestError(wrapped); got != "server returned status 422" {
		t.Fatalf("wrapped remote error = %q", got)
	}

	if got := classifyRequestError(errors.New("dial tcp 127.0.0.1:8080: connect: connection refused")); got != "cannot reach the recipe service" {
		t.Fatalf("connection refused = %q", got)
	}

	if got := classifyRequestError(errors.New("context deadline exceeded")); got != "request timed out" {
		t.Fatalf("deadline = %q", got)
	}

	if got := classifyRequestError(errors.New("something odd")); got != "request failed" {
		t.Fatalf("fallback = %q", got)
	}

	if got := classifyRequestError(nil); got != "unknown error" {
		t.Fatalf("nil = %q", got)
	}
}

package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"provider", &ProviderError{Provider: "x", Kind: KindInvalidInput, Message: "bad"}, KindInvalidInput},
		{"rate limit", fmt.Errorf("wrap: %w", &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests}), KindQuota},
		{"unauthorized", &openai.APIError{HTTPStatusCode: http.StatusUnauthorized}, KindAuth},
		{"too large", &openai.APIError{HTTPStatusCode: http.StatusRequestEntityTooLarge}, KindInvalidInput},
		{"server", &openai.RequestError{HTTPStatusCode: http.StatusBadGateway, Err: errors.New("bad gateway")}, KindTransient},
		{"missing file", fmt.Errorf("open: %w", os.ErrNotExist), KindInvalidInput},
		{"deadline", context.DeadlineExceeded, KindTransient},
		{"other", errors.New("boom"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Fatalf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKind_HTTPStatus(t *testing.T) {
	if KindQuota.HTTPStatus() != http.StatusTooManyRequests {
		t.Fatal("quota should map to 429")
	}
	if KindTransient.HTTPStatus() != http.StatusServiceUnavailable {
		t.Fatal("transient should map to 503")
	}
	if KindUnknown.HTTPStatus() != http.StatusInternalServerError {
		t.Fatal("unknown should map to 500")
	}
	if !KindTransient.Retryable() || KindAuth.Retryable() {
		t.Fatal("unexpected retryable flags")
	}
}

package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// Kind tells callers what sort of failure a provider returned
type Kind string

const (
	KindTransient    Kind = "transient"
	KindQuota        Kind = "quota"
	KindInvalidInput Kind = "invalid_input"
	KindAuth         Kind = "auth"
	KindUnknown      Kind = "unknown"
)

// Retryable reports whether trying again later could succeed
func (k Kind) Retryable() bool {
	return k == KindTransient || k == KindQuota
}

// HTTPStatus maps the kind onto the status returned to API callers
func (k Kind) HTTPStatus() int {
	switch k {
	case KindTransient:
		return http.StatusServiceUnavailable
	case KindQuota:
		return http.StatusTooManyRequests
	case KindInvalidInput:
		return http.StatusUnprocessableEntity
	case KindAuth:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ProviderError is returned when a provider answered but the answer is unusable
type ProviderError struct {
	Provider string
	Kind     Kind
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// Classify inspects err and returns its Kind
func Classify(err error) Kind {
	if err == nil {
		return ""
	}

	var provErr *ProviderError
	if errors.As(err, &provErr) {
		return provErr.Kind
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return kindFromStatus(apiErr.HTTPStatusCode)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return kindFromStatus(reqErr.HTTPStatusCode)
	}

	if errors.Is(err, os.ErrNotExist) {
		return KindInvalidInput
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTransient
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindTransient
	}

	return KindUnknown
}

func kindFromStatus(status int) Kind {
	switch {
	case status == http.StatusTooManyRequests:
		return KindQuota
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusBadRequest,
		status == http.StatusRequestEntityTooLarge,
		status == http.StatusUnsupportedMediaType,
		status == http.StatusUnprocessableEntity:
		return KindInvalidInput
	case status == http.StatusRequestTimeout, status >= 500:
		return KindTransient
	default:
		return KindUnknown
	}
}

package speech

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUnintelligibleAudio: the recognizer heard nothing it could transcribe.
	ErrUnintelligibleAudio = errors.New("speech: audio could not be understood")

	// ErrServiceUnavailable: the provider could not be reached or is overloaded.
	ErrServiceUnavailable = errors.New("speech: service unavailable")

	ErrSynthesisFailed = errors.New("speech: synthesis failed")
	ErrEmptyText       = errors.New("speech: text is empty")
	ErrNotConfigured   = errors.New("speech: provider not configured")
)

// ProviderError carries what a provider said when a request failed.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
	Cause      error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return e.Provider + ": " + e.Message
}

func (e *ProviderError) Unwrap() error { return e.Cause }

// statusError classifies a non-2xx reply. cause may be nil.
func statusError(provider string, code int, message string, cause error) error {
	pe := &ProviderError{
		Provider:   provider,
		StatusCode: code,
		Message:    strings.TrimSpace(message),
		Cause:      cause,
	}
	if pe.Message == "" {
		pe.Message = http.StatusText(code)
	}
	if unavailableStatus(code) {
		if cause != nil {
			pe.Cause = errors.Join(ErrServiceUnavailable, cause)
		} else {
			pe.Cause = ErrServiceUnavailable
		}
	}
	return pe
}

// transportError wraps a failed round trip. Caller cancellation stays a
// plain context error; everything else means the provider was unreachable.
func transportError(provider string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return &ProviderError{
		Provider: provider,
		Message:  "request failed",
		Cause:    errors.Join(ErrServiceUnavailable, err),
	}
}

func unavailableStatus(code int) bool {
	return code == http.StatusRequestTimeout ||
		code == http.StatusTooManyRequests ||
		code >= http.StatusInternalServerError
}

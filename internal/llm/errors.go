package llm

import "errors"

var (
	// ErrDisabled indicates no API key is configured for the chat backend.
	ErrDisabled = errors.New("chat backend disabled")

	// ErrUnavailable indicates the upstream API is unreachable.
	ErrUnavailable = errors.New("chat backend unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("chat request timed out")

	// ErrRateLimited indicates the upstream rejected the call with a 429.
	ErrRateLimited = errors.New("chat backend rate limited")

	// ErrEmptyResponse indicates the upstream returned no choices.
	ErrEmptyResponse = errors.New("chat backend returned no content")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("chat retry attempts exhausted")
)

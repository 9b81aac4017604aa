package llm

import "errors"

// Sentinel errors let callers map provider failures onto user-facing
// status codes without parsing provider-specific messages.
var (
	// ErrRateLimited means the upstream model rejected the call for quota
	// or rate reasons (HTTP 429).
	ErrRateLimited = errors.New("llm: rate limited")

	// ErrUnavailable means the upstream model is temporarily unreachable or
	// overloaded (HTTP 5xx, connection failures, timeouts).
	ErrUnavailable = errors.New("llm: service unavailable")
)

package github

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorKind classifies a failed GraphQL call. Retryable kinds are handled
// inside the client's attempt loop; the remainder surface to the caller
// unchanged.
type ErrorKind int

const (
	// KindRateLimited indicates the token's rate-limit budget is exhausted.
	// Retryable, honouring a server-provided delay when present.
	KindRateLimited ErrorKind = iota

	// KindTransient covers network failures, timeouts and 5xx responses.
	// Retryable with jittered backoff.
	KindTransient

	// KindUnauthorized indicates the token was rejected. Fatal for the request.
	KindUnauthorized

	// KindNotFound indicates the queried user does not exist. Fatal for the
	// request.
	KindNotFound

	// KindMalformed indicates a response that could not be interpreted,
	// usually a sign the upstream API contract has drifted. Fatal.
	KindMalformed
)

func (k ErrorKind) String() string {
	switch k {
	case KindRateLimited:
		return "rate_limited"
	case KindTransient:
		return "transient"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindMalformed:
		return "malformed"
	}
	return "unknown"
}

// Error is the classified failure of a single GraphQL call.
type Error struct {
	Kind  ErrorKind
	Facet string

	// RetryAfter is the server-requested delay before the next attempt.
	// Only meaningful for KindRateLimited; zero means no delay was provided.
	RetryAfter time.Duration

	Message string
	cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.cause != nil {
		msg = e.cause.Error()
	}
	if e.Facet != "" {
		return fmt.Sprintf("github %s (%s): %s", e.Kind, e.Facet, msg)
	}
	return fmt.Sprintf("github %s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Retryable reports whether the error may succeed on a later attempt with the
// same inputs.
func (e *Error) Retryable() bool {
	return e.Kind == KindRateLimited || e.Kind == KindTransient
}

// Status maps the error to an HTTP status for the gateway. The 419 rate-limit
// status matches the service's historical behaviour, which badge proxies rely
// on to distinguish throttling from a missing user.
func (e *Error) Status() (int, string) {
	switch e.Kind {
	case KindRateLimited:
		return 419, "rate limit exceeded"
	case KindNotFound:
		return http.StatusNotFound, "user not found"
	case KindUnauthorized:
		return http.StatusUnauthorized, "github token rejected"
	case KindMalformed, KindTransient:
		return http.StatusBadGateway, "github api unavailable"
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

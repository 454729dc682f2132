package pipeline

import (
	"fmt"
	"net/http"
)

// ErrMissingUsername rejects a request that omits the username outside
// single-token mode. The gateway recognises it to serve the landing page.
var ErrMissingUsername = &ValidationError{Reason: "username is required"}

// ValidationError rejects a request before any upstream call is made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + e.Reason
}

// Status implements the gateway's HTTPStatuser contract.
func (e *ValidationError) Status() (int, string) {
	return http.StatusBadRequest, e.Reason
}

// RenderError wraps a failure of the SVG renderer. Nothing is cached for the
// failed key.
type RenderError struct {
	cause error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed: %v", e.cause)
}

func (e *RenderError) Unwrap() error {
	return e.cause
}

// Status implements the gateway's HTTPStatuser contract.
func (e *RenderError) Status() (int, string) {
	return http.StatusInternalServerError, "failed to render trophies"
}

package services

import (
	"errors"
	"fmt"
)

// Auth errors. Unknown user and wrong password collapse into
// ErrInvalidCredentials so the API never confirms which usernames exist.
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotLoggedIn        = errors.New("no active session for user")
)

// ErrMalformedAnalysis reports model output that could not be decoded as the
// expected food-analysis schema. Callers receive it alongside the fallback
// result and decide whether to surface it.
var ErrMalformedAnalysis = errors.New("model response is not valid food analysis JSON")

// StorageError wraps a repository read/write failure. It is surfaced to the
// caller as a visible, non-fatal condition; session state is not rolled back.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Kinds of external model failure.
const (
	ExternalTimeout   = "timeout"
	ExternalTransport = "transport"
	ExternalEmpty     = "empty"
)

// ExternalServiceError reports a failed call to the generative model.
// No automatic retry is performed; the caller offers one.
type ExternalServiceError struct {
	Kind string
	Err  error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("model call failed (%s): %v", e.Kind, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

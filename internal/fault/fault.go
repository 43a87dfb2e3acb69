package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure so callers can decide whether to
// retry, back off, or give up.
type Kind string

const (
	// KindValidation marks bad input (unsupported format, missing file).
	KindValidation Kind = "validation"
	// KindFileTooLarge marks a file over the selected backend's ceiling.
	KindFileTooLarge Kind = "file_too_large"
	// KindTransient marks a network failure worth one more attempt.
	KindTransient Kind = "transient"
	// KindTimeout marks a deadline exceeded on a remote call.
	KindTimeout Kind = "timeout"
	// KindRateLimit marks a rate-limited response from the LLM backend.
	KindRateLimit Kind = "rate_limit"
	// KindAuth marks missing or rejected credentials. Never retried.
	KindAuth Kind = "auth"
	// KindContract marks an unexpected response shape from a backend.
	KindContract Kind = "contract"
	// KindPrecondition marks a missing external tool (ffmpeg, ASR client).
	KindPrecondition Kind = "precondition"
)

// Error carries a failure kind, a human-readable message, and an optional
// remedy suggestion surfaced to the user.
type Error struct {
	Kind   Kind
	Msg    string
	Remedy string
	cause  error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New creates a fault of the given kind.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap wraps cause with a kind and message.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), cause: cause}
}

// WithRemedy attaches a user-facing remedy suggestion.
func (e *Error) WithRemedy(remedy string) *Error {
	e.Remedy = remedy
	return e
}

// KindOf returns the kind of err, or an empty Kind for plain errors.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// RemedyOf returns the remedy attached to err, if any.
func RemedyOf(err error) string {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Remedy
	}
	return ""
}

// IsRetryable reports whether err is worth retrying at all. Rate limits are
// retried with backoff, transient network errors with a fixed delay.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case KindTransient, KindRateLimit:
		return true
	}
	return false
}

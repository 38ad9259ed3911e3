package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout means the request exceeded its deadline.
	ErrTimeout = errors.New("request timed out")
	// ErrNetworkUnreachable means the request was sent but no response came back.
	ErrNetworkUnreachable = errors.New("network unreachable")
	// ErrSuperseded means a newer fetch for the same display slot replaced this one.
	ErrSuperseded = errors.New("superseded by a newer request")
	// ErrNoCredential means no ambient credential has been persisted.
	ErrNoCredential = errors.New("no stored credential")
	// ErrNotAuthenticated means the remote API did not vouch for the session.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// ValidationError is a client-side check that failed before any network call.
type ValidationError struct {
	Message string
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RejectedError is a response the server sent with a failure status.
type RejectedError struct {
	StatusCode int
	// Message is the server-supplied reason, empty when the body carried none.
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server rejected request with status %d", e.StatusCode)
	}
	return fmt.Sprintf("server rejected request with status %d: %s", e.StatusCode, e.Message)
}

// UnexpectedError is any failure that fits no other outcome.
type UnexpectedError struct {
	Raw string
}

func (e *UnexpectedError) Error() string {
	return "unexpected error: " + e.Raw
}

// OutcomeKind classifies the result of an outbound request.
type OutcomeKind int

const (
	KindSuccess OutcomeKind = iota
	KindInvalid
	KindRejected
	KindTimeout
	KindUnreachable
	KindUnexpected
)

func (k OutcomeKind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindInvalid:
		return "invalid"
	case KindRejected:
		return "rejected"
	case KindTimeout:
		return "timeout"
	case KindUnreachable:
		return "unreachable"
	default:
		return "unexpected"
	}
}

// Classify reports which outcome an error represents. nil is a success.
func Classify(err error) OutcomeKind {
	if err == nil {
		return KindSuccess
	}
	var ae *ActionError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	var ve *ValidationError
	var re *RejectedError
	switch {
	case errors.As(err, &ve):
		return KindInvalid
	case errors.As(err, &re):
		return KindRejected
	case errors.Is(err, ErrTimeout):
		return KindTimeout
	case errors.Is(err, ErrNetworkUnreachable):
		return KindUnreachable
	default:
		return KindUnexpected
	}
}

// ActionError is the user-facing result of a failed action. Message is what
// the screen shows; Err keeps the classified cause.
type ActionError struct {
	Kind    OutcomeKind
	Message string
	Err     error
}

func (e *ActionError) Error() string {
	return e.Message
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure for the callers above the service layer
type ErrorKind int

const (
	// KindUnknown is never attached to an *Error; KindOf reports it only for nil
	KindUnknown ErrorKind = iota
	// KindInvalidInput: malformed or missing field, non-positive id or price
	KindInvalidInput
	// KindNotFound: the operation targeted an id that does not exist
	KindNotFound
	// KindDataAccess: the store failed (connectivity, constraint, bad query)
	KindDataAccess
	// KindInternal: an invariant was violated, e.g. an insert touched no row
	KindInternal
)

// String returns the kind name
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindDataAccess:
		return "data_access"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the single error type crossing the repository and service
// boundaries. Msg is safe to show to a caller; Err carries the cause.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrInvalidInput = &Error{Kind: KindInvalidInput}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrDataAccess   = &Error{Kind: KindDataAccess}
	ErrInternal     = &Error{Kind: KindInternal}
)

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.Err == nil && t.Kind == e.Kind
}

// InvalidInput builds an input error with a caller-facing message
func InvalidInput(msg string) error {
	return &Error{Kind: KindInvalidInput, Msg: msg}
}

// NotFound builds a not-found error with a caller-facing message
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// DataAccess wraps a store failure
func DataAccess(msg string, cause error) error {
	return &Error{Kind: KindDataAccess, Msg: msg, Err: cause}
}

// Internal builds an invariant-violation error
func Internal(msg string, cause error) error {
	return &Error{Kind: KindInternal, Msg: msg, Err: cause}
}

// KindOf classifies err. Errors outside the taxonomy are Internal.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the caller-facing message of err without its cause
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Msg != "" {
		return e.Msg
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

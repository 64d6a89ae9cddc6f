package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed operation for the caller-facing layer.
type ErrorKind string

const (
	KindNotVerified       ErrorKind = "NotVerified"
	KindNotOwner          ErrorKind = "NotOwner"
	KindNotAdmin          ErrorKind = "NotAdmin"
	KindAlreadyApplied    ErrorKind = "AlreadyApplied"
	KindInvalidTransition ErrorKind = "InvalidTransition"
	KindJobInactive       ErrorKind = "JobInactive"
	KindNotFound          ErrorKind = "NotFound"
	KindInvalidInput      ErrorKind = "InvalidInput"
	KindUnauthenticated   ErrorKind = "Unauthenticated"
	KindUnrecognized      ErrorKind = "Unrecognized"
	KindStoreUnavailable  ErrorKind = "StoreUnavailable"
)

// Retryable reports whether a caller may retry the operation with backoff.
// Only store failures qualify.
func (k ErrorKind) Retryable() bool {
	return k == KindStoreUnavailable
}

// IsAuthorization reports whether the kind is an authorization deny.
func (k ErrorKind) IsAuthorization() bool {
	switch k {
	case KindNotVerified, KindNotOwner, KindNotAdmin, KindUnrecognized:
		return true
	default:
		return false
	}
}

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func NewError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotOwner)
// works regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrNotVerified       = &Error{Kind: KindNotVerified}
	ErrNotOwner          = &Error{Kind: KindNotOwner}
	ErrNotAdmin          = &Error{Kind: KindNotAdmin}
	ErrAlreadyApplied    = &Error{Kind: KindAlreadyApplied}
	ErrInvalidTransition = &Error{Kind: KindInvalidTransition}
	ErrJobInactive       = &Error{Kind: KindJobInactive}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrInvalidInput      = &Error{Kind: KindInvalidInput}
	ErrUnauthenticated   = &Error{Kind: KindUnauthenticated}
	ErrUnrecognized      = &Error{Kind: KindUnrecognized}
	ErrStoreUnavailable  = &Error{Kind: KindStoreUnavailable}
)

// KindOf extracts the kind of err. Errors that did not come from the domain
// are treated as store failures.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindStoreUnavailable
}

// Outcome is the structured result handed to the notification layer.
type Outcome struct {
	OK     bool      `json:"ok"`
	Reason ErrorKind `json:"reason,omitempty"`
}

func OutcomeOf(err error) Outcome {
	if err == nil {
		return Outcome{OK: true}
	}
	return Outcome{OK: false, Reason: KindOf(err)}
}

// Package apperrors defines the typed failure kinds the booking engine
// surfaces to its callers. Each failed operation carries exactly one kind;
// handlers map kinds to HTTP statuses without inspecting messages.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an expected, caller-recoverable failure.
type Kind int

const (
	// KindNotFound indicates a missing booking, room or hotel.
	KindNotFound Kind = iota
	// KindForbidden indicates an ownership violation or exhausted capacity.
	KindForbidden
	// KindPaymentRequired indicates the user's ticket state does not permit
	// hotel booking.
	KindPaymentRequired
	// KindUnavailable indicates an infrastructure failure (store unreachable).
	// Never conflated with KindNotFound.
	KindUnavailable
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindPaymentRequired:
		return "payment_required"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Error is a failure with a classification kind.
type Error struct {
	Kind    Kind
	Message string
	err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.err)
	}
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// Is matches errors by kind so comparisons with errors.Is work across
// instances built by different constructors.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// NotFound builds a KindNotFound error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Forbidden builds a KindForbidden error.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// PaymentRequired builds a KindPaymentRequired error.
func PaymentRequired(message string) *Error {
	return &Error{Kind: KindPaymentRequired, Message: message}
}

// Unavailable builds a KindUnavailable error wrapping the infrastructure
// cause.
func Unavailable(message string, err error) *Error {
	return &Error{Kind: KindUnavailable, Message: message, err: err}
}

// KindOf extracts the kind from err. The second return is false when err is
// not an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

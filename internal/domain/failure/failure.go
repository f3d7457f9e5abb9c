// Package failure holds the error taxonomy shared by the use cases, the gateways and the
// HTTP layer. Every rejection carries a Kind (one of the sentinels below), a machine
// readable Code and a human readable Reason.
package failure

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrEligibility       = errors.New("eligibility error")
	ErrTransientExternal = errors.New("transient external error")
	ErrPermanentExternal = errors.New("permanent external error")
	ErrConsistency       = errors.New("consistency error")
	ErrNotFound          = errors.New("not found")
)

type Error struct {
	Kind   error
	Code   string
	Reason string
	Err    error
}

func New(kind error, code, reason string) *Error {
	return &Error{Kind: kind, Code: code, Reason: reason}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// Is matches another *Error by Code so prototype errors can be compared with errors.Is
// after WithReason/Wrap produced a copy.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// WithReason returns a copy of e with a more specific human readable reason.
func (e *Error) WithReason(format string, args ...any) *Error {
	c := *e
	c.Reason = fmt.Sprintf(format, args...)
	return &c
}

// Wrap returns a copy of e carrying err as the cause.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.Err = err
	return &c
}

// KindOf returns the taxonomy sentinel of err, or nil when err is not classified.
func KindOf(err error) error {
	for _, k := range []error{ErrValidation, ErrEligibility, ErrTransientExternal, ErrPermanentExternal, ErrConsistency, ErrNotFound} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// CodeOf returns the machine readable code of the first *Error in err's chain.
func CodeOf(err error) string {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return ""
}

// Transient classifies a gateway failure that may succeed later (timeout, 5xx, network).
func Transient(gateway string, err error) *Error {
	return &Error{Kind: ErrTransientExternal, Code: "GATEWAY_UNAVAILABLE", Reason: gateway + " unavailable", Err: err}
}

// Permanent classifies an explicit rejection returned by a gateway.
func Permanent(gateway, code, reason string) *Error {
	if code == "" {
		code = "GATEWAY_REJECTED"
	}
	return &Error{Kind: ErrPermanentExternal, Code: code, Reason: gateway + ": " + reason}
}

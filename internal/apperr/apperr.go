// Package apperr carries the failure signals the service layer hands to the
// HTTP boundary. Callers match the kind with errors.Is and read the code with
// CodeOf; the boundary owns the mapping to status codes.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAccessDenied    = errors.New("access denied")
	ErrUnavailable     = errors.New("unavailable")
	ErrInternal        = errors.New("internal error")
)

type Error struct {
	Kind error
	Code string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func newError(kind error, code string, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Code: code, Msg: fmt.Sprintf(format, args...), Err: err}
}

func NotFound(code, format string, args ...any) *Error {
	return newError(ErrNotFound, code, nil, format, args...)
}

func InvalidArgument(code, format string, args ...any) *Error {
	return newError(ErrInvalidArgument, code, nil, format, args...)
}

func AccessDenied(code, format string, args ...any) *Error {
	return newError(ErrAccessDenied, code, nil, format, args...)
}

func Unavailable(code, format string, args ...any) *Error {
	return newError(ErrUnavailable, code, nil, format, args...)
}

// Internal wraps an unexpected failure. The cause is kept for logging and
// errors.Is, but the boundary only exposes Msg.
func Internal(err error, format string, args ...any) *Error {
	return newError(ErrInternal, "internal", err, format, args...)
}

// CodeOf returns the machine readable code of the first *Error in err's chain.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// MessageOf returns the client facing message of err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Msg != "" {
		return e.Msg
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

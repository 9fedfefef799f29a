package errors

import (
	"fmt"
)

// Error is the error type exchanged between the services and the
// transport layer. The code follows HTTP semantics so the boundary can
// map outcomes without inspecting messages: 403 is a denial, 404 a
// missing entity, anything else a failure.
type Error interface {
	error

	Code() int
	Message() string
	Cause() error
}

// DefaultCode is used when an error is created without an explicit
// code. It is set to 500, Internal Server Error: an unqualified error
// is a failure, never a security decision.
var DefaultCode = 500

type codedError struct {
	code  int
	msg   string
	cause *codedError
}

func (err *codedError) Error() string {
	if err.cause == nil {
		return err.msg
	}

	return fmt.Sprintf("%s: %v", err.msg, err.cause)
}

func (err *codedError) Code() int {
	return err.code
}

func (err *codedError) Message() string {
	return err.msg
}

func (err *codedError) Cause() error {
	if err.cause == nil {
		return nil
	}
	return err.cause
}

// ErrorEnricher decorates an error, typically with a code or a cause.
type ErrorEnricher func(error) error

func WithCode(code int) ErrorEnricher {
	return func(err error) error {
		if err, ok := err.(*codedError); ok {
			err.code = code
			return err
		}

		return &codedError{
			msg:  err.Error(),
			code: code,
		}
	}
}

func WithCause(cause error) ErrorEnricher {
	coded, ok := cause.(*codedError)
	if !ok {
		coded = &codedError{msg: cause.Error(), code: DefaultCode}
	}

	return func(err error) error {
		if err, ok := err.(*codedError); ok {
			err.cause = coded
			return err
		}

		return &codedError{
			msg:   err.Error(),
			code:  coded.code,
			cause: coded,
		}
	}
}

func New(msg string, fs ...ErrorEnricher) error {
	var err error
	err = &codedError{
		msg:  msg,
		code: DefaultCode,
	}

	for _, f := range fs {
		err = f(err)
	}

	return err
}

package errors

import (
	"fmt"
)

// Error is the error type used across the client. It carries an HTTP-like
// status code so that handlers can tell a backend rejection from a network
// failure without parsing messages.
type Error interface {
	error

	Code() int
	Message() string
	Cause() error
}

// DefaultCode is the code used when none is given. It is set to 500,
// Internal Server Error.
var DefaultCode = 500

type myError struct {
	code  int
	msg   string
	cause *myError

	// network is set on failures to reach the backend at all.
	network bool
}

func (err *myError) Error() string {
	if err.cause == nil {
		return err.msg
	}

	return fmt.Sprintf("%s: %v", err.msg, err.cause)
}

func (err *myError) Code() int {
	return err.code
}

func (err *myError) Message() string {
	return err.msg
}

func (err *myError) Cause() error {
	if err.cause == nil {
		return nil
	}
	return err.cause
}

// Unwrap lets the standard library errors.Is and errors.As walk the chain.
func (err *myError) Unwrap() error {
	return err.Cause()
}

type ErrorEnricher func(error) error

func WithCode(code int) ErrorEnricher {
	return func(err error) error {
		switch err := err.(type) {
		case nil:
			return nil
		case *myError:
			err.code = code
			return err
		}

		return &myError{
			msg:   err.Error(),
			code:  code,
			cause: nil,
		}
	}
}

// WithCause attaches cause to the error. The error inherits the code of the
// cause unless it already is an Error, in which case its own code is kept.
func WithCause(cause error) ErrorEnricher {
	var myCause *myError
	switch cause := cause.(type) {
	case nil:
	case *myError:
		myCause = cause
	default:
		myCause = &myError{msg: cause.Error(), code: DefaultCode, cause: nil}
	}

	return func(err error) error {
		if err == nil {
			return nil
		}

		if myErr, ok := err.(*myError); ok {
			myErr.cause = myCause
			return myErr
		}

		code := DefaultCode
		if myCause != nil {
			code = myCause.code
		}
		return &myError{
			msg:   err.Error(),
			code:  code,
			cause: myCause,
		}
	}
}

func New(msg string, fs ...ErrorEnricher) error {
	var err error
	err = &myError{
		msg:   msg,
		code:  DefaultCode,
		cause: nil,
	}

	for _, f := range fs {
		err = f(err)
	}

	return err
}

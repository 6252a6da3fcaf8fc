package errors

import (
	"net/http"
)

func BadRequest() ErrorEnricher   { return WithCode(http.StatusBadRequest) }
func Unauthorized() ErrorEnricher { return WithCode(http.StatusUnauthorized) }
func Forbidden() ErrorEnricher    { return WithCode(http.StatusForbidden) }
func NotFound() ErrorEnricher     { return WithCode(http.StatusNotFound) }
func Conflict() ErrorEnricher     { return WithCode(http.StatusConflict) }

// Unavailable marks an error as a network failure: the backend could not be
// reached at all, as opposed to answering with a non-OK status. The error
// gets code 503, but a backend answering 503 is not a network failure.
func Unavailable() ErrorEnricher {
	return func(err error) error {
		err = WithCode(http.StatusServiceUnavailable)(err)
		if myErr, ok := err.(*myError); ok {
			myErr.network = true
		}
		return err
	}
}

// Code returns the code carried by err, DefaultCode for foreign errors and 0
// for nil.
func Code(err error) int {
	switch err := err.(type) {
	case nil:
		return 0
	case Error:
		return err.Code()
	}
	return DefaultCode
}

// IsUnavailable reports whether err, or any of its causes, is a network
// failure.
func IsUnavailable(err error) bool {
	myErr, ok := err.(*myError)
	for ok && myErr != nil {
		if myErr.network {
			return true
		}
		myErr = myErr.cause
	}
	return false
}

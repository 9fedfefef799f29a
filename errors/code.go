package errors

import (
	"net/http"
)

func BadRequest() ErrorEnricher   { return WithCode(http.StatusBadRequest) }
func Unauthorized() ErrorEnricher { return WithCode(http.StatusUnauthorized) }
func Forbidden() ErrorEnricher    { return WithCode(http.StatusForbidden) }
func NotFound() ErrorEnricher     { return WithCode(http.StatusNotFound) }

// IsForbidden tells whether err is a denial. A plain error is not: a
// store failure must never pass for a security decision.
func IsForbidden(err error) bool { return is(err, http.StatusForbidden) }

// IsNotFound tells whether err reports a missing entity.
func IsNotFound(err error) bool { return is(err, http.StatusNotFound) }

func is(err error, code int) bool {
	if err, ok := err.(Error); ok {
		return err.Code() == code
	}
	return false
}

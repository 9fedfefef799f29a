package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCode(t *testing.T) {
	tts := map[string]struct {
		err  error
		code int
	}{
		"plain error": {
			err:  errors.New("boom"),
			code: 400,
		},
		"coded error": {
			err:  New("boom", NotFound()),
			code: 404,
		},
		"recoded error": {
			err:  WithCode(403)(New("boom", NotFound())),
			code: 403,
		},
	}

	for name, tt := range tts {
		err := WithCode(tt.code)(tt.err)
		coded, ok := err.(Error)
		if assert.True(t, ok, "%s: should be an Error", name) {
			assert.Equal(t, tt.code, coded.Code(), name)
			assert.Equal(t, "boom", coded.Message(), name)
		}
	}
}

func TestWithCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := New("could not load grants", WithCause(cause))

	coded, ok := err.(Error)
	if assert.True(t, ok, "should be an Error") {
		assert.Equal(t, DefaultCode, coded.Code(), "cause without code keeps the default")
		assert.NotNil(t, coded.Cause())
		assert.Equal(t, fmt.Sprintf("could not load grants: %s", cause), err.Error())
	}

	// The cause's code propagates when the wrapping error has none.
	err = WithCause(New("no note", NotFound()))(errors.New("lookup failed"))
	coded = err.(Error)
	assert.Equal(t, 404, coded.Code())
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsForbidden(New("denied", Forbidden())))
	assert.False(t, IsForbidden(New("missing", NotFound())))
	assert.False(t, IsForbidden(errors.New("timeout")))

	assert.True(t, IsNotFound(New("missing", NotFound())))
	assert.False(t, IsNotFound(New("denied", Forbidden())))
	assert.False(t, IsNotFound(errors.New("timeout")))
}

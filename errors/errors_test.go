package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_BackendRejection(t *testing.T) {
	tts := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "bad credentials",
			err:     New("error in call: Invalid credentials", WithCode(http.StatusUnauthorized)),
			code:    http.StatusUnauthorized,
			message: "error in call: Invalid credentials",
		},
		{
			name:    "email taken",
			err:     New("error in call: Email exists", BadRequest()),
			code:    http.StatusBadRequest,
			message: "error in call: Email exists",
		},
		{
			name:    "backend in maintenance",
			err:     New("error in call: maintenance", WithCode(http.StatusServiceUnavailable)),
			code:    http.StatusServiceUnavailable,
			message: "error in call: maintenance",
		},
		{
			name:    "no code",
			err:     New("could not save client state"),
			code:    DefaultCode,
			message: "could not save client state",
		},
	}

	for _, tt := range tts {
		var e Error
		require.True(t, errors.As(tt.err, &e), tt.name)
		assert.Equal(t, tt.code, e.Code(), tt.name)
		assert.Equal(t, tt.message, e.Message(), tt.name)
		assert.Nil(t, e.Cause(), tt.name)
		assert.False(t, IsUnavailable(tt.err), tt.name)
	}
}

func TestUnavailable(t *testing.T) {
	dial := errors.New("dial tcp 127.0.0.1:5000: connect: connection refused")
	err := New("backend unreachable", Unavailable(), WithCause(dial))

	assert.Equal(t, http.StatusServiceUnavailable, Code(err))
	assert.True(t, IsUnavailable(err))
	assert.Equal(t, "backend unreachable: dial tcp 127.0.0.1:5000: connect: connection refused", err.Error())

	// Wrapping keeps the failure visible to IsUnavailable
	wrapped := New("could not fetch users", WithCause(err))
	assert.Equal(t, DefaultCode, Code(wrapped))
	assert.True(t, IsUnavailable(wrapped))

	// A plain foreign error is never a network failure
	assert.False(t, IsUnavailable(dial))
	assert.False(t, IsUnavailable(nil))
}

func TestWithCode(t *testing.T) {
	cause := New("connection reset", Unavailable())
	err := New("login failed", WithCause(cause), WithCode(http.StatusBadGateway))

	assert.Equal(t, http.StatusBadGateway, Code(err))
	assert.True(t, IsUnavailable(err), "the cause still is a network failure")

	foreign := WithCode(http.StatusNotFound)(errors.New("no user with id 12"))
	assert.Equal(t, http.StatusNotFound, Code(foreign))
	assert.Equal(t, "no user with id 12", foreign.Error())

	assert.Nil(t, WithCode(http.StatusNotFound)(nil))
	assert.Nil(t, Unavailable()(nil))
}

func TestWithCause(t *testing.T) {
	tts := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "foreign cause",
			err:     New("invalid response body", WithCause(errors.New("unexpected EOF"))),
			code:    DefaultCode,
			message: "invalid response body: unexpected EOF",
		},
		{
			name:    "code inherited from the cause",
			err:     WithCause(New("admin only", Forbidden()))(errors.New("could not add article")),
			code:    http.StatusForbidden,
			message: "could not add article: admin only",
		},
		{
			name:    "own code kept",
			err:     New("invalid article", BadRequest(), WithCause(errors.New(`strconv.Atoi: parsing "x"`))),
			code:    http.StatusBadRequest,
			message: `invalid article: strconv.Atoi: parsing "x"`,
		},
		{
			name:    "nil cause",
			err:     New("login failed", WithCause(nil)),
			code:    DefaultCode,
			message: "login failed",
		},
	}

	for _, tt := range tts {
		assert.Equal(t, tt.code, Code(tt.err), tt.name)
		assert.Equal(t, tt.message, tt.err.Error(), tt.name)
	}

	assert.Nil(t, WithCause(errors.New("ignored"))(nil))
}

func TestCode(t *testing.T) {
	assert.Equal(t, 0, Code(nil))
	assert.Equal(t, DefaultCode, Code(errors.New("plain")))
	assert.Equal(t, http.StatusConflict, Code(New("registration already in progress", Conflict())))
	assert.Equal(t, http.StatusNotFound, Code(New("no user with id 9", NotFound())))
	assert.Equal(t, http.StatusUnauthorized, Code(New("login required to like", Unauthorized())))
}

func TestUnwrap(t *testing.T) {
	sentinel := errors.New("connection refused")
	err := New("could not load users", WithCause(sentinel))

	var target Error
	require.True(t, errors.As(err, &target))
	require.NotNil(t, target.Cause())
	assert.Equal(t, "connection refused", target.Cause().Error())
	assert.Equal(t, "could not load users: connection refused", err.Error())
}

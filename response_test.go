package subsonic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEnvelope(t *testing.T) {
	env, err := decodeEnvelope([]byte(`{"subsonic-response":{"status":"ok","version":"1.16.1","license":{"valid":true}}}`))
	require.NoError(t, err)
	assert.Equal(t, "ok", env.Status)
	assert.Equal(t, Version{1, 16, 1}, env.Version)
	assert.Contains(t, string(env.Payload), `"license"`)
}

func TestDecodeEnvelope_Failed(t *testing.T) {
	env, err := decodeEnvelope([]byte(`{"subsonic-response":{"status":"failed","version":"1.16.1","error":{"code":40,"message":"Wrong username or password."}}}`))
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, CodeWrongCredentials, apiErr.Code)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.NotErrorIs(t, err, ErrUnsupportedVersion)

	// the envelope survives the error: negotiation reads the version from it
	require.NotNil(t, env)
	assert.Equal(t, Version{1, 16, 1}, env.Version)
}

func TestDecodeEnvelope_FailedWithoutError(t *testing.T) {
	_, err := decodeEnvelope([]byte(`{"subsonic-response":{"status":"failed","version":"1.16.1"}}`))
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, CodeGeneric, apiErr.Code)
}

func TestDecodeEnvelope_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>gateway timeout</html>`},
		{name: "missing envelope", body: `{"status":"ok"}`},
		{name: "malformed envelope", body: `{"subsonic-response":"nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeEnvelope([]byte(tt.body))
			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, tt.body, string(decodeErr.Body))
		})
	}
}

func TestError_Is(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{code: CodeWrongCredentials, want: ErrAuthenticationFailed},
		{code: CodeTokenAuthNotSupported, want: ErrAuthenticationFailed},
		{code: CodeNotAuthorized, want: ErrAuthenticationFailed},
		{code: CodeClientMustUpgrade, want: ErrUnsupportedVersion},
		{code: CodeServerMustUpgrade, want: ErrUnsupportedVersion},
	}
	for _, tt := range tests {
		assert.ErrorIs(t, &Error{Code: tt.code}, tt.want)
	}
	assert.NotErrorIs(t, &Error{Code: CodeNotFound}, ErrAuthenticationFailed)
	assert.NotErrorIs(t, &Error{Code: CodeNotFound}, ErrUnsupportedVersion)
}

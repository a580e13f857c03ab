package subsonic

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes defined by the Subsonic API. They are preserved verbatim in
// [Error.Code] so callers can branch on them.
const (
	CodeGeneric               = 0
	CodeMissingParameter      = 10
	CodeClientMustUpgrade     = 20
	CodeServerMustUpgrade     = 30
	CodeWrongCredentials      = 40
	CodeTokenAuthNotSupported = 41
	CodeNotAuthorized         = 50
	CodeTrialExpired          = 60
	CodeNotFound              = 70
)

var (
	// ErrAuthenticationFailed indicates the server rejected the configured
	// credentials. Server errors 40, 41 and 50 match it through errors.Is.
	ErrAuthenticationFailed = errors.New("subsonic: authentication failed")
	// ErrUnsupportedVersion indicates that the server's protocol version is
	// too old, either for the library as a whole or for a specific endpoint.
	ErrUnsupportedVersion = errors.New("subsonic: unsupported protocol version")
)

var _ error = (*Error)(nil)

// Error is an error returned by a Subsonic server inside a "failed" response
// envelope. Code is the Subsonic error code, unmodified.
type Error struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("subsonic: %s (code %d)", e.Message, e.Code)
}

// Is reports credential errors (codes 40, 41, 50) as ErrAuthenticationFailed
// and protocol mismatches (codes 20, 30) as ErrUnsupportedVersion.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrAuthenticationFailed:
		return e.Code == CodeWrongCredentials || e.Code == CodeTokenAuthNotSupported || e.Code == CodeNotAuthorized
	case ErrUnsupportedVersion:
		return e.Code == CodeClientMustUpgrade || e.Code == CodeServerMustUpgrade
	default:
		return false
	}
}

var _ error = (*DecodeError)(nil)

// DecodeError indicates the server's response was not a valid response
// envelope. Body contains the bytes that failed to decode.
type DecodeError struct {
	Err  error
	Body []byte
}

func (e *DecodeError) Error() string {
	return "decode: " + e.Err.Error()
}

func (e *DecodeError) Is(target error) bool {
	var err *DecodeError
	return errors.As(target, &err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

var _ error = (*InvalidRequestError)(nil)

// InvalidRequestError indicates a request was missing one or more required
// parameters. It is detected locally, before any network call is made.
type InvalidRequestError struct {
	Endpoint string
	Missing  []string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("subsonic: %s: missing required parameter(s): %s", e.Endpoint, strings.Join(e.Missing, ", "))
}

var _ error = (*UnsupportedVersionError)(nil)

// UnsupportedVersionError indicates the negotiated server version is below
// the minimum required, either for the library (Endpoint is empty) or for a
// single endpoint. It matches ErrUnsupportedVersion through errors.Is.
type UnsupportedVersionError struct {
	Endpoint string
	Version  Version
	Required Version
}

func (e *UnsupportedVersionError) Error() string {
	if e.Endpoint == "" {
		return fmt.Sprintf("subsonic: server version %s is older than %s", e.Version, e.Required)
	}
	return fmt.Sprintf("subsonic: %s requires version %s, server has %s", e.Endpoint, e.Required, e.Version)
}

func (e *UnsupportedVersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}

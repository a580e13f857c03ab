package subsonic

import (
	"encoding/json"
	"errors"
)

// Envelope is the decoded top-level wrapper of a Subsonic response. Version
// is the protocol version reported by the server in this response; it may
// differ from the version captured at negotiation time if the server was
// upgraded mid-session. The client does not re-negotiate on such a mismatch.
type Envelope struct {
	// Status is "ok" or "failed".
	Status string
	// Version is the protocol version the server reported in this response.
	Version Version
	// Payload is the full "subsonic-response" object. The operation-specific
	// body is a member of it, keyed by the endpoint's result name.
	Payload json.RawMessage
}

// decodeEnvelope parses the raw response body into an Envelope. A body that
// is not a valid envelope yields a *DecodeError; a "failed" status yields the
// server's *Error with its code preserved.
func decodeEnvelope(body []byte) (*Envelope, error) {
	var outer struct {
		Response json.RawMessage `json:"subsonic-response"`
	}
	if err := json.Unmarshal(body, &outer); err != nil {
		return nil, &DecodeError{Err: err, Body: body}
	}
	if outer.Response == nil {
		return nil, &DecodeError{Err: errMissingEnvelope, Body: body}
	}
	var header struct {
		Status  string `json:"status"`
		Version string `json:"version"`
		Error   *Error `json:"error"`
	}
	if err := json.Unmarshal(outer.Response, &header); err != nil {
		return nil, &DecodeError{Err: err, Body: body}
	}
	// the version is informational; an unparsable one should not fail the call
	version, _ := ParseVersion(header.Version)
	env := Envelope{
		Status:  header.Status,
		Version: version,
		Payload: outer.Response,
	}
	if header.Error != nil {
		return &env, header.Error
	}
	if header.Status != "ok" {
		return &env, &Error{Code: CodeGeneric, Message: "server reported status " + header.Status}
	}
	return &env, nil
}

var errMissingEnvelope = errors.New("missing subsonic-response envelope")

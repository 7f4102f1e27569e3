package errors

import (
	"encoding/json"
	"fmt"
)

// errorBody is the subset of a failure payload the client inspects.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// MessageFromBody extracts a human-readable message from a failure
// response body: body.message, else body.error, else "HTTP <status>".
// Malformed or empty bodies are tolerated and fall through to the
// synthesized message.
func MessageFromBody(raw []byte, status int) string {
	var body errorBody
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}
	switch {
	case body.Message != "":
		return body.Message
	case body.Error != "":
		return body.Error
	default:
		return fmt.Sprintf("HTTP %d", status)
	}
}

// NewProtocolError builds a ProtocolError from a raw failure body.
func NewProtocolError(status int, raw []byte) *ProtocolError {
	return &ProtocolError{Status: status, Message: MessageFromBody(raw, status)}
}

// NewNetworkError wraps a transport failure for the given operation.
func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err}
}

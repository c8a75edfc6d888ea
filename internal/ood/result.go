package ood

import (
	"encoding/json"
	"strconv"
)

// APIError is the failure half of a Result. Code carries the API's error code
// when the error body was valid JSON, the HTTP status code as a string when it
// was not, or "connection_error" when no response was received at all.
type APIError struct {
	Code    string
	Message string
}

// Result is the outcome of one structured API round trip. Exactly one of Data
// and Err is set; the choice is made once at the transport boundary so that
// operation code branches on OK() instead of probing for key presence.
type Result struct {
	// Data is the API's success payload, verbatim.
	// A JSON null payload still counts as success.
	Data json.RawMessage

	// Err is set when the round trip did not produce a success payload.
	Err *APIError
}

// OK reports whether the result carries a success payload.
func (r Result) OK() bool {
	return r.Err == nil
}

// ErrorMessage returns the failure message, or fallback when the result is a
// success or the API supplied no message.
func (r Result) ErrorMessage(fallback string) string {
	if r.Err == nil || r.Err.Message == "" {
		return fallback
	}
	return r.Err.Message
}

// Success wraps a payload in the success variant.
func Success(data json.RawMessage) Result {
	return Result{Data: data}
}

// Failure builds the error variant.
func Failure(code, message string) Result {
	return Result{Err: &APIError{Code: code, Message: message}}
}

// envelope mirrors the API's response contract: {"data": ...} on success,
// {"error": ..., "message": ...} on failure.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
	Message string          `json:"message"`
}

// decodeBody normalizes a response body into a Result. Bodies that are not
// valid JSON become synthesized errors keyed by the HTTP status; a 2xx body
// that parses but lacks a data key becomes an error carrying whatever
// error/message fields it did have.
func decodeBody(status int, body []byte) Result {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if status >= 200 && status < 300 {
			return Failure("invalid_response", string(body))
		}
		return Failure(strconv.Itoa(status), string(body))
	}
	if env.Data != nil {
		return Success(env.Data)
	}
	return Failure(codeString(env.Error), env.Message)
}

// codeString renders the API's error code, which may arrive as a JSON string
// or a bare number.
func codeString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// ErrorMessageFromBody extracts the message field from a raw JSON error body.
// It returns "" when the body is not JSON or carries no message. Used by the
// file tools to surface server messages from raw transport responses.
func ErrorMessageFromBody(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Message
}

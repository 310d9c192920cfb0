// Package types holds the JSON envelopes every API response is wrapped in.
package types

// SuccessEnvelope wraps a handler payload as {"data": ...}.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the public part of a failed request. Details carry
// field-level validation messages or, for unknown benchmark categories,
// the list of valid ones.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps an APIError. RequestID echoes the X-Request-Id header
// so a client report can be matched to server logs.
type ErrorEnvelope struct {
	Error     APIError `json:"error"`
	RequestID string   `json:"request_id,omitempty"`
}

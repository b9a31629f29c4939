package api

import (
	"github.com/danielgtaylor/huma/v2"
)

// envelopeVersion is the wire format version. Clients pin against it, so it
// only changes with a breaking envelope change.
const envelopeVersion = "1"

// Envelope is the uniform response wrapper for every API response.
// Success responses carry data; error responses carry a stable error string
// plus optional machine-readable code, message and details.
type Envelope struct {
	V       string `json:"v"`
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// EnvelopeTransformer wraps every response body in the Envelope structure.
// Registered as a huma transformer on the API config.
func EnvelopeTransformer(_ huma.Context, _ string, v any) (any, error) {
	if apiErr, ok := v.(*APIError); ok {
		env := &Envelope{
			V:       envelopeVersion,
			Success: false,
			Error:   apiErr.Message,
		}
		if apiErr.Code != "" {
			env.Code = apiErr.Code
			env.Message = apiErr.Message
			env.Details = apiErr.Details
		}
		return env, nil
	}

	return &Envelope{
		V:       envelopeVersion,
		Success: true,
		Data:    v,
	}, nil
}

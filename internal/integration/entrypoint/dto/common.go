// Package dto defines data transfer objects for API requests and responses.
package dto

// StatusResponse is the generic acknowledgement for write endpoints.
type StatusResponse struct {
	Status string `json:"status"`
}

// OK is the canonical success acknowledgement.
var OK = StatusResponse{Status: "ok"}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

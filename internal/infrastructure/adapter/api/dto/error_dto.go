package dto

// ErrorResponse is the uniform error body returned by every endpoint.
// Code is the domain error code, not the HTTP status.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

package dto

// ErrorResponse is the uniform error body returned by all handlers.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

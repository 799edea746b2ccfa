// Package apierror provides the standardized error response structures shared
// by the three services. Every 4xx/5xx response goes through this package so
// clients always receive the same envelope and internal details (stack traces,
// SQL errors, sibling-service URLs) never leak.
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Msg string `json:"msg"`
}

func New(msg string) *APIError {
	return &APIError{Msg: msg}
}

// ValidationError wraps multiple field errors from request validation.
type ValidationError struct {
	Msg    string            `json:"msg"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Msg: "validation failed", Fields: fields}
}

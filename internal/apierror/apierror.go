// Package apierror provides the standard response envelope for API failures.
// Every 4xx/5xx body goes through this package so clients always receive
// {success: false, message: ...} and internal details (stack traces, SQL
// errors) never leak past the HTTP boundary.
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func New(msg string) *APIError {
	return &APIError{Success: false, Message: msg}
}

// ValidationError carries per-field failures from request validation.
type ValidationError struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Success: false, Message: "Campos obrigatórios faltando ou inválidos.", Fields: fields}
}

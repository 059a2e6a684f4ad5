package chi

// ErrorCode is a machine-readable error category in error responses.
type ErrorCode string

// Error codes returned to callers.
const (
	ErrorCodeBadRequest    ErrorCode = "bad_request"
	ErrorCodeUnauthorized  ErrorCode = "unauthorized"
	ErrorCodeInternalError ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

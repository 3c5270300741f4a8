package api

import "fmt"

// NetworkError means the request never produced an HTTP response: dial
// failure, timeout, cancelled context.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is any 5xx response.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server error (%d)", e.StatusCode)
}

// ValidationError carries the per-field messages of a 400 response.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// NotFoundError is a 404 response.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message == "" {
		return "not found"
	}
	return e.Message
}

// ConflictError is a 409 response, raised when a delete is refused
// because other records still reference the target.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// UnauthorizedError is a 401 response.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string { return e.Message }

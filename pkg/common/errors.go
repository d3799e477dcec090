package common

import "net/http"

// Error codes used across services
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeInternalServer     = "INTERNAL_SERVER_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// AppError represents an application error with an HTTP status code
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	return e.Message
}

// NewBadRequestError creates a 400 error
func NewBadRequestError(message string) *AppError {
	return &AppError{Code: ErrCodeBadRequest, Message: message, StatusCode: http.StatusBadRequest}
}

// NewNotFoundError creates a 404 error
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message, StatusCode: http.StatusNotFound}
}

// NewInternalServerError creates a 500 error
func NewInternalServerError(message string) *AppError {
	return &AppError{Code: ErrCodeInternalServer, Message: message, StatusCode: http.StatusInternalServerError}
}

// NewServiceUnavailableError creates a 503 error
func NewServiceUnavailableError(message string) *AppError {
	return &AppError{Code: ErrCodeServiceUnavailable, Message: message, StatusCode: http.StatusServiceUnavailable}
}

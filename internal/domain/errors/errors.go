// Package errors defines the application-level error taxonomy.
package errors

import (
	"net/http"

	"footprint/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Location-related errors
	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"未获得定位权限",
		"",
	)

	ErrLocationUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"LOCATION_UNAVAILABLE",
		"定位失败",
		"",
	)

	// Backend-related errors
	ErrNetwork = NewBaseError(
		http.StatusBadGateway,
		"NETWORK_FAILURE",
		"网络错误",
		"",
	)

	ErrBusiness = NewBaseError(
		http.StatusBadRequest,
		"BUSINESS_ERROR",
		"请求失败",
		"",
	)

	ErrAuthRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"您需要登录后才能继续操作",
		"",
	)

	// Track-recording errors
	ErrTrackInProgress = NewBaseError(
		http.StatusConflict,
		"TRACK_IN_PROGRESS",
		"已有正在记录的轨迹",
		"",
	)

	ErrNoActiveTrack = NewBaseError(
		http.StatusBadRequest,
		"NO_ACTIVE_TRACK",
		"没有正在记录的轨迹",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"输入数据验证失败",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到该资源",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系统内部错误",
		"",
	)
)

// BusinessError carries the backend's own non-success code and message,
// implementing the AppError interface.
type BusinessError struct {
	code    int
	message string
}

// NewBusinessError creates an error for a backend response whose inner code
// signals failure.
func NewBusinessError(code int, message string) AppError {
	if message == "" {
		message = "请求失败"
	}

	return &BusinessError{
		code:    code,
		message: message,
	}
}

// Error implements the error interface
func (e *BusinessError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BusinessError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *BusinessError) ErrorCode() string {
	return "BUSINESS_ERROR"
}

// Message returns the user-friendly error message
func (e *BusinessError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BusinessError) Details() string {
	return ""
}

// Code returns the backend's inner response code.
func (e *BusinessError) Code() int {
	return e.code
}

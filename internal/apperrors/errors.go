package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

type ErrorCode string

// AppError is the application error carried across service boundaries.
// HTTPCode is used by the handler layer only and never serialized.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predeclared errors. Conflict-class failures (duplicate email, duplicate
// application) map to 400, matching the public API contract.
var (
	// Authentication and authorization
	ErrUnauthorized       = New(CodeUnauthorized, "Not authorized, token failed", http.StatusUnauthorized)
	ErrNoToken            = New(CodeUnauthorized, "No token, authorization denied", http.StatusUnauthorized)
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid credentials", http.StatusBadRequest)

	// Users
	ErrUserNotFound     = New(CodeUserNotFound, "User not found", http.StatusBadRequest)
	ErrStudentNotFound  = New(CodeStudentNotFound, "Student not found", http.StatusNotFound)
	ErrEmailExists      = New(CodeEmailAlreadyExists, "User already exists", http.StatusBadRequest)
	ErrInvalidUserRole  = New(CodeInvalidUserRole, "Role must be student or company", http.StatusBadRequest)
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)

	// Internships and applications
	ErrInternshipNotFound  = New(CodeInternshipNotFound, "Internship not found", http.StatusNotFound)
	ErrAlreadyApplied      = New(CodeAlreadyApplied, "You already applied", http.StatusBadRequest)
	ErrApplicationNotFound = New(CodeApplicationNotFound, "Application not found", http.StatusNotFound)
	ErrInvalidStatus       = New(CodeInvalidStatus, "Invalid status", http.StatusBadRequest)

	// Profiles
	ErrProfileNotFound = New(CodeProfileNotFound, "Profile not found", http.StatusNotFound)
)

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Server error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"

	// Resources
	CodeUserNotFound        ErrorCode = "USER_NOT_FOUND"
	CodeStudentNotFound     ErrorCode = "STUDENT_NOT_FOUND"
	CodeInternshipNotFound  ErrorCode = "INTERNSHIP_NOT_FOUND"
	CodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"
	CodeProfileNotFound     ErrorCode = "PROFILE_NOT_FOUND"

	// Business logic
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeAlreadyApplied     ErrorCode = "ALREADY_APPLIED"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)

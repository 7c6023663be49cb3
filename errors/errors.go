package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies application errors.
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone    ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidCode     ErrorCode = "INVALID_CODE"
	ErrCodeExpiredCode     ErrorCode = "EXPIRED_CODE"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"
	ErrCodeInvalidPin      ErrorCode = "INVALID_PIN"

	// Entity errors
	ErrCodeHotelNotFound   ErrorCode = "HOTEL_NOT_FOUND"
	ErrCodeRoomNotFound    ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeStaffNotFound   ErrorCode = "STAFF_NOT_FOUND"
	ErrCodeTicketNotFound  ErrorCode = "TICKET_NOT_FOUND"
	ErrCodeRequestNotFound ErrorCode = "REQUEST_NOT_FOUND"
	ErrCodeInvalidStatus   ErrorCode = "INVALID_STATUS"

	// Transition errors
	ErrCodeForbiddenStatus ErrorCode = "FORBIDDEN_STATUS"
	ErrCodeNotAssigned     ErrorCode = "NOT_ASSIGNED"
	ErrCodeTerminalStatus  ErrorCode = "TERMINAL_STATUS"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// External services
	ErrCodeUploadFailed ErrorCode = "UPLOAD_FAILED"
	ErrCodeMailFailed   ErrorCode = "MAIL_FAILED"
)

// AppError carries a code alongside the message and wrapped cause.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// Entity sentinels
	ErrHotelNotFound = errors.New("hotel not found")
	ErrRoomNotFound  = errors.New("room not found")
	ErrStaffNotFound = errors.New("staff member not found")

	// Transition sentinels
	ErrInvalidStatus    = errors.New("invalid status")
	ErrForbiddenStatus  = errors.New("status not allowed for this actor")
	ErrTicketUnassigned = errors.New("ticket has no assigned staff member")
	ErrTicketCompleted  = errors.New("ticket already completed")

	// Auth sentinels
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidPin   = errors.New("invalid PIN")

	// Validation sentinels
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
)

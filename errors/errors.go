package errors

import (
	"errors"
	"fmt"
)

// ErrorCode phân loại lỗi của ứng dụng
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden       ErrorCode = "FORBIDDEN"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUnverified      ErrorCode = "EMAIL_NOT_VERIFIED"
	ErrCodeInvalidCode     ErrorCode = "INVALID_CODE"
	ErrCodeExpiredCode     ErrorCode = "EXPIRED_CODE"

	// Resource errors
	ErrCodeNotFound  ErrorCode = "NOT_FOUND"
	ErrCodeConflict  ErrorCode = "CONFLICT"
	ErrCodeDuplicate ErrorCode = "DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// External collaborator errors
	ErrCodeProvider ErrorCode = "PROVIDER_ERROR"
	ErrCodeMailer   ErrorCode = "MAILER_ERROR"

	// Unexpected
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// AppError mang code + message cho tầng HTTP
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

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetAppError lấy AppError từ error chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsCode báo err có mang ErrorCode đó không
func IsCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("email already in use")
	ErrInvalidPassword   = errors.New("incorrect password")
	ErrEmailNotVerified  = errors.New("email not verified")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrDuplicateBooking = errors.New("room already booked by this user")

	// Room/hotel errors
	ErrHotelNotFound = errors.New("hotel not found")
	ErrRoomNotFound  = errors.New("room not found")

	// Payment errors
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrPaymentPending    = errors.New("a pending payment already exists for this booking")
	ErrMissingMetadata   = errors.New("missing bookingId in event metadata")
	ErrInvalidSignature  = errors.New("invalid notification signature")
	ErrUnhandledEvent    = errors.New("unhandled event type")
	ErrProviderUnhealthy = errors.New("payment provider request failed")
)

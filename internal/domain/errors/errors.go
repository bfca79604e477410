package errors

import (
	"net/http"

	"greenlake/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

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

// WithDetails returns a copy carrying detailed error information.
// The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors carrying the same business code, so detailed copies
// produced by WithDetails compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.httpCode == t.httpCode
}

// Predefined error types
var (
	// User and wallet errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"username or email already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrWalletRequired = NewBaseError(
		http.StatusBadRequest,
		"WALLET_REQUIRED",
		"user has no wallet",
		"",
	)

	ErrWalletExists = NewBaseError(
		http.StatusBadRequest,
		"WALLET_EXISTS",
		"user already has a wallet",
		"",
	)

	// Catalog errors
	ErrHotelNotFound = NewBaseError(
		http.StatusNotFound,
		"HOTEL_NOT_FOUND",
		"hotel not found",
		"",
	)

	ErrVehicleNotFound = NewBaseError(
		http.StatusNotFound,
		"VEHICLE_NOT_FOUND",
		"vehicle not found",
		"",
	)

	// Cart and order errors
	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"cart item not found",
		"",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"cart is empty",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"order not found",
		"",
	)

	ErrOrderNotCancellable = NewBaseError(
		http.StatusBadRequest,
		"ORDER_NOT_CANCELLABLE",
		"order cannot be cancelled",
		"",
	)

	// Offer and redemption errors
	ErrDiscountNotFound = NewBaseError(
		http.StatusNotFound,
		"DISCOUNT_NOT_FOUND",
		"discount not found",
		"",
	)

	ErrAmenityNotFound = NewBaseError(
		http.StatusNotFound,
		"AMENITY_NOT_FOUND",
		"amenity not found",
		"",
	)

	ErrOfferInactive = NewBaseError(
		http.StatusBadRequest,
		"OFFER_INACTIVE",
		"offer is not active",
		"",
	)

	ErrOfferNotStarted = NewBaseError(
		http.StatusBadRequest,
		"OFFER_NOT_STARTED",
		"offer is not yet valid",
		"",
	)

	ErrOfferExpired = NewBaseError(
		http.StatusBadRequest,
		"OFFER_EXPIRED",
		"offer has expired",
		"",
	)

	ErrOfferUsageLimit = NewBaseError(
		http.StatusBadRequest,
		"OFFER_USAGE_LIMIT",
		"offer has reached its usage limit",
		"",
	)

	ErrQuantityExceeded = NewBaseError(
		http.StatusBadRequest,
		"QUANTITY_EXCEEDED",
		"requested quantity exceeds the allowed maximum",
		"",
	)

	ErrRedemptionNotFound = NewBaseError(
		http.StatusNotFound,
		"REDEMPTION_NOT_FOUND",
		"redemption not found",
		"",
	)

	ErrRedemptionAlreadyUsed = NewBaseError(
		http.StatusBadRequest,
		"REDEMPTION_ALREADY_USED",
		"redemption code has already been used",
		"",
	)

	// Token ledger errors
	ErrInsufficientTokens = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_TOKENS",
		"insufficient token balance",
		"",
	)

	ErrBurnFailed = NewBaseError(
		http.StatusInternalServerError,
		"BURN_FAILED",
		"token burn failed",
		"",
	)

	ErrLedgerUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"LEDGER_UNAVAILABLE",
		"token ledger is unavailable",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// NewValidationError returns a VALIDATION_FAILED error with the offending detail.
func NewValidationError(details string) error {
	return ErrValidationFailed.WithDetails(details)
}

// Availability codes carried by AvailabilityError
const (
	AvailabilityHotelFull     = "HOTEL_UNAVAILABLE"
	AvailabilityVehicleBooked = "VEHICLE_UNAVAILABLE"
)

// AvailabilityError reports that a bookable item cannot take the requested booking.
type AvailabilityError struct {
	code    string
	message string
}

// NewAvailabilityError creates an availability error with a machine-readable code.
func NewAvailabilityError(code, message string) *AvailabilityError {
	return &AvailabilityError{code: code, message: message}
}

func (e *AvailabilityError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *AvailabilityError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the availability code
func (e *AvailabilityError) ErrorCode() string {
	return e.code
}

// Message returns the user-friendly error message
func (e *AvailabilityError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *AvailabilityError) Details() string {
	return ""
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error for retry classification.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// IsDatabaseError reports whether err originates from a failed store operation.
func IsDatabaseError(err error) bool {
	var dbErr *DatabaseExecuteError

	return errors.As(err, &dbErr)
}

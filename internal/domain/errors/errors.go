// Package errors defines the application-level error taxonomy. Business-rule
// violations carry an HTTP status and a stable business code so the delivery
// layer can map them to 4xx responses; everything else falls through to 500.
package errors

import (
	"net/http"

	"bookify/internal/errors"
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
	// Account-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email address is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Cart-related errors
	ErrCartNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_NOT_FOUND",
		"Cart not found",
		"",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"Cart is empty",
		"",
	)

	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"Cart item not found",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"Quantity must be at least 1",
		"",
	)

	// Catalog-related errors
	ErrTicketNotFound = NewBaseError(
		http.StatusNotFound,
		"TICKET_NOT_FOUND",
		"Ticket not found",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrUnknownItemType = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_ITEM_TYPE",
		"Unknown item type",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrOrderHasNoItems = NewBaseError(
		http.StatusBadRequest,
		"ORDER_HAS_NO_ITEMS",
		"Order has no items",
		"",
	)

	ErrOrderDelivered = NewBaseError(
		http.StatusConflict,
		"ORDER_DELIVERED",
		"Delivered orders cannot be modified",
		"",
	)

	ErrOrderDeleteDelivered = NewBaseError(
		http.StatusConflict,
		"ORDER_DELIVERED",
		"Delivered orders cannot be deleted.",
		"",
	)

	ErrOrderNotDelivered = NewBaseError(
		http.StatusConflict,
		"ORDER_NOT_DELIVERED",
		"Order has not been delivered yet",
		"",
	)

	ErrOrderItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_ITEM_NOT_FOUND",
		"Order item not found",
		"",
	)

	// Payment-related errors
	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"Payment not found",
		"",
	)

	ErrPaymentOutstanding = NewBaseError(
		http.StatusConflict,
		"PAYMENT_OUTSTANDING",
		"A payment is already under review for this order",
		"",
	)

	ErrInvalidPaymentStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAYMENT_STATUS",
		"Invalid status",
		"",
	)

	ErrPaymentNotPending = NewBaseError(
		http.StatusConflict,
		"PAYMENT_NOT_PENDING",
		"Payment has already been verified",
		"",
	)

	// Inventory-related errors
	ErrTicketInventoryInsufficient = NewBaseError(
		http.StatusConflict,
		"TICKET_INVENTORY_INSUFFICIENT",
		"Ticket inventory insufficient",
		"",
	)

	ErrProductInventoryInsufficient = NewBaseError(
		http.StatusConflict,
		"PRODUCT_INVENTORY_INSUFFICIENT",
		"Product inventory insufficient",
		"",
	)

	// Reward-related errors
	ErrRewardNotFound = NewBaseError(
		http.StatusNotFound,
		"REWARD_NOT_FOUND",
		"Reward not found",
		"",
	)

	ErrInsufficientPoints = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_POINTS",
		"Not enough loyalty points for this reward",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

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

// Unwrap exposes the original cause for errors.Is/As chains.
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Package errors defines the business errors surfaced to API clients.
// Each carries an HTTP status and a stable machine-readable code.
package errors

import (
	"net/http"

	"gymtrack/internal/errors"
)

// AppError is implemented by every error the API layer renders as-is.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func newError(httpCode int, errorCode, message string) *BaseError {
	return NewBaseError(httpCode, errorCode, message, "")
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WrapMessage prefixes the error with call-site context. errors.Is still matches e.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithDetails returns a copy carrying details. The copy no longer matches e with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	cp := *e
	cp.details = details

	return &cp
}

var (
	ErrUserNotFound       = newError(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrUserCreationFailed = newError(http.StatusInternalServerError, "USER_CREATION_FAILED", "Failed to create user")
	ErrUserUpdateFailed   = newError(http.StatusInternalServerError, "USER_UPDATE_FAILED", "Failed to update user")

	ErrFoodNotFound      = newError(http.StatusNotFound, "FOOD_NOT_FOUND", "Food not found")
	ErrFoodAlreadyExists = newError(http.StatusConflict, "FOOD_ALREADY_EXISTS", "A food with this id already exists")

	ErrInvalidQuantity = newError(http.StatusBadRequest, "INVALID_QUANTITY",
		"Quantity must be a finite number greater than or equal to zero")
	ErrBasketEmpty        = newError(http.StatusBadRequest, "BASKET_EMPTY", "Add at least one food before submitting a meal")
	ErrBasketLineNotFound = newError(http.StatusNotFound, "BASKET_LINE_NOT_FOUND", "Food is not in the basket")

	ErrInvalidMealType = newError(http.StatusBadRequest, "INVALID_MEAL_TYPE",
		"Meal type must be Breakfast, Lunch, Dinner or Snack")
	ErrMealNotFound           = newError(http.StatusNotFound, "MEAL_NOT_FOUND", "Meal not found")
	ErrMealOwnershipViolation = newError(http.StatusForbidden, "MEAL_OWNERSHIP_VIOLATION", "You do not have access to this meal")

	ErrMealPlanNotFound     = newError(http.StatusNotFound, "MEAL_PLAN_NOT_FOUND", "No meal plan stored for this user")
	ErrMealPlanFoodNotFound = newError(http.StatusNotFound, "MEAL_PLAN_FOOD_NOT_FOUND", "Meal plan has no food at this position")

	ErrInvalidQRCode = newError(http.StatusBadRequest, "INVALID_QR_CODE", "QR code does not describe a food")

	ErrDeviceNotFound           = newError(http.StatusNotFound, "DEVICE_NOT_FOUND", "Device not found")
	ErrDeviceOwnershipViolation = newError(http.StatusForbidden, "DEVICE_OWNERSHIP_VIOLATION", "You do not have access to this device")

	ErrValidationFailed = newError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
)

// DatabaseExecuteError hides a driver error behind a generic 500.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return e.details + ": " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }

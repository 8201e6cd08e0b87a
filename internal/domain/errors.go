package domain

import (
	"errors"
	"fmt"
)

// AppError represents an application error
type AppError struct {
	Code    string
	Message string
	Details string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error
func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Error codes for different categories of errors
const (
	ErrCodeDuplicateTitle    = "DUPLICATE_TITLE"
	ErrCodeGameNotFound      = "GAME_NOT_FOUND"
	ErrCodeAlreadyOwned      = "ALREADY_OWNED"
	ErrCodeNotOwned          = "NOT_OWNED"
	ErrCodeNoOwnedGames      = "NO_OWNED_GAMES"
	ErrCodeMissingActiveUser = "MISSING_ACTIVE_USER"
	ErrCodeInvalidUsage      = "INVALID_USAGE"

	ErrCodeStoreRead  = "STORE_READ_ERROR"
	ErrCodeStoreWrite = "STORE_WRITE_ERROR"
)

package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Snapshot errors
	ErrCodeSnapshotNotFound ErrorCode = "SNAPSHOT_NOT_FOUND"

	// Filesystem errors
	ErrCodeIOFailure ErrorCode = "IO_FAILURE"

	// Configuration errors
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// BackupError represents a structured error with context
type BackupError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *BackupError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BackupError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *BackupError) WithDetail(key string, value interface{}) *BackupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *BackupError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new BackupError
func New(code ErrorCode, message string) *BackupError {
	return &BackupError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a BackupError
func Wrap(err error, code ErrorCode, message string) *BackupError {
	return &BackupError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific BackupError code
func Is(err error, code ErrorCode) bool {
	return GetCode(err) == code && code != ""
}

// As returns the first BackupError in err's chain, if any.
func As(err error) (*BackupError, bool) {
	for err != nil {
		if backupErr, ok := err.(*BackupError); ok {
			return backupErr, true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = unwrapper.Unwrap()
	}
	return nil, false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if backupErr, ok := As(err); ok {
		return backupErr.Code
	}
	return ""
}

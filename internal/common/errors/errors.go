// Package errors provides standardized error handling for the intake pipeline.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Per-record data problems are never errors. They become flags on the
// application and deductions on its scores. Error codes here cover batch-level
// failures only: bad inputs, bad configuration, failed outputs.
const (
	ErrCodeCSVReadFailed        ErrorCode = "CSV_READ_FAILED"
	ErrCodeCSVHeaderMissing     ErrorCode = "CSV_HEADER_MISSING"
	ErrCodeInvalidReferenceDate ErrorCode = "INVALID_REFERENCE_DATE"

	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"
	ErrCodeWeightInvalid ErrorCode = "WEIGHT_INVALID"

	ErrCodeOutputWriteFailed ErrorCode = "OUTPUT_WRITE_FAILED"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeSchemaInitFailed         ErrorCode = "SCHEMA_INIT_FAILED"
	ErrCodeDBExportFailed           ErrorCode = "DB_EXPORT_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewCSVReadFailedError creates a non-retryable input error.
func NewCSVReadFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCSVReadFailed,
		Message:   "Failed to read input CSV",
		Details:   fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCSVHeaderMissingError creates a non-retryable input error.
func NewCSVHeaderMissingError(path string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCSVHeaderMissing,
		Message:   "Input CSV has no header row",
		Details:   fmt.Sprintf("path: %s", path),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidReferenceDateError creates a non-retryable configuration error.
func NewInvalidReferenceDateError(value string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidReferenceDate,
		Message:   "Reference date is not a valid ISO date",
		Details:   fmt.Sprintf("value: %s", value),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewConfigInvalidError creates a non-retryable configuration error.
func NewConfigInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigInvalid,
		Message:   "Configuration validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewWeightInvalidError creates a non-retryable scoring configuration error.
func NewWeightInvalidError(flag string, weight int) *StandardError {
	return &StandardError{
		Code:      ErrCodeWeightInvalid,
		Message:   "Scoring weight must be non-negative",
		Details:   fmt.Sprintf("flag: %s, weight: %d", flag, weight),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewOutputWriteFailedError creates a retryable output error.
func NewOutputWriteFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeOutputWriteFailed,
		Message:   "Failed to write output file",
		Details:   fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSchemaInitFailedError creates a retryable schema setup error.
func NewSchemaInitFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSchemaInitFailed,
		Message:   "Failed to ensure export schema",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDBExportFailedError creates a retryable database export error.
func NewDBExportFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDBExportFailed,
		Message:   "Database export failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// GetRetryCount returns the recommended retry count for a code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeDatabaseConnectionFailed,
		ErrCodeSchemaInitFailed,
		ErrCodeDBExportFailed:
		return 3

	case ErrCodeOutputWriteFailed:
		return 1

	default:
		return 0
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "CSV") || strings.Contains(codeStr, "REFERENCE"):
		return "INPUT"
	case strings.Contains(codeStr, "CONFIG") || strings.Contains(codeStr, "WEIGHT"):
		return "CONFIG"
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "SCHEMA") || strings.Contains(codeStr, "DB_"):
		return "DATABASE"
	case strings.Contains(codeStr, "OUTPUT"):
		return "OUTPUT"
	default:
		return "OTHER"
	}
}

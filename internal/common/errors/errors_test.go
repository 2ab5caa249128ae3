// internal/common/errors/errors_test.go
package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Constructor Tests
// ==========================

func TestConstructors_CodeAndRetryability(t *testing.T) {
	cause := errors.New("disk full")

	tests := []struct {
		name      string
		err       *StandardError
		wantCode  ErrorCode
		retryable bool
	}{
		{"csv read", NewCSVReadFailedError("intake.csv", cause), ErrCodeCSVReadFailed, false},
		{"csv header", NewCSVHeaderMissingError("intake.csv"), ErrCodeCSVHeaderMissing, false},
		{"reference date", NewInvalidReferenceDateError("02/15/2026"), ErrCodeInvalidReferenceDate, false},
		{"config", NewConfigInvalidError("bad yaml"), ErrCodeConfigInvalid, false},
		{"weight", NewWeightInvalidError("low_gpa", -1), ErrCodeWeightInvalid, false},
		{"output write", NewOutputWriteFailedError("report.md", cause), ErrCodeOutputWriteFailed, true},
		{"db connection", NewDatabaseConnectionFailedError(cause), ErrCodeDatabaseConnectionFailed, true},
		{"schema init", NewSchemaInitFailedError(cause), ErrCodeSchemaInitFailed, true},
		{"db export", NewDBExportFailedError(cause), ErrCodeDBExportFailed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.retryable, tt.err.Retryable)
			assert.NotEmpty(t, tt.err.Message)
			assert.False(t, tt.err.Timestamp.IsZero())
		})
	}
}

func TestStandardError_Error(t *testing.T) {
	err := NewCSVReadFailedError("intake.csv", errors.New("boom"))
	assert.Contains(t, err.Error(), "CSV_READ_FAILED")
	assert.Contains(t, err.Error(), "Failed to read input CSV")
}

// ==========================
// Retry and Category Tests
// ==========================

func TestGetRetryCount(t *testing.T) {
	assert.Equal(t, 3, GetRetryCount(ErrCodeDatabaseConnectionFailed))
	assert.Equal(t, 3, GetRetryCount(ErrCodeDBExportFailed))
	assert.Equal(t, 1, GetRetryCount(ErrCodeOutputWriteFailed))
	assert.Equal(t, 0, GetRetryCount(ErrCodeCSVReadFailed))
	assert.Equal(t, 0, GetRetryCount(ErrCodeWeightInvalid))
}

func TestIsRetryableErrorCode(t *testing.T) {
	assert.True(t, IsRetryableErrorCode(ErrCodeSchemaInitFailed))
	assert.False(t, IsRetryableErrorCode(ErrCodeConfigInvalid))
}

func TestGetErrorCategory(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeCSVReadFailed, "INPUT"},
		{ErrCodeCSVHeaderMissing, "INPUT"},
		{ErrCodeInvalidReferenceDate, "INPUT"},
		{ErrCodeConfigInvalid, "CONFIG"},
		{ErrCodeWeightInvalid, "CONFIG"},
		{ErrCodeDatabaseConnectionFailed, "DATABASE"},
		{ErrCodeSchemaInitFailed, "DATABASE"},
		{ErrCodeDBExportFailed, "DATABASE"},
		{ErrCodeOutputWriteFailed, "OUTPUT"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GetErrorCategory(tt.code), "code %s", tt.code)
	}
}

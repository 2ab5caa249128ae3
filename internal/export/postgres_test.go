// internal/export/postgres_test.go
package export

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "groupscholar-intake/internal/common/errors"
	"groupscholar-intake/internal/common/logger"
	"groupscholar-intake/internal/engine/aggregate"
	"groupscholar-intake/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func createMockExporter(t *testing.T) (*PostgresExporter, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgresExporter(db, logger.NewNoOpLogger()), mock
}

// ==========================
// Schema Tests
// ==========================

func TestEnsureSchema(t *testing.T) {
	exporter, mock := createMockExporter(t)
	mock.ExpectExec("CREATE SCHEMA IF NOT EXISTS intake_normalizer").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := exporter.EnsureSchema(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_Failure(t *testing.T) {
	exporter, mock := createMockExporter(t)
	mock.ExpectExec("CREATE SCHEMA").WillReturnError(errors.New("permission denied"))

	err := exporter.EnsureSchema(context.Background())

	require.Error(t, err)
	stdErr, ok := err.(*stderrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, stderrors.ErrCodeSchemaInitFailed, stdErr.Code)
}

// ==========================
// Batch Export Tests
// ==========================

func TestExportBatch(t *testing.T) {
	exporter, mock := createMockExporter(t)

	apps := []models.NormalizedApplication{cleanApp("GS-1"), cleanApp("GS-2")}
	summary := aggregate.Build(apps)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO intake_normalizer.batches").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO intake_normalizer.applications").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO intake_normalizer.applications").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	batchID, err := exporter.ExportBatch(context.Background(), apps, summary, "february-wave")

	require.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", batchID.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExportBatch_EmptyBatchWritesSummaryRowOnly(t *testing.T) {
	exporter, mock := createMockExporter(t)
	summary := aggregate.Build(nil)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO intake_normalizer.batches").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := exporter.ExportBatch(context.Background(), nil, summary, "")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExportBatch_RollsBackOnInsertFailure(t *testing.T) {
	exporter, mock := createMockExporter(t)

	apps := []models.NormalizedApplication{cleanApp("GS-1")}
	summary := aggregate.Build(apps)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO intake_normalizer.batches").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO intake_normalizer.applications").
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	_, err := exporter.ExportBatch(context.Background(), apps, summary, "")

	require.Error(t, err)
	stdErr, ok := err.(*stderrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, stderrors.ErrCodeDBExportFailed, stdErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExportBatch_BeginFailure(t *testing.T) {
	exporter, mock := createMockExporter(t)
	mock.ExpectBegin().WillReturnError(errors.New("connection reset"))

	_, err := exporter.ExportBatch(context.Background(), nil, aggregate.Build(nil), "")

	require.Error(t, err)
	stdErr, ok := err.(*stderrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, stderrors.ErrCodeDBExportFailed, stdErr.Code)
}

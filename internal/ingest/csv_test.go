// internal/ingest/csv_test.go
package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "groupscholar-intake/internal/common/errors"
)

// ==========================
// Reader Tests
// ==========================

func TestRead_CanonicalHeaders(t *testing.T) {
	input := strings.Join([]string{
		"Applicant ID,Full Name,E-mail,Submitted At",
		"GS-1,Ada Moreno,ada@university.edu,2026-02-10",
	}, "\n")

	rows, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "GS-1", rows[0]["applicant_id"])
	assert.Equal(t, "Ada Moreno", rows[0]["name"])
	assert.Equal(t, "ada@university.edu", rows[0]["email"])
	assert.Equal(t, "2026-02-10", rows[0]["submission_date"])
}

func TestRead_UnknownColumnsPassThrough(t *testing.T) {
	input := strings.Join([]string{
		"applicant_id,Essay Topic",
		"GS-1,Community Service",
	}, "\n")

	rows, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Community Service", rows[0]["essay_topic"])
}

func TestRead_RaggedRows(t *testing.T) {
	input := strings.Join([]string{
		"applicant_id,name,email",
		"GS-1,Ada Moreno",
		"GS-2,Ben Osei,ben@gmail.com,extra-cell",
	}, "\n")

	rows, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	_, present := rows[0]["email"]
	assert.False(t, present, "short rows leave trailing fields absent")
	assert.Equal(t, "ben@gmail.com", rows[1]["email"], "long rows drop the overflow")
}

func TestRead_HeaderOnly(t *testing.T) {
	rows, err := Read(strings.NewReader("applicant_id,name,email\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRead_EmptyInput(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	require.Error(t, err)

	stdErr, ok := err.(*stderrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, stderrors.ErrCodeCSVHeaderMissing, stdErr.Code)
}

func TestRead_QuotedFields(t *testing.T) {
	input := strings.Join([]string{
		"applicant_id,eligibility_notes",
		`GS-1,"Missing essay, follow up next week"`,
	}, "\n")

	rows, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "Missing essay, follow up next week", rows[0]["eligibility_notes"])
}

// ==========================
// File Tests
// ==========================

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intake.csv")
	content := "applicant_id,name\nGS-1,Ada Moreno\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rows, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ada Moreno", rows[0]["name"])
}

func TestReadFile_MissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)

	stdErr, ok := err.(*stderrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, stderrors.ErrCodeCSVReadFailed, stdErr.Code)
}

func TestReadFile_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := ReadFile(path)
	require.Error(t, err)

	stdErr, ok := err.(*stderrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, stderrors.ErrCodeCSVHeaderMissing, stdErr.Code)
}

// internal/ingest/csv.go
package ingest

import (
	"encoding/csv"
	"io"
	"os"

	stderrors "groupscholar-intake/internal/common/errors"
	"groupscholar-intake/internal/models"
	"groupscholar-intake/pkg/fields"
)

// ReadFile reads an intake CSV from disk and resolves its headers to
// canonical field names.
func ReadFile(path string) ([]models.RawRecord, error) {
	handle, err := os.Open(path)
	if err != nil {
		return nil, stderrors.NewCSVReadFailedError(path, err)
	}
	defer handle.Close()

	rows, err := Read(handle)
	if err != nil {
		if stdErr, ok := err.(*stderrors.StandardError); ok && stdErr.Code == stderrors.ErrCodeCSVHeaderMissing {
			return nil, stderrors.NewCSVHeaderMissingError(path)
		}
		return nil, stderrors.NewCSVReadFailedError(path, err)
	}
	return rows, nil
}

// Read parses CSV rows into RawRecords. Ragged rows are tolerated: short
// rows leave trailing fields absent, long rows drop the overflow. Data
// problems inside a cell are the engine's business, not the reader's.
func Read(r io.Reader) ([]models.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, stderrors.NewCSVHeaderMissingError("")
	}
	if err != nil {
		return nil, err
	}

	canonical := make([]string, len(header))
	for i, column := range header {
		canonical[i] = fields.Canonical(column)
	}

	var rows []models.RawRecord
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(models.RawRecord, len(canonical))
		for i, name := range canonical {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// internal/export/json.go
package export

import (
	"encoding/json"
	"os"
	"path/filepath"

	stderrors "groupscholar-intake/internal/common/errors"
	"groupscholar-intake/internal/models"
)

// WriteApplications writes the normalized records as indented JSON. Field
// order comes from the struct definition and map keys are sorted by the
// encoder, so re-running the same batch produces byte-identical output.
func WriteApplications(apps []models.NormalizedApplication, path string) error {
	if apps == nil {
		apps = []models.NormalizedApplication{}
	}
	return writeJSON(apps, path)
}

// WriteSummary writes the batch summary as indented JSON.
func WriteSummary(summary models.Summary, path string) error {
	return writeJSON(summary, path)
}

// WriteScorecard writes the scorecard as indented JSON.
func WriteScorecard(scorecard models.Scorecard, path string) error {
	return writeJSON(scorecard, path)
}

func writeJSON(payload interface{}, path string) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return stderrors.NewOutputWriteFailedError(path, err)
	}
	data = append(data, '\n')
	if err := ensureParent(path); err != nil {
		return stderrors.NewOutputWriteFailedError(path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return stderrors.NewOutputWriteFailedError(path, err)
	}
	return nil
}

func ensureParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

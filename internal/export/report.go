// internal/export/report.go
package export

import (
	"fmt"
	"os"
	"sort"
	"strings"

	stderrors "groupscholar-intake/internal/common/errors"
	"groupscholar-intake/internal/models"
)

// WriteReport renders the batch summary as a Markdown report for reviewers.
func WriteReport(summary models.Summary, path string) error {
	lines := []string{
		"# Intake Normalization Summary",
		"",
		fmt.Sprintf("Total applications: %d", summary.TotalRows),
		fmt.Sprintf("Flagged applications: %d (%s%%)", summary.FlaggedApplications, formatFloat(summary.FlaggedRate, 1)),
		fmt.Sprintf("Clean applications: %d", summary.CleanApplications),
		fmt.Sprintf("First-gen applicants: %d (%s%%)", summary.FirstGen, formatFloat(summary.FirstGenRate, 1)),
		fmt.Sprintf("GPA average: %s", formatFloatPtr(summary.GPAAvg, 2)),
		fmt.Sprintf("GPA range: %s to %s", formatFloatPtr(summary.GPAMin, 2), formatFloatPtr(summary.GPAMax, 2)),
		fmt.Sprintf("Data quality average: %s", formatFloatPtr(summary.DataQualityAvg, 1)),
		fmt.Sprintf("Readiness average: %s", formatFloatPtr(summary.ReadinessAvg, 1)),
		fmt.Sprintf("Submission window: %s to %s", orNA(summary.SubmissionStart), orNA(summary.SubmissionEnd)),
		"",
		"## Flag counts",
	}

	for _, flag := range models.AllFlags {
		lines = append(lines, fmt.Sprintf("- %s: %d", flag, summary.FlagCounts[flag]))
	}

	lines = append(lines, "", "## Applications by program")
	lines = append(lines, sortedCountLines(summary.ProgramCounts)...)

	lines = append(lines, "", "## GPA by program")
	for _, program := range sortedKeysFloatPtr(summary.ProgramGPAAvg) {
		lines = append(lines, fmt.Sprintf("- %s: %s", program, formatFloatPtr(summary.ProgramGPAAvg[program], 2)))
	}

	lines = append(lines, "", "## Review priorities")
	lines = append(lines, sortedCountLines(summary.ReviewPriorityCounts)...)

	lines = append(lines, "", "## Quality tiers")
	lines = append(lines, sortedCountLines(summary.QualityTierCounts)...)

	lines = append(lines, "", "## Readiness buckets")
	lines = append(lines, sortedCountLines(summary.ReadinessBucketCounts)...)

	lines = append(lines, "")

	if err := ensureParent(path); err != nil {
		return stderrors.NewOutputWriteFailedError(path, err)
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return stderrors.NewOutputWriteFailedError(path, err)
	}
	return nil
}

func sortedCountLines(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("- %s: %d", key, counts[key]))
	}
	return lines
}

func sortedKeysFloatPtr(values map[string]*float64) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func formatFloat(value float64, decimals int) string {
	return fmt.Sprintf("%.*f", decimals, value)
}

func formatFloatPtr(value *float64, decimals int) string {
	if value == nil {
		return "n/a"
	}
	return formatFloat(*value, decimals)
}

func orNA(value string) string {
	if value == "" {
		return "n/a"
	}
	return value
}

// internal/engine/score/weights.go
package score

import (
	stderrors "groupscholar-intake/internal/common/errors"
	"groupscholar-intake/internal/models"
)

// Readiness pseudo-keys for deductions that aren't flags: field gaps and
// note-tag findings.
const (
	KeyMissingGPA                = "missing_gpa"
	KeyNoteMissingEssay          = "note_missing_essay"
	KeyNoteMissingRecommendation = "note_missing_recommendation"
	KeyNoteMissingTranscript     = "note_missing_transcript"
)

// noteTagKeys maps extracted note tags to their readiness pseudo-keys.
var noteTagKeys = map[string]string{
	"missing_essay":          KeyNoteMissingEssay,
	"missing_recommendation": KeyNoteMissingRecommendation,
	"missing_transcript":     KeyNoteMissingTranscript,
}

// Weights holds the per-flag point deductions for both scores. Both scores
// start at 100 and floor at 0. The tables are policy: deterministic,
// documented, and loaded once at engine construction so weight changes are
// auditable without touching rule logic.
type Weights struct {
	DataQuality map[string]int
	Readiness   map[string]int
}

// DefaultWeights returns the compiled-in deduction tables. Structural
// problems (identity, email, submission date) weigh the most; soft or
// informational gaps weigh 2-5 points.
func DefaultWeights() Weights {
	return Weights{
		DataQuality: map[string]int{
			models.FlagMissingApplicantID:       15,
			models.FlagDuplicateApplicantID:     15,
			models.FlagMissingEmail:             12,
			models.FlagDuplicateEmail:           12,
			models.FlagInvalidEmail:             10,
			models.FlagMissingName:              10,
			models.FlagMissingProgram:           8,
			models.FlagInvalidGPA:               8,
			models.FlagInvalidSubmissionDate:    8,
			models.FlagMissingSubmissionDate:    8,
			models.FlagDuplicatePhone:           8,
			models.FlagInvalidPhone:             6,
			models.FlagGPAOutOfRange:            6,
			models.FlagFutureSubmissionDate:     6,
			models.FlagMissingIncome:            6,
			models.FlagInvalidGraduationYear:    5,
			models.FlagMissingPhone:             4,
			models.FlagMissingSchoolType:        4,
			models.FlagMissingCitizenship:       4,
			models.FlagMissingGraduationYear:    4,
			models.FlagGraduationYearOutOfRange: 4,
			models.FlagLowGPA:                   3,
			models.FlagStaleSubmission:          3,
			models.FlagUnrecognizedCitizenship:  3,
			models.FlagMissingReferralSource:    2,
		},
		Readiness: map[string]int{
			models.FlagMissingEmail:             30,
			models.FlagMissingSubmissionDate:    30,
			models.FlagInvalidSubmissionDate:    30,
			models.FlagInvalidEmail:             25,
			KeyMissingGPA:                       20,
			models.FlagMissingProgram:           15,
			models.FlagMissingIncome:            10,
			KeyNoteMissingEssay:                 10,
			KeyNoteMissingRecommendation:        10,
			models.FlagFutureSubmissionDate:     10,
			KeyNoteMissingTranscript:            8,
			models.FlagMissingApplicantID:       8,
			models.FlagGPAOutOfRange:            6,
			models.FlagDuplicateEmail:           5,
			models.FlagDuplicateApplicantID:     5,
			models.FlagDuplicatePhone:           5,
			models.FlagStaleSubmission:          5,
			models.FlagLowGPA:                   4,
			models.FlagMissingGraduationYear:    3,
			models.FlagInvalidGraduationYear:    3,
			models.FlagGraduationYearOutOfRange: 3,
			models.FlagMissingSchoolType:        3,
			models.FlagMissingCitizenship:       3,
			models.FlagMissingName:              3,
			models.FlagUnrecognizedCitizenship:  2,
			models.FlagMissingPhone:             2,
			models.FlagInvalidPhone:             2,
			models.FlagMissingReferralSource:    2,
		},
	}
}

// Merge overlays configured overrides onto the tables. Unknown keys are kept
// so operators can weight future flags ahead of a rule landing.
func (w Weights) Merge(dataQuality, readiness map[string]int) Weights {
	merged := Weights{
		DataQuality: make(map[string]int, len(w.DataQuality)),
		Readiness:   make(map[string]int, len(w.Readiness)),
	}
	for k, v := range w.DataQuality {
		merged.DataQuality[k] = v
	}
	for k, v := range dataQuality {
		merged.DataQuality[k] = v
	}
	for k, v := range w.Readiness {
		merged.Readiness[k] = v
	}
	for k, v := range readiness {
		merged.Readiness[k] = v
	}
	return merged
}

// Validate checks the tables: every known flag must have a non-negative
// data-quality weight.
func (w Weights) Validate() error {
	for _, flag := range models.AllFlags {
		weight, ok := w.DataQuality[flag]
		if !ok {
			return stderrors.NewWeightInvalidError(flag, -1)
		}
		if weight < 0 {
			return stderrors.NewWeightInvalidError(flag, weight)
		}
	}
	for key, weight := range w.Readiness {
		if weight < 0 {
			return stderrors.NewWeightInvalidError(key, weight)
		}
	}
	return nil
}

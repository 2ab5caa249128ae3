// internal/export/issues.go
package export

import (
	"encoding/csv"
	"os"
	"strings"

	stderrors "groupscholar-intake/internal/common/errors"
	"groupscholar-intake/internal/models"
)

var flagLabels = map[string]string{
	models.FlagMissingApplicantID:       "Missing applicant ID",
	models.FlagMissingName:              "Missing applicant name",
	models.FlagMissingEmail:             "Missing email",
	models.FlagInvalidEmail:             "Invalid email",
	models.FlagMissingPhone:             "Missing phone",
	models.FlagInvalidPhone:             "Invalid phone",
	models.FlagMissingProgram:           "Missing program",
	models.FlagMissingSchoolType:        "Missing school type",
	models.FlagMissingReferralSource:    "Missing referral source",
	models.FlagMissingIncome:            "Missing income bracket",
	models.FlagMissingCitizenship:       "Missing citizenship status",
	models.FlagUnrecognizedCitizenship:  "Unrecognized citizenship status",
	models.FlagInvalidGPA:               "Invalid GPA format",
	models.FlagGPAOutOfRange:            "GPA out of range",
	models.FlagLowGPA:                   "Low GPA",
	models.FlagMissingSubmissionDate:    "Missing submission date",
	models.FlagInvalidSubmissionDate:    "Invalid submission date",
	models.FlagFutureSubmissionDate:     "Submission date in future",
	models.FlagStaleSubmission:          "Stale submission",
	models.FlagMissingGraduationYear:    "Missing graduation year",
	models.FlagInvalidGraduationYear:    "Invalid graduation year",
	models.FlagGraduationYearOutOfRange: "Graduation year out of range",
	models.FlagDuplicateEmail:           "Duplicate email",
	models.FlagDuplicateApplicantID:     "Duplicate applicant ID",
	models.FlagDuplicatePhone:           "Duplicate phone",
}

// FollowUpReason renders a flag list as a human-readable reason string.
func FollowUpReason(flags []string) string {
	reasons := make([]string, len(flags))
	for i, flag := range flags {
		if label, ok := flagLabels[flag]; ok {
			reasons[i] = label
		} else {
			reasons[i] = titleFromFlag(flag)
		}
	}
	return strings.Join(reasons, "; ")
}

func titleFromFlag(flag string) string {
	words := strings.Split(flag, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// WriteIssues writes every flagged application to CSV with its flags and a
// readable follow-up reason.
func WriteIssues(apps []models.NormalizedApplication, path string) error {
	if err := ensureParent(path); err != nil {
		return stderrors.NewOutputWriteFailedError(path, err)
	}
	handle, err := os.Create(path)
	if err != nil {
		return stderrors.NewOutputWriteFailedError(path, err)
	}
	defer handle.Close()

	writer := csv.NewWriter(handle)
	header := []string{
		"applicant_id", "name", "email", "program", "submission_date",
		"flag_severity", "review_priority", "flags", "follow_up_reason",
	}
	if err := writer.Write(header); err != nil {
		return stderrors.NewOutputWriteFailedError(path, err)
	}

	for i := range apps {
		app := &apps[i]
		if len(app.Flags) == 0 {
			continue
		}
		row := []string{
			app.ApplicantID,
			app.Name,
			app.Email,
			app.Program,
			app.SubmissionDate,
			app.FlagSeverity,
			app.ReviewPriority,
			strings.Join(app.Flags, "; "),
			FollowUpReason(app.Flags),
		}
		if err := writer.Write(row); err != nil {
			return stderrors.NewOutputWriteFailedError(path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return stderrors.NewOutputWriteFailedError(path, err)
	}
	return nil
}

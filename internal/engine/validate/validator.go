// internal/engine/validate/validator.go
package validate

import (
	"groupscholar-intake/internal/engine/normalize"
	"groupscholar-intake/internal/models"
)

// Apply turns the normalizer's observations plus the batch-wide duplicate
// marks into each record's final flag list. Flags are emitted in a fixed rule
// order so output is deterministic; cross-record duplicate flags come last.
func Apply(apps []models.NormalizedApplication, observations []normalize.Observations) []models.NormalizedApplication {
	marks := DetectDuplicates(apps)

	for i := range apps {
		obs := observations[i]
		var flags []string

		add := func(cond bool, flag string) {
			if cond {
				flags = append(flags, flag)
			}
		}

		add(obs.MissingApplicantID, models.FlagMissingApplicantID)
		add(obs.MissingName, models.FlagMissingName)
		add(obs.MissingEmail, models.FlagMissingEmail)
		add(obs.InvalidEmail, models.FlagInvalidEmail)
		add(obs.MissingPhone, models.FlagMissingPhone)
		add(obs.InvalidPhone, models.FlagInvalidPhone)
		add(obs.MissingProgram, models.FlagMissingProgram)
		add(obs.MissingSchoolType, models.FlagMissingSchoolType)
		add(obs.MissingReferralSource, models.FlagMissingReferralSource)
		add(obs.MissingIncome, models.FlagMissingIncome)
		add(obs.MissingCitizenship, models.FlagMissingCitizenship)
		add(obs.UnrecognizedCitizenship, models.FlagUnrecognizedCitizenship)
		add(obs.InvalidGPA, models.FlagInvalidGPA)
		add(obs.GPAOutOfRange, models.FlagGPAOutOfRange)
		add(obs.LowGPA, models.FlagLowGPA)
		add(obs.MissingSubmissionDate, models.FlagMissingSubmissionDate)
		add(obs.InvalidSubmissionDate, models.FlagInvalidSubmissionDate)
		add(obs.FutureSubmissionDate, models.FlagFutureSubmissionDate)
		add(obs.StaleSubmission, models.FlagStaleSubmission)
		add(obs.MissingGraduationYear, models.FlagMissingGraduationYear)
		add(obs.InvalidGraduationYear, models.FlagInvalidGraduationYear)
		add(obs.GraduationYearOutOfRange, models.FlagGraduationYearOutOfRange)

		add(marks.Email[i], models.FlagDuplicateEmail)
		add(marks.ApplicantID[i], models.FlagDuplicateApplicantID)
		add(marks.Phone[i], models.FlagDuplicatePhone)

		apps[i].Flags = flags
	}

	return apps
}

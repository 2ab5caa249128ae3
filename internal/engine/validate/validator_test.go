// internal/engine/validate/validator_test.go
package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groupscholar-intake/internal/engine/normalize"
	"groupscholar-intake/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func appWithEmail(id, email string) models.NormalizedApplication {
	return models.NormalizedApplication{ApplicantID: id, Email: email}
}

// ==========================
// Flag Emission Tests
// ==========================

func TestApply_NoObservationsNoFlags(t *testing.T) {
	apps := []models.NormalizedApplication{appWithEmail("GS-1", "a@example.com")}
	obs := []normalize.Observations{{}}

	Apply(apps, obs)

	assert.Empty(t, apps[0].Flags)
}

func TestApply_FlagOrderIsDeterministic(t *testing.T) {
	apps := []models.NormalizedApplication{{}}
	obs := []normalize.Observations{{
		MissingApplicantID:    true,
		MissingName:           true,
		LowGPA:                true,
		StaleSubmission:       true,
		MissingGraduationYear: true,
	}}

	Apply(apps, obs)

	want := []string{
		models.FlagMissingApplicantID,
		models.FlagMissingName,
		models.FlagLowGPA,
		models.FlagStaleSubmission,
		models.FlagMissingGraduationYear,
	}
	assert.Equal(t, want, apps[0].Flags)
}

func TestApply_DuplicateFlagsComeLast(t *testing.T) {
	apps := []models.NormalizedApplication{
		{ApplicantID: "GS-1", Email: "shared@example.com"},
		{ApplicantID: "GS-2", Email: "shared@example.com"},
	}
	obs := []normalize.Observations{
		{MissingName: true},
		{},
	}

	Apply(apps, obs)

	assert.Equal(t, []string{models.FlagMissingName, models.FlagDuplicateEmail}, apps[0].Flags)
	assert.Equal(t, []string{models.FlagDuplicateEmail}, apps[1].Flags)
}

func TestApply_EveryObservationMapsToItsFlag(t *testing.T) {
	obs := normalize.Observations{
		MissingApplicantID:       true,
		MissingName:              true,
		MissingEmail:             true,
		InvalidEmail:             true,
		MissingPhone:             true,
		InvalidPhone:             true,
		MissingProgram:           true,
		MissingSchoolType:        true,
		MissingReferralSource:    true,
		MissingIncome:            true,
		MissingCitizenship:       true,
		UnrecognizedCitizenship:  true,
		InvalidGPA:               true,
		GPAOutOfRange:            true,
		LowGPA:                   true,
		MissingSubmissionDate:    true,
		InvalidSubmissionDate:    true,
		FutureSubmissionDate:     true,
		StaleSubmission:          true,
		MissingGraduationYear:    true,
		InvalidGraduationYear:    true,
		GraduationYearOutOfRange: true,
	}

	apps := []models.NormalizedApplication{{}}
	Apply(apps, []normalize.Observations{obs})

	// Everything except the three cross-record duplicate flags.
	require.Len(t, apps[0].Flags, len(models.AllFlags)-3)
	for _, flag := range apps[0].Flags {
		assert.NotContains(t, []string{
			models.FlagDuplicateEmail,
			models.FlagDuplicateApplicantID,
			models.FlagDuplicatePhone,
		}, flag)
	}
}

// ==========================
// Duplicate Detection Tests
// ==========================

func TestDetectDuplicates_EmailCaseInsensitive(t *testing.T) {
	apps := []models.NormalizedApplication{
		appWithEmail("GS-1", "ada@example.com"),
		appWithEmail("GS-2", "ADA@EXAMPLE.COM"),
		appWithEmail("GS-3", "unique@example.com"),
	}

	marks := DetectDuplicates(apps)

	assert.True(t, marks.Email[0])
	assert.True(t, marks.Email[1])
	assert.False(t, marks.Email[2], "unique email must never be marked")
}

func TestDetectDuplicates_EmptyKeysNeverGroup(t *testing.T) {
	apps := []models.NormalizedApplication{
		{ApplicantID: "", Email: "", PhoneNormalized: ""},
		{ApplicantID: "", Email: "", PhoneNormalized: ""},
		{ApplicantID: "", Email: "", PhoneNormalized: ""},
	}

	marks := DetectDuplicates(apps)

	for i := range apps {
		assert.False(t, marks.Email[i])
		assert.False(t, marks.ApplicantID[i])
		assert.False(t, marks.Phone[i])
	}
}

func TestDetectDuplicates_SymmetricAcrossWholeGroup(t *testing.T) {
	apps := []models.NormalizedApplication{
		{ApplicantID: "gs-7"},
		{ApplicantID: "GS-7"},
		{ApplicantID: "Gs-7"},
		{ApplicantID: "GS-8"},
	}

	marks := DetectDuplicates(apps)

	assert.True(t, marks.ApplicantID[0])
	assert.True(t, marks.ApplicantID[1])
	assert.True(t, marks.ApplicantID[2])
	assert.False(t, marks.ApplicantID[3])
}

func TestDetectDuplicates_PhoneUsesNormalizedForm(t *testing.T) {
	// Different raw formatting, same normalized number.
	apps := []models.NormalizedApplication{
		{Phone: "(312) 555-0101", PhoneNormalized: "+13125550101"},
		{Phone: "312.555.0101", PhoneNormalized: "+13125550101"},
		{Phone: "bad-phone", PhoneNormalized: ""},
		{Phone: "worse-phone", PhoneNormalized: ""},
	}

	marks := DetectDuplicates(apps)

	assert.True(t, marks.Phone[0])
	assert.True(t, marks.Phone[1])
	assert.False(t, marks.Phone[2], "invalid phones share no normalized key")
	assert.False(t, marks.Phone[3])
}

func TestDetectDuplicates_IndependentDimensions(t *testing.T) {
	apps := []models.NormalizedApplication{
		{ApplicantID: "GS-1", Email: "shared@example.com", PhoneNormalized: "+13125550101"},
		{ApplicantID: "GS-2", Email: "shared@example.com", PhoneNormalized: "+13125550102"},
	}

	marks := DetectDuplicates(apps)

	assert.True(t, marks.Email[0])
	assert.True(t, marks.Email[1])
	assert.False(t, marks.ApplicantID[0])
	assert.False(t, marks.Phone[0])
}

func TestDetectDuplicates_EmptyBatch(t *testing.T) {
	marks := DetectDuplicates(nil)
	assert.Empty(t, marks.Email)
	assert.Empty(t, marks.ApplicantID)
	assert.Empty(t, marks.Phone)
}

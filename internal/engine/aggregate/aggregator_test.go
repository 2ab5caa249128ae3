// internal/engine/aggregate/aggregator_test.go
package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groupscholar-intake/internal/engine/classify"
	"groupscholar-intake/internal/engine/normalize"
	"groupscholar-intake/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// makeApp builds a record with valid labels on every fixed-enum dimension so
// the sum properties below are meaningful.
func makeApp(id string) models.NormalizedApplication {
	return models.NormalizedApplication{
		ApplicantID:         id,
		Name:                "Applicant " + id,
		Email:               id + "@university.edu",
		EmailDomainCategory: classify.DomainEducation,
		PhoneCountry:        normalize.PhoneUSCanada,
		ContactChannel:      string(models.ChannelEmailAndPhone),
		Program:             "STEM Scholars",
		SchoolType:          "Public",
		CitizenshipStatus:   "US Citizen",

		SubmissionDate:      "2026-02-10",
		SubmissionAgeDays:   intPtr(5),
		SubmissionAgeBucket: "0-7",
		SubmissionRecency:   string(models.RecencyFresh),
		SubmissionWeekday:   "Tuesday",
		SubmissionTimeOfDay: classify.TimeMorning,

		GraduationYearBucket: classify.GradCurrent,

		FlagSeverity:     string(models.SeverityClean),
		ReviewStatus:     string(models.StatusReady),
		ReviewPriority:   string(models.PriorityReady),
		DataQualityScore: 100,
		DataQualityTier:  string(models.TierExcellent),
		ReadinessScore:   100,
		ReadinessBucket:  string(models.BucketReady),
	}
}

func sumCounts(counts map[string]int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}

// ==========================
// Empty Batch Tests
// ==========================

func TestBuild_EmptyBatch(t *testing.T) {
	summary := Build(nil)

	assert.Equal(t, 0, summary.TotalRows)
	assert.Equal(t, 0, summary.FlaggedApplications)
	assert.Equal(t, 0, summary.CleanApplications)
	assert.Equal(t, 0.0, summary.FlaggedRate)
	assert.Equal(t, 0.0, summary.FirstGenRate)

	assert.Nil(t, summary.GPAAvg, "no data means undefined, not zero")
	assert.Nil(t, summary.GPAMin)
	assert.Nil(t, summary.DataQualityAvg)
	assert.Nil(t, summary.ReadinessAvg)
	assert.Nil(t, summary.SubmissionAgeAvg)
	assert.Equal(t, "", summary.SubmissionStart)
	assert.Equal(t, "", summary.SubmissionEnd)

	// Fixed-enum maps are present with every key at zero.
	require.Len(t, summary.FlagCounts, len(models.AllFlags))
	for flag, count := range summary.FlagCounts {
		assert.Equal(t, 0, count, "flag %s", flag)
	}
	assert.Len(t, summary.FlagSeverityCounts, len(models.AllSeverities))
	assert.Len(t, summary.ReviewPriorityCounts, len(models.AllReviewPriorities))
	assert.Len(t, summary.QualityTierCounts, len(models.AllQualityTiers))
	assert.Len(t, summary.ReadinessBucketCounts, len(models.AllReadinessBuckets))
	assert.Len(t, summary.ContactChannelCounts, len(models.AllContactChannels))
	assert.Len(t, summary.SubmissionRecencyCounts, len(models.AllRecencies))
	assert.Len(t, summary.PhoneCountryCounts, len(normalize.AllPhoneCountries))
	assert.Len(t, summary.EmailDomainCategoryCounts, len(classify.AllEmailDomainCategories))

	// Open-vocabulary maps start empty.
	assert.Empty(t, summary.ProgramCounts)
	assert.Empty(t, summary.EmailDomainCounts)
	assert.Empty(t, summary.NoteTagCounts)
}

// ==========================
// Count and Rate Tests
// ==========================

func TestBuild_CountsAndRates(t *testing.T) {
	clean := makeApp("GS-1")
	clean.GPA = floatPtr(3.9)
	clean.FirstGen = true

	flagged := makeApp("GS-2")
	flagged.GPA = floatPtr(2.1)
	flagged.Flags = []string{models.FlagLowGPA, models.FlagMissingPhone}
	flagged.FlagSeverity = string(models.SeverityMedium)
	flagged.ReviewPriority = string(models.PriorityLow)
	flagged.ReviewStatus = string(models.StatusNeedsFollowUp)
	flagged.ReadinessBucket = string(models.BucketNeedsFollowUp)
	flagged.Program = "Arts Catalyst"

	third := makeApp("GS-3")
	third.FirstGen = true

	summary := Build([]models.NormalizedApplication{clean, flagged, third})

	assert.Equal(t, 3, summary.TotalRows)
	assert.Equal(t, 1, summary.FlaggedApplications)
	assert.Equal(t, 2, summary.CleanApplications)
	assert.Equal(t, 33.3, summary.FlaggedRate)

	assert.Equal(t, 2, summary.FirstGen)
	assert.Equal(t, 66.7, summary.FirstGenRate)
	assert.Equal(t, 100.0, summary.ProgramFirstGenRate["STEM Scholars"])
	assert.Equal(t, 0.0, summary.ProgramFirstGenRate["Arts Catalyst"])

	assert.Equal(t, 1, summary.FlagCounts[models.FlagLowGPA])
	assert.Equal(t, 1, summary.FlagCounts[models.FlagMissingPhone])
	assert.Equal(t, 0, summary.FlagCounts[models.FlagMissingEmail])

	assert.Equal(t, 2, summary.ProgramCounts["STEM Scholars"])
	assert.Equal(t, 1, summary.ProgramCounts["Arts Catalyst"])
}

func TestBuild_GPAStats(t *testing.T) {
	a := makeApp("GS-1")
	a.GPA = floatPtr(4.0)
	b := makeApp("GS-2")
	b.GPA = floatPtr(3.0)
	c := makeApp("GS-3") // no GPA

	summary := Build([]models.NormalizedApplication{a, b, c})

	require.NotNil(t, summary.GPAAvg)
	assert.Equal(t, 3.5, *summary.GPAAvg)
	assert.Equal(t, 3.0, *summary.GPAMin)
	assert.Equal(t, 4.0, *summary.GPAMax)

	require.NotNil(t, summary.ProgramGPAAvg["STEM Scholars"])
	assert.Equal(t, 3.5, *summary.ProgramGPAAvg["STEM Scholars"])
}

func TestBuild_ScoreStats(t *testing.T) {
	a := makeApp("GS-1")
	a.DataQualityScore = 100
	a.ReadinessScore = 90
	b := makeApp("GS-2")
	b.DataQualityScore = 85
	b.ReadinessScore = 60

	summary := Build([]models.NormalizedApplication{a, b})

	require.NotNil(t, summary.DataQualityAvg)
	assert.Equal(t, 92.5, *summary.DataQualityAvg)
	assert.Equal(t, 85, *summary.DataQualityMin)
	assert.Equal(t, 100, *summary.DataQualityMax)
	assert.Equal(t, 75.0, *summary.ReadinessAvg)
}

func TestBuild_SubmissionWindow(t *testing.T) {
	a := makeApp("GS-1")
	a.SubmissionDate = "2026-02-10"
	b := makeApp("GS-2")
	b.SubmissionDate = "2025-11-02"
	c := makeApp("GS-3")
	c.SubmissionDate = ""

	summary := Build([]models.NormalizedApplication{a, b, c})

	assert.Equal(t, "2025-11-02", summary.SubmissionStart)
	assert.Equal(t, "2026-02-10", summary.SubmissionEnd)
}

func TestBuild_MissingIncomeCountedExplicitly(t *testing.T) {
	a := makeApp("GS-1")
	a.IncomeBracket = "40k-70k"
	b := makeApp("GS-2")
	b.IncomeBracket = ""

	summary := Build([]models.NormalizedApplication{a, b})

	assert.Equal(t, 1, summary.IncomeBracketCounts["40k-70k"])
	assert.Equal(t, 1, summary.IncomeBracketCounts["missing"])
}

// ==========================
// Sum Property Tests
// ==========================

func TestBuild_FixedEnumCountsSumToTotal(t *testing.T) {
	apps := []models.NormalizedApplication{makeApp("GS-1"), makeApp("GS-2"), makeApp("GS-3")}
	apps[1].Flags = []string{models.FlagLowGPA}
	apps[1].FlagSeverity = string(models.SeverityMedium)
	apps[1].ReviewPriority = string(models.PriorityLow)
	apps[2].PhoneCountry = normalize.PhoneMissing
	apps[2].ContactChannel = string(models.ChannelEmailOnly)

	summary := Build(apps)

	fixedMaps := map[string]map[string]int{
		"flag_severity":          summary.FlagSeverityCounts,
		"review_status":          summary.ReviewStatusCounts,
		"review_priority":        summary.ReviewPriorityCounts,
		"quality_tier":           summary.QualityTierCounts,
		"readiness_bucket":       summary.ReadinessBucketCounts,
		"contact_channel":        summary.ContactChannelCounts,
		"phone_country":          summary.PhoneCountryCounts,
		"email_domain_category":  summary.EmailDomainCategoryCounts,
		"submission_recency":     summary.SubmissionRecencyCounts,
		"submission_age_bucket":  summary.SubmissionAgeBucketCounts,
		"submission_time_of_day": summary.SubmissionTimeOfDayCounts,
		"graduation_year_bucket": summary.GraduationYearBucketCounts,
	}
	for name, counts := range fixedMaps {
		assert.Equal(t, summary.TotalRows, sumCounts(counts), "%s counts must sum to total", name)
	}

	assert.Equal(t, summary.TotalRows, summary.FlaggedApplications+summary.CleanApplications)
}

// ==========================
// Scorecard Tests
// ==========================

func TestBuildScorecard_FlagRates(t *testing.T) {
	apps := []models.NormalizedApplication{makeApp("GS-1"), makeApp("GS-2"), makeApp("GS-3")}
	apps[0].Flags = []string{models.FlagLowGPA}
	apps[1].Flags = []string{models.FlagLowGPA, models.FlagMissingPhone}

	summary := Build(apps)
	card := BuildScorecard(summary)

	assert.Equal(t, 3, card.TotalRows)
	assert.Equal(t, 0.6667, card.FlagRates[models.FlagLowGPA])
	assert.Equal(t, 0.3333, card.FlagRates[models.FlagMissingPhone])
	assert.Equal(t, 0.0, card.FlagRates[models.FlagMissingEmail])
	assert.Equal(t, summary.FlaggedRate, card.FlaggedRate)
}

func TestBuildScorecard_EmptyBatch(t *testing.T) {
	card := BuildScorecard(Build(nil))

	assert.Equal(t, 0, card.TotalRows)
	require.Len(t, card.FlagRates, len(models.AllFlags))
	for flag, rate := range card.FlagRates {
		assert.Equal(t, 0.0, rate, "flag %s", flag)
	}
}

// ==========================
// Benchmarks
// ==========================

func BenchmarkBuild(b *testing.B) {
	apps := make([]models.NormalizedApplication, 500)
	for i := range apps {
		apps[i] = makeApp("GS-1")
		apps[i].GPA = floatPtr(3.2)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Build(apps)
	}
}

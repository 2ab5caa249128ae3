// internal/engine/aggregate/scorecard.go
package aggregate

import "groupscholar-intake/internal/models"

// BuildScorecard projects the summary into the dashboard scorecard, with
// per-flag rates (fraction of total, 4 decimals) instead of raw counts.
func BuildScorecard(summary models.Summary) models.Scorecard {
	flagRates := make(map[string]float64, len(summary.FlagCounts))
	for flag, count := range summary.FlagCounts {
		if summary.TotalRows == 0 {
			flagRates[flag] = 0.0
			continue
		}
		flagRates[flag] = roundTo(float64(count)/float64(summary.TotalRows), 4)
	}

	return models.Scorecard{
		TotalRows:           summary.TotalRows,
		FlaggedApplications: summary.FlaggedApplications,
		FlaggedRate:         summary.FlaggedRate,
		FlagRates:           flagRates,

		ProgramCounts:        summary.ProgramCounts,
		ProgramGPAAvg:        summary.ProgramGPAAvg,
		SchoolTypeCounts:     summary.SchoolTypeCounts,
		ReferralSourceCounts: summary.ReferralSourceCounts,
		IncomeBracketCounts:  summary.IncomeBracketCounts,
		EmailDomainCounts:    summary.EmailDomainCounts,
		NoteTagCounts:        summary.NoteTagCounts,

		EmailDomainCategoryCounts: summary.EmailDomainCategoryCounts,
		PhoneCountryCounts:        summary.PhoneCountryCounts,
		ContactChannelCounts:      summary.ContactChannelCounts,
		SubmissionWeekdayCounts:   summary.SubmissionWeekdayCounts,

		ReviewStatusCounts:   summary.ReviewStatusCounts,
		ReviewPriorityCounts: summary.ReviewPriorityCounts,
		FlagSeverityCounts:   summary.FlagSeverityCounts,

		DataQualityAvg:    summary.DataQualityAvg,
		DataQualityMin:    summary.DataQualityMin,
		DataQualityMax:    summary.DataQualityMax,
		QualityTierCounts: summary.QualityTierCounts,

		ReadinessAvg:          summary.ReadinessAvg,
		ReadinessMin:          summary.ReadinessMin,
		ReadinessMax:          summary.ReadinessMax,
		ReadinessBucketCounts: summary.ReadinessBucketCounts,

		GPAAvg: summary.GPAAvg,
		GPAMin: summary.GPAMin,
		GPAMax: summary.GPAMax,

		SubmissionAgeAvg:          summary.SubmissionAgeAvg,
		SubmissionAgeMin:          summary.SubmissionAgeMin,
		SubmissionAgeMax:          summary.SubmissionAgeMax,
		SubmissionAgeBucketCounts: summary.SubmissionAgeBucketCounts,
		SubmissionRecencyCounts:   summary.SubmissionRecencyCounts,

		SubmissionStart: summary.SubmissionStart,
		SubmissionEnd:   summary.SubmissionEnd,
	}
}

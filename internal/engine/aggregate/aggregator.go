// internal/engine/aggregate/aggregator.go
package aggregate

import (
	"math"
	"sort"

	"groupscholar-intake/internal/engine/classify"
	"groupscholar-intake/internal/engine/normalize"
	"groupscholar-intake/internal/models"
)

// Build reduces the batch into a Summary. It is a pure function of the
// record slice: no state survives between calls, and an empty batch yields a
// well-defined zero summary instead of dividing by zero.
func Build(apps []models.NormalizedApplication) models.Summary {
	summary := models.Summary{
		TotalRows:  len(apps),
		FlagCounts: zeroCounts(models.AllFlags),

		ProgramFirstGenRate: map[string]float64{},

		ProgramCounts: map[string]int{},
		ProgramGPAAvg: map[string]*float64{},

		SchoolTypeCounts:     map[string]int{},
		CitizenshipCounts:    map[string]int{},
		ReferralSourceCounts: map[string]int{},
		IncomeBracketCounts:  map[string]int{},
		NoteTagCounts:        map[string]int{},

		EmailDomainCounts:         map[string]int{},
		EmailDomainCategoryCounts: zeroCounts(classify.AllEmailDomainCategories),
		PhoneCountryCounts:        zeroCounts(normalize.AllPhoneCountries),
		ContactChannelCounts:      zeroCountsChannel(),

		SubmissionWeekdayCounts:   map[string]int{},
		SubmissionTimeOfDayCounts: zeroCounts(classify.AllTimesOfDay),

		ReviewStatusCounts:   zeroCountsStatus(),
		ReviewPriorityCounts: zeroCountsPriority(),
		FlagSeverityCounts:   zeroCountsSeverity(),

		QualityTierCounts:     zeroCountsTier(),
		ReadinessBucketCounts: zeroCountsBucket(),

		SubmissionAgeBucketCounts: zeroCounts(classify.AllAgeBuckets),
		SubmissionRecencyCounts:   zeroCountsRecency(),

		GraduationYearBucketCounts: zeroCounts(classify.AllGraduationYearBuckets),
	}

	var gpas []float64
	var qualityScores, readinessScores, ages []int
	var submissionDates []string
	programGPAs := map[string][]float64{}
	programFirstGen := map[string]int{}

	for i := range apps {
		app := &apps[i]

		for _, flag := range app.Flags {
			summary.FlagCounts[flag]++
		}
		if len(app.Flags) > 0 {
			summary.FlaggedApplications++
		} else {
			summary.CleanApplications++
		}

		summary.ProgramCounts[app.Program]++
		if app.FirstGen {
			summary.FirstGen++
			programFirstGen[app.Program]++
		}
		if app.GPA != nil {
			gpas = append(gpas, *app.GPA)
			programGPAs[app.Program] = append(programGPAs[app.Program], *app.GPA)
		}

		summary.SchoolTypeCounts[app.SchoolType]++
		summary.CitizenshipCounts[app.CitizenshipStatus]++
		if app.ReferralSource != "" {
			summary.ReferralSourceCounts[app.ReferralSource]++
		}
		if app.IncomeBracket != "" {
			summary.IncomeBracketCounts[app.IncomeBracket]++
		} else {
			summary.IncomeBracketCounts["missing"]++
		}
		for _, tag := range app.NoteTags {
			summary.NoteTagCounts[tag]++
		}

		if domain := classify.EmailDomain(app.Email); domain != "" {
			summary.EmailDomainCounts[domain]++
		}
		summary.EmailDomainCategoryCounts[app.EmailDomainCategory]++
		summary.PhoneCountryCounts[app.PhoneCountry]++
		summary.ContactChannelCounts[app.ContactChannel]++

		if app.SubmissionWeekday != "" {
			summary.SubmissionWeekdayCounts[app.SubmissionWeekday]++
		}
		summary.SubmissionTimeOfDayCounts[app.SubmissionTimeOfDay]++

		summary.ReviewStatusCounts[app.ReviewStatus]++
		summary.ReviewPriorityCounts[app.ReviewPriority]++
		summary.FlagSeverityCounts[app.FlagSeverity]++

		qualityScores = append(qualityScores, app.DataQualityScore)
		summary.QualityTierCounts[app.DataQualityTier]++
		readinessScores = append(readinessScores, app.ReadinessScore)
		summary.ReadinessBucketCounts[app.ReadinessBucket]++

		if app.SubmissionAgeDays != nil {
			ages = append(ages, *app.SubmissionAgeDays)
		}
		summary.SubmissionAgeBucketCounts[app.SubmissionAgeBucket]++
		summary.SubmissionRecencyCounts[app.SubmissionRecency]++

		summary.GraduationYearBucketCounts[app.GraduationYearBucket]++

		if app.SubmissionDate != "" {
			submissionDates = append(submissionDates, app.SubmissionDate)
		}
	}

	summary.FlaggedRate = rate(summary.FlaggedApplications, summary.TotalRows)
	summary.FirstGenRate = rate(summary.FirstGen, summary.TotalRows)
	for program, total := range summary.ProgramCounts {
		summary.ProgramFirstGenRate[program] = rate(programFirstGen[program], total)
	}

	summary.GPAAvg, summary.GPAMin, summary.GPAMax = floatStats(gpas)
	for program, values := range programGPAs {
		avg, _, _ := floatStats(values)
		summary.ProgramGPAAvg[program] = avg
	}
	summary.DataQualityAvg, summary.DataQualityMin, summary.DataQualityMax = intStats(qualityScores)
	summary.ReadinessAvg, summary.ReadinessMin, summary.ReadinessMax = intStats(readinessScores)
	summary.SubmissionAgeAvg, summary.SubmissionAgeMin, summary.SubmissionAgeMax = intStats(ages)

	if len(submissionDates) > 0 {
		sort.Strings(submissionDates)
		summary.SubmissionStart = submissionDates[0]
		summary.SubmissionEnd = submissionDates[len(submissionDates)-1]
	}

	return summary
}

// rate is count/total as a percentage with one decimal; zero total reports 0.
func rate(count, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return roundTo(float64(count)/float64(total)*100, 1)
}

// floatStats returns avg (2 decimals), min and max over the values, or nils
// when there are none: a dimension with no data is undefined, not zero.
func floatStats(values []float64) (avg, min, max *float64) {
	if len(values) == 0 {
		return nil, nil, nil
	}
	sum := 0.0
	lo, hi := values[0], values[0]
	for _, v := range values {
		sum += v
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	a := roundTo(sum/float64(len(values)), 2)
	return &a, &lo, &hi
}

// intStats returns avg (1 decimal), min and max over the values, or nils.
func intStats(values []int) (avg *float64, min, max *int) {
	if len(values) == 0 {
		return nil, nil, nil
	}
	sum := 0
	lo, hi := values[0], values[0]
	for _, v := range values {
		sum += v
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	a := roundTo(float64(sum)/float64(len(values)), 1)
	loCopy, hiCopy := lo, hi
	return &a, &loCopy, &hiCopy
}

func roundTo(value float64, decimals int) float64 {
	factor := 1.0
	for i := 0; i < decimals; i++ {
		factor *= 10
	}
	return math.Round(value*factor) / factor
}

func zeroCounts(keys []string) map[string]int {
	counts := make(map[string]int, len(keys))
	for _, key := range keys {
		counts[key] = 0
	}
	return counts
}

func zeroCountsSeverity() map[string]int {
	counts := map[string]int{}
	for _, s := range models.AllSeverities {
		counts[string(s)] = 0
	}
	return counts
}

func zeroCountsStatus() map[string]int {
	counts := map[string]int{}
	for _, s := range models.AllReviewStatuses {
		counts[string(s)] = 0
	}
	return counts
}

func zeroCountsPriority() map[string]int {
	counts := map[string]int{}
	for _, p := range models.AllReviewPriorities {
		counts[string(p)] = 0
	}
	return counts
}

func zeroCountsTier() map[string]int {
	counts := map[string]int{}
	for _, t := range models.AllQualityTiers {
		counts[string(t)] = 0
	}
	return counts
}

func zeroCountsBucket() map[string]int {
	counts := map[string]int{}
	for _, b := range models.AllReadinessBuckets {
		counts[string(b)] = 0
	}
	return counts
}

func zeroCountsChannel() map[string]int {
	counts := map[string]int{}
	for _, c := range models.AllContactChannels {
		counts[string(c)] = 0
	}
	return counts
}

func zeroCountsRecency() map[string]int {
	counts := map[string]int{}
	for _, r := range models.AllRecencies {
		counts[string(r)] = 0
	}
	return counts
}

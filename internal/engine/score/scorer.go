// internal/engine/score/scorer.go
package score

import "groupscholar-intake/internal/models"

// Structural flags: problems that make a record unidentifiable or
// unreachable. Any one of them makes the flag severity critical.
var structuralFlags = map[string]bool{
	models.FlagMissingApplicantID:   true,
	models.FlagDuplicateApplicantID: true,
	models.FlagMissingEmail:         true,
	models.FlagDuplicateEmail:       true,
}

// Scorer computes both scores and the derived classifications from a
// record's flags and field completeness.
type Scorer struct {
	weights Weights
}

func New(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// Score fills in the record's scores, tier, bucket, status, priority and
// severity. It assumes flags and note tags are final.
func (s *Scorer) Score(app *models.NormalizedApplication) {
	app.DataQualityScore = s.dataQualityScore(app.Flags)
	app.DataQualityTier = string(QualityTier(app.DataQualityScore))

	app.ReadinessScore = s.readinessScore(app)
	bucket := ReadinessBucketFor(app.ReadinessScore)
	app.ReadinessBucket = string(bucket)
	app.ReviewStatus = string(reviewStatusFor(bucket))
	app.ReviewPriority = string(ReviewPriorityFor(app.Flags, app.ReadinessScore))
	app.FlagSeverity = string(FlagSeverityFor(app.Flags))
}

func (s *Scorer) dataQualityScore(flags []string) int {
	score := 100
	for _, flag := range flags {
		score -= s.weights.DataQuality[flag]
	}
	if score < 0 {
		score = 0
	}
	return score
}

func (s *Scorer) readinessScore(app *models.NormalizedApplication) int {
	score := 100
	for _, flag := range app.Flags {
		score -= s.weights.Readiness[flag]
	}
	if app.GPA == nil {
		score -= s.weights.Readiness[KeyMissingGPA]
	}
	for _, tag := range app.NoteTags {
		if key, ok := noteTagKeys[tag]; ok {
			score -= s.weights.Readiness[key]
		}
	}
	if score < 0 {
		score = 0
	}
	return score
}

// QualityTier bands a data-quality score.
func QualityTier(score int) models.QualityTier {
	switch {
	case score >= 90:
		return models.TierExcellent
	case score >= 75:
		return models.TierGood
	case score >= 50:
		return models.TierNeedsAttention
	default:
		return models.TierCritical
	}
}

// ReadinessBucketFor bands a readiness score.
func ReadinessBucketFor(score int) models.ReadinessBucket {
	switch {
	case score >= 85:
		return models.BucketReady
	case score >= 65:
		return models.BucketNeedsFollowUp
	case score >= 40:
		return models.BucketNeedsReview
	default:
		return models.BucketIncomplete
	}
}

func reviewStatusFor(bucket models.ReadinessBucket) models.ReviewStatus {
	switch bucket {
	case models.BucketReady:
		return models.StatusReady
	case models.BucketNeedsFollowUp:
		return models.StatusNeedsFollowUp
	case models.BucketNeedsReview:
		return models.StatusNeedsReview
	default:
		return models.StatusIncomplete
	}
}

// ReviewPriorityFor collapses the readiness score into a routing priority.
// Ready is reserved for flagless records: any flag at all keeps the record
// in the reviewer queue, however mild.
func ReviewPriorityFor(flags []string, readiness int) models.ReviewPriority {
	if len(flags) == 0 {
		return models.PriorityReady
	}
	switch {
	case readiness < 40:
		return models.PriorityHigh
	case readiness < 65:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}

// FlagSeverityFor grades a flag set. Structural flags dominate; otherwise
// severity scales with flag count.
func FlagSeverityFor(flags []string) models.Severity {
	if len(flags) == 0 {
		return models.SeverityClean
	}
	for _, flag := range flags {
		if structuralFlags[flag] {
			return models.SeverityCritical
		}
	}
	if len(flags) >= 3 {
		return models.SeverityHigh
	}
	return models.SeverityMedium
}

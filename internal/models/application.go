// internal/models/application.go
package models

// RawRecord is one input row: canonical field name -> raw string value.
// Absent and empty both mean "not provided".
type RawRecord map[string]string

// Flag names, in validator evaluation order. The order matters: flags are an
// ordered set and report output must be deterministic.
const (
	FlagMissingApplicantID       = "missing_applicant_id"
	FlagMissingName              = "missing_name"
	FlagMissingEmail             = "missing_email"
	FlagInvalidEmail             = "invalid_email"
	FlagMissingPhone             = "missing_phone"
	FlagInvalidPhone             = "invalid_phone"
	FlagMissingProgram           = "missing_program"
	FlagMissingSchoolType        = "missing_school_type"
	FlagMissingReferralSource    = "missing_referral_source"
	FlagMissingIncome            = "missing_income"
	FlagMissingCitizenship       = "missing_citizenship_status"
	FlagUnrecognizedCitizenship  = "unrecognized_citizenship_status"
	FlagInvalidGPA               = "invalid_gpa"
	FlagGPAOutOfRange            = "gpa_out_of_range"
	FlagLowGPA                   = "low_gpa"
	FlagMissingSubmissionDate    = "missing_submission_date"
	FlagInvalidSubmissionDate    = "invalid_submission_date"
	FlagFutureSubmissionDate     = "future_submission_date"
	FlagStaleSubmission          = "stale_submission"
	FlagMissingGraduationYear    = "missing_graduation_year"
	FlagInvalidGraduationYear    = "invalid_graduation_year"
	FlagGraduationYearOutOfRange = "graduation_year_out_of_range"
	FlagDuplicateEmail           = "duplicate_email"
	FlagDuplicateApplicantID     = "duplicate_applicant_id"
	FlagDuplicatePhone           = "duplicate_phone"
)

// AllFlags lists every flag in evaluation order.
var AllFlags = []string{
	FlagMissingApplicantID,
	FlagMissingName,
	FlagMissingEmail,
	FlagInvalidEmail,
	FlagMissingPhone,
	FlagInvalidPhone,
	FlagMissingProgram,
	FlagMissingSchoolType,
	FlagMissingReferralSource,
	FlagMissingIncome,
	FlagMissingCitizenship,
	FlagUnrecognizedCitizenship,
	FlagInvalidGPA,
	FlagGPAOutOfRange,
	FlagLowGPA,
	FlagMissingSubmissionDate,
	FlagInvalidSubmissionDate,
	FlagFutureSubmissionDate,
	FlagStaleSubmission,
	FlagMissingGraduationYear,
	FlagInvalidGraduationYear,
	FlagGraduationYearOutOfRange,
	FlagDuplicateEmail,
	FlagDuplicateApplicantID,
	FlagDuplicatePhone,
}

// Severity grades a record's flag set.
type Severity string

const (
	SeverityClean    Severity = "clean"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var AllSeverities = []Severity{SeverityClean, SeverityMedium, SeverityHigh, SeverityCritical}

// ReviewStatus mirrors the readiness bucket.
type ReviewStatus string

const (
	StatusReady         ReviewStatus = "ready"
	StatusNeedsFollowUp ReviewStatus = "needs_follow_up"
	StatusNeedsReview   ReviewStatus = "needs_review"
	StatusIncomplete    ReviewStatus = "incomplete"
)

var AllReviewStatuses = []ReviewStatus{StatusReady, StatusNeedsFollowUp, StatusNeedsReview, StatusIncomplete}

// ReviewPriority routes a record to reviewers. Ready is its own top band,
// reserved for flagless records.
type ReviewPriority string

const (
	PriorityReady  ReviewPriority = "ready"
	PriorityLow    ReviewPriority = "low"
	PriorityMedium ReviewPriority = "medium"
	PriorityHigh   ReviewPriority = "high"
)

var AllReviewPriorities = []ReviewPriority{PriorityReady, PriorityLow, PriorityMedium, PriorityHigh}

// QualityTier bands the data-quality score.
type QualityTier string

const (
	TierExcellent      QualityTier = "excellent"
	TierGood           QualityTier = "good"
	TierNeedsAttention QualityTier = "needs_attention"
	TierCritical       QualityTier = "critical"
)

var AllQualityTiers = []QualityTier{TierExcellent, TierGood, TierNeedsAttention, TierCritical}

// ReadinessBucket bands the readiness score.
type ReadinessBucket string

const (
	BucketReady         ReadinessBucket = "ready"
	BucketNeedsFollowUp ReadinessBucket = "needs_follow_up"
	BucketNeedsReview   ReadinessBucket = "needs_review"
	BucketIncomplete    ReadinessBucket = "incomplete"
)

var AllReadinessBuckets = []ReadinessBucket{BucketReady, BucketNeedsFollowUp, BucketNeedsReview, BucketIncomplete}

// ContactChannel describes which contact methods are usable.
type ContactChannel string

const (
	ChannelEmailAndPhone ContactChannel = "email_and_phone"
	ChannelEmailOnly     ContactChannel = "email_only"
	ChannelPhoneOnly     ContactChannel = "phone_only"
	ChannelMissing       ContactChannel = "missing"
)

var AllContactChannels = []ContactChannel{ChannelEmailAndPhone, ChannelEmailOnly, ChannelPhoneOnly, ChannelMissing}

// Recency buckets a submission by how old it is.
type Recency string

const (
	RecencyFresh   Recency = "fresh"
	RecencyActive  Recency = "active"
	RecencyStale   Recency = "stale"
	RecencyBacklog Recency = "backlog"
	RecencyArchive Recency = "archive"
	RecencyMissing Recency = "missing"
)

var AllRecencies = []Recency{RecencyFresh, RecencyActive, RecencyStale, RecencyBacklog, RecencyArchive, RecencyMissing}

// NormalizedApplication is the central entity: one canonical record with
// attached flags, scores and reporting categories.
type NormalizedApplication struct {
	ApplicantID string `json:"applicant_id"`
	Name        string `json:"name"`

	Email               string `json:"email"`
	EmailDomainCategory string `json:"email_domain_category"`
	Phone               string `json:"phone"`
	PhoneNormalized     string `json:"phone_normalized"`
	PhoneCountry        string `json:"phone_country"`
	ContactChannel      string `json:"contact_channel"`

	Program              string   `json:"program"`
	SchoolType           string   `json:"school_type"`
	GPA                  *float64 `json:"gpa"`
	GraduationYear       *int     `json:"graduation_year"`
	GraduationYearBucket string   `json:"graduation_year_bucket"`

	IncomeBracket     string `json:"income_bracket"`
	FirstGen          bool   `json:"first_gen"`
	CitizenshipStatus string `json:"citizenship_status"`
	ReferralSource    string `json:"referral_source"`

	SubmissionDate      string `json:"submission_date"` // YYYY-MM-DD, empty when missing or invalid
	SubmissionAgeDays   *int   `json:"submission_age_days"`
	SubmissionAgeBucket string `json:"submission_age_bucket"`
	SubmissionRecency   string `json:"submission_recency"`
	SubmissionWeekday   string `json:"submission_weekday"`
	SubmissionTimeOfDay string `json:"submission_time_of_day"`

	EligibilityNotes string   `json:"eligibility_notes"`
	NoteTags         []string `json:"note_tags"`

	Flags          []string `json:"flags"`
	FlagSeverity   string   `json:"flag_severity"`
	ReviewStatus   string   `json:"review_status"`
	ReviewPriority string   `json:"review_priority"`

	DataQualityScore int    `json:"data_quality_score"`
	DataQualityTier  string `json:"data_quality_tier"`
	ReadinessScore   int    `json:"readiness_score"`
	ReadinessBucket  string `json:"readiness_bucket"`
}

// HasFlag reports whether the application carries the named flag.
func (a *NormalizedApplication) HasFlag(flag string) bool {
	for _, f := range a.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// HasNoteTag reports whether the application carries the named note tag.
func (a *NormalizedApplication) HasNoteTag(tag string) bool {
	for _, t := range a.NoteTags {
		if t == tag {
			return true
		}
	}
	return false
}

// internal/models/summary.go
package models

// Summary is the batch-level rollup. Every field is a pure function of the
// record set; a summary is computed once per batch and never merged.
//
// Count maps over fixed enums carry every enum value, zeros included, so
// their values always sum to TotalRows. Open-vocabulary maps (program,
// referral source, email domain) only carry observed values.
type Summary struct {
	TotalRows           int     `json:"total_rows"`
	FlaggedApplications int     `json:"flagged_applications"`
	CleanApplications   int     `json:"clean_applications"`
	FlaggedRate         float64 `json:"flagged_rate"`

	FlagCounts map[string]int `json:"flag_counts"`

	FirstGen            int                `json:"first_gen"`
	FirstGenRate        float64            `json:"first_gen_rate"`
	ProgramFirstGenRate map[string]float64 `json:"program_first_gen_rate"`

	GPAAvg        *float64            `json:"gpa_avg"`
	GPAMin        *float64            `json:"gpa_min"`
	GPAMax        *float64            `json:"gpa_max"`
	ProgramCounts map[string]int      `json:"program_counts"`
	ProgramGPAAvg map[string]*float64 `json:"program_gpa_avg"`

	SchoolTypeCounts     map[string]int `json:"school_type_counts"`
	CitizenshipCounts    map[string]int `json:"citizenship_status_counts"`
	ReferralSourceCounts map[string]int `json:"referral_source_counts"`
	IncomeBracketCounts  map[string]int `json:"income_bracket_counts"`
	NoteTagCounts        map[string]int `json:"note_tag_counts"`

	EmailDomainCounts         map[string]int `json:"email_domain_counts"`
	EmailDomainCategoryCounts map[string]int `json:"email_domain_category_counts"`
	PhoneCountryCounts        map[string]int `json:"phone_country_counts"`
	ContactChannelCounts      map[string]int `json:"contact_channel_counts"`

	SubmissionWeekdayCounts   map[string]int `json:"submission_weekday_counts"`
	SubmissionTimeOfDayCounts map[string]int `json:"submission_time_of_day_counts"`

	ReviewStatusCounts   map[string]int `json:"review_status_counts"`
	ReviewPriorityCounts map[string]int `json:"review_priority_counts"`
	FlagSeverityCounts   map[string]int `json:"flag_severity_counts"`

	DataQualityAvg    *float64       `json:"data_quality_avg"`
	DataQualityMin    *int           `json:"data_quality_min"`
	DataQualityMax    *int           `json:"data_quality_max"`
	QualityTierCounts map[string]int `json:"quality_tier_counts"`

	ReadinessAvg          *float64       `json:"readiness_avg"`
	ReadinessMin          *int           `json:"readiness_min"`
	ReadinessMax          *int           `json:"readiness_max"`
	ReadinessBucketCounts map[string]int `json:"readiness_bucket_counts"`

	SubmissionAgeAvg          *float64       `json:"submission_age_avg"`
	SubmissionAgeMin          *int           `json:"submission_age_min"`
	SubmissionAgeMax          *int           `json:"submission_age_max"`
	SubmissionAgeBucketCounts map[string]int `json:"submission_age_bucket_counts"`
	SubmissionRecencyCounts   map[string]int `json:"submission_recency_counts"`

	GraduationYearBucketCounts map[string]int `json:"graduation_year_bucket_counts"`

	SubmissionStart string `json:"submission_start"`
	SubmissionEnd   string `json:"submission_end"`
}

// Scorecard is a dashboard-facing projection of the summary with per-flag
// rates instead of raw counts.
type Scorecard struct {
	TotalRows           int     `json:"total_rows"`
	FlaggedApplications int     `json:"flagged_applications"`
	FlaggedRate         float64 `json:"flagged_rate"`

	FlagRates map[string]float64 `json:"flag_rates"`

	ProgramCounts        map[string]int      `json:"program_counts"`
	ProgramGPAAvg        map[string]*float64 `json:"program_gpa_avg"`
	SchoolTypeCounts     map[string]int      `json:"school_type_counts"`
	ReferralSourceCounts map[string]int      `json:"referral_source_counts"`
	IncomeBracketCounts  map[string]int      `json:"income_bracket_counts"`
	EmailDomainCounts    map[string]int      `json:"email_domain_counts"`
	NoteTagCounts        map[string]int      `json:"note_tag_counts"`

	EmailDomainCategoryCounts map[string]int `json:"email_domain_category_counts"`
	PhoneCountryCounts        map[string]int `json:"phone_country_counts"`
	ContactChannelCounts      map[string]int `json:"contact_channel_counts"`
	SubmissionWeekdayCounts   map[string]int `json:"submission_weekday_counts"`

	ReviewStatusCounts   map[string]int `json:"review_status_counts"`
	ReviewPriorityCounts map[string]int `json:"review_priority_counts"`
	FlagSeverityCounts   map[string]int `json:"flag_severity_counts"`

	DataQualityAvg    *float64       `json:"data_quality_avg"`
	DataQualityMin    *int           `json:"data_quality_min"`
	DataQualityMax    *int           `json:"data_quality_max"`
	QualityTierCounts map[string]int `json:"quality_tier_counts"`

	ReadinessAvg          *float64       `json:"readiness_avg"`
	ReadinessMin          *int           `json:"readiness_min"`
	ReadinessMax          *int           `json:"readiness_max"`
	ReadinessBucketCounts map[string]int `json:"readiness_bucket_counts"`

	GPAAvg *float64 `json:"gpa_avg"`
	GPAMin *float64 `json:"gpa_min"`
	GPAMax *float64 `json:"gpa_max"`

	SubmissionAgeAvg          *float64       `json:"submission_age_avg"`
	SubmissionAgeMin          *int           `json:"submission_age_min"`
	SubmissionAgeMax          *int           `json:"submission_age_max"`
	SubmissionAgeBucketCounts map[string]int `json:"submission_age_bucket_counts"`
	SubmissionRecencyCounts   map[string]int `json:"submission_recency_counts"`

	SubmissionStart string `json:"submission_start"`
	SubmissionEnd   string `json:"submission_end"`
}

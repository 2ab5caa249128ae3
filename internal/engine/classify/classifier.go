// internal/engine/classify/classifier.go
package classify

import (
	"strconv"
	"strings"
	"time"

	"groupscholar-intake/internal/models"
)

// Email domain categories.
const (
	DomainEducation  = "education"
	DomainGovernment = "government"
	DomainNonprofit  = "nonprofit"
	DomainNetwork    = "network"
	DomainPersonal   = "personal"
	DomainCommercial = "commercial"
	DomainInvalid    = "invalid"
	DomainMissing    = "missing"
)

// AllEmailDomainCategories lists the category labels for fixed-enum counts.
var AllEmailDomainCategories = []string{
	DomainEducation, DomainGovernment, DomainNonprofit, DomainNetwork,
	DomainPersonal, DomainCommercial, DomainInvalid, DomainMissing,
}

// Graduation-year buckets.
const (
	GradOverdue  = "overdue"
	GradCurrent  = "current"
	GradNextYear = "next_year"
	GradFuture   = "future"
	GradUnknown  = "unknown"
)

var AllGraduationYearBuckets = []string{GradOverdue, GradCurrent, GradNextYear, GradFuture, GradUnknown}

// Time-of-day buckets.
const (
	TimeMorning   = "morning"
	TimeAfternoon = "afternoon"
	TimeEvening   = "evening"
	TimeNight     = "night"
	TimeUnknown   = "unknown"
)

var AllTimesOfDay = []string{TimeMorning, TimeAfternoon, TimeEvening, TimeNight, TimeUnknown}

// Submission age buckets.
const AgeMissing = "missing"

var AllAgeBuckets = []string{"0-7", "8-14", "15-30", "31-60", "61-90", "90+", AgeMissing}

var personalDomains = map[string]bool{
	"gmail.com":      true,
	"yahoo.com":      true,
	"hotmail.com":    true,
	"outlook.com":    true,
	"aol.com":        true,
	"icloud.com":     true,
	"protonmail.com": true,
	"proton.me":      true,
}

// Classifier maps normalized fields onto reporting categories against a
// fixed reference date.
type Classifier struct {
	reference time.Time
}

func New(reference time.Time) *Classifier {
	return &Classifier{reference: reference}
}

// Classify fills the record's categorical labels. Email validity is read off
// the record's own flags, so it must run after validation.
func (c *Classifier) Classify(app *models.NormalizedApplication, timeOfDayRaw string) {
	emailUsable := app.Email != "" && !app.HasFlag(models.FlagInvalidEmail)
	phoneUsable := app.PhoneNormalized != ""

	app.EmailDomainCategory = EmailDomainCategory(app.Email, app.HasFlag(models.FlagInvalidEmail))
	app.ContactChannel = string(ContactChannel(emailUsable, phoneUsable))
	app.SubmissionWeekday = Weekday(app.SubmissionDate)
	app.SubmissionTimeOfDay = TimeOfDay(timeOfDayRaw)
	app.SubmissionAgeBucket = AgeBucket(app.SubmissionAgeDays)
	app.SubmissionRecency = string(RecencyBucket(app.SubmissionAgeDays))
	app.GraduationYearBucket = c.GraduationYearBucket(app.GraduationYear)
}

// EmailDomainCategory buckets an email address by its domain suffix, with
// a short list of free providers counted as personal.
func EmailDomainCategory(email string, invalid bool) string {
	if email == "" {
		return DomainMissing
	}
	if invalid {
		return DomainInvalid
	}
	domain := EmailDomain(email)
	switch {
	case strings.HasSuffix(domain, ".edu"):
		return DomainEducation
	case strings.HasSuffix(domain, ".gov"):
		return DomainGovernment
	case strings.HasSuffix(domain, ".org"):
		return DomainNonprofit
	case strings.HasSuffix(domain, ".net"):
		return DomainNetwork
	case personalDomains[domain]:
		return DomainPersonal
	default:
		return DomainCommercial
	}
}

// EmailDomain returns the lower-cased domain part, or "" when absent.
func EmailDomain(email string) string {
	at := strings.Index(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

// ContactChannel derives the contact mix from usable email/phone presence.
func ContactChannel(emailUsable, phoneUsable bool) models.ContactChannel {
	switch {
	case emailUsable && phoneUsable:
		return models.ChannelEmailAndPhone
	case emailUsable:
		return models.ChannelEmailOnly
	case phoneUsable:
		return models.ChannelPhoneOnly
	default:
		return models.ChannelMissing
	}
}

// Weekday returns the weekday name of an ISO date, or "" when absent.
func Weekday(dateISO string) string {
	if dateISO == "" {
		return ""
	}
	parsed, err := time.Parse("2006-01-02", dateISO)
	if err != nil {
		return ""
	}
	return parsed.Weekday().String()
}

// TimeOfDay buckets an HH:MM submission time. Anything unparseable is
// unknown rather than flagged; the field is informational only.
func TimeOfDay(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return TimeUnknown
	}
	parts := strings.SplitN(trimmed, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return TimeUnknown
	}
	switch {
	case hour >= 5 && hour <= 11:
		return TimeMorning
	case hour >= 12 && hour <= 16:
		return TimeAfternoon
	case hour >= 17 && hour <= 20:
		return TimeEvening
	default:
		return TimeNight
	}
}

// AgeBucket bins submission age in days.
func AgeBucket(age *int) string {
	if age == nil {
		return AgeMissing
	}
	switch {
	case *age <= 7:
		return "0-7"
	case *age <= 14:
		return "8-14"
	case *age <= 30:
		return "15-30"
	case *age <= 60:
		return "31-60"
	case *age <= 90:
		return "61-90"
	default:
		return "90+"
	}
}

// RecencyBucket bins submission age into reviewer-facing recency labels.
func RecencyBucket(age *int) models.Recency {
	if age == nil {
		return models.RecencyMissing
	}
	switch {
	case *age < 7:
		return models.RecencyFresh
	case *age < 30:
		return models.RecencyActive
	case *age <= 60:
		return models.RecencyStale
	case *age <= 90:
		return models.RecencyBacklog
	default:
		return models.RecencyArchive
	}
}

// GraduationYearBucket relates the graduation year to the reference year.
func (c *Classifier) GraduationYearBucket(year *int) string {
	if year == nil {
		return GradUnknown
	}
	refYear := c.reference.Year()
	switch {
	case *year < refYear:
		return GradOverdue
	case *year == refYear:
		return GradCurrent
	case *year == refYear+1:
		return GradNextYear
	default:
		return GradFuture
	}
}

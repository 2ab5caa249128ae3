// internal/engine/normalize/normalizer.go
package normalize

import (
	"math"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cast"

	"groupscholar-intake/internal/models"
)

// Date formats accepted for submission dates, tried in order.
var dateFormats = []string{"2006-01-02", "2006/01/02", "01/02/2006"}

const (
	gpaDomainMin = 0.0
	gpaDomainMax = 5.0
	gpaLowCutoff = 2.5

	staleAgeDays = 30

	// Graduation years outside reference year +/- this window are out of range.
	graduationYearWindow = 10
)

var programAliases = map[string]string{
	"stem scholars":  "STEM Scholars",
	"arts catalyst":  "Arts Catalyst",
	"health futures": "Health Futures",
}

var schoolTypeAliases = map[string]string{
	"public":               "Public",
	"public school":        "Public",
	"private":              "Private",
	"private school":       "Private",
	"charter":              "Charter",
	"charter school":       "Charter",
	"homeschool":           "Homeschool",
	"home school":          "Homeschool",
	"homeschooled":         "Homeschool",
	"international":        "International",
	"international school": "International",
}

var citizenshipAliases = map[string]string{
	"us citizen":            "US Citizen",
	"u.s. citizen":          "US Citizen",
	"citizen":               "US Citizen",
	"us":                    "US Citizen",
	"permanent resident":    "Permanent Resident",
	"green card":            "Permanent Resident",
	"green card holder":     "Permanent Resident",
	"international":         "International",
	"international student": "International",
	"visa":                  "Visa Holder",
	"visa holder":           "Visa Holder",
	"f-1":                   "Visa Holder",
	"f1 visa":               "Visa Holder",
}

var referralAliases = map[string]string{
	"instagram":        "Social Media",
	"facebook":         "Social Media",
	"tiktok":           "Social Media",
	"twitter":          "Social Media",
	"social media":     "Social Media",
	"counselor":        "School Counselor",
	"school counselor": "School Counselor",
	"teacher":          "Teacher",
	"website":          "Website",
	"web":              "Website",
	"friend":           "Word of Mouth",
	"word of mouth":    "Word of Mouth",
}

var trueSpellings = map[string]bool{
	"yes": true, "y": true, "true": true, "1": true,
}

var falseSpellings = map[string]bool{
	"no": true, "n": true, "false": true, "0": true,
}

// Observations records what the normalizer saw go wrong per field. The
// validator turns them into flags; keeping them separate keeps flag emission
// order in one place.
type Observations struct {
	MissingApplicantID    bool
	MissingName           bool
	MissingEmail          bool
	InvalidEmail          bool
	MissingPhone          bool
	InvalidPhone          bool
	MissingProgram        bool
	MissingSchoolType     bool
	MissingReferralSource bool
	MissingIncome         bool

	MissingCitizenship      bool
	UnrecognizedCitizenship bool

	InvalidGPA    bool
	GPAOutOfRange bool
	LowGPA        bool

	MissingSubmissionDate bool
	InvalidSubmissionDate bool
	FutureSubmissionDate  bool
	StaleSubmission       bool

	MissingGraduationYear    bool
	InvalidGraduationYear    bool
	GraduationYearOutOfRange bool
}

// Normalizer converts raw rows into canonical typed records against a fixed
// reference date.
type Normalizer struct {
	reference time.Time
}

// New creates a Normalizer. The reference date anchors submission age,
// staleness and the graduation-year window, and must be injectable so runs
// are deterministic.
func New(reference time.Time) *Normalizer {
	return &Normalizer{reference: truncateToDay(reference)}
}

// Reference returns the normalizer's reference date.
func (n *Normalizer) Reference() time.Time {
	return n.reference
}

// Record normalizes one raw row. Per-record problems never error: they come
// back as observations for the validator.
func (n *Normalizer) Record(raw models.RawRecord) (models.NormalizedApplication, Observations) {
	var app models.NormalizedApplication
	var obs Observations

	app.ApplicantID = strings.TrimSpace(raw["applicant_id"])
	obs.MissingApplicantID = app.ApplicantID == ""

	app.Name = strings.TrimSpace(raw["name"])
	obs.MissingName = app.Name == ""

	email := strings.TrimSpace(raw["email"])
	if email == "" {
		obs.MissingEmail = true
	} else {
		app.Email = strings.ToLower(email)
		if !isEmail(app.Email) {
			obs.InvalidEmail = true
		}
	}

	app.Phone = strings.TrimSpace(raw["phone"])
	normalized, country := normalizePhone(app.Phone)
	app.PhoneNormalized = normalized
	app.PhoneCountry = country
	switch country {
	case PhoneMissing:
		obs.MissingPhone = true
	case PhoneInvalid:
		obs.InvalidPhone = true
	}

	rawProgram := strings.TrimSpace(raw["program"])
	if rawProgram == "" {
		app.Program = "Unspecified"
		obs.MissingProgram = true
	} else {
		app.Program = normalizeProgram(rawProgram)
	}

	rawSchool := strings.TrimSpace(raw["school_type"])
	if rawSchool == "" {
		app.SchoolType = "Unknown"
		obs.MissingSchoolType = true
	} else if canonical, ok := schoolTypeAliases[strings.ToLower(rawSchool)]; ok {
		app.SchoolType = canonical
	} else {
		app.SchoolType = rawSchool
	}

	rawCitizenship := strings.TrimSpace(raw["citizenship_status"])
	if rawCitizenship == "" {
		app.CitizenshipStatus = "Unknown"
		obs.MissingCitizenship = true
	} else if canonical, ok := citizenshipAliases[strings.ToLower(rawCitizenship)]; ok {
		app.CitizenshipStatus = canonical
	} else {
		app.CitizenshipStatus = rawCitizenship
		obs.UnrecognizedCitizenship = true
	}

	rawReferral := strings.TrimSpace(raw["referral_source"])
	if rawReferral == "" {
		obs.MissingReferralSource = true
	} else if canonical, ok := referralAliases[strings.ToLower(rawReferral)]; ok {
		app.ReferralSource = canonical
	} else {
		app.ReferralSource = titleCase(rawReferral)
	}

	app.IncomeBracket = normalizeIncome(strings.TrimSpace(raw["income_bracket"]))
	obs.MissingIncome = app.IncomeBracket == ""

	n.parseGPA(strings.TrimSpace(raw["gpa"]), &app, &obs)
	n.parseSubmission(strings.TrimSpace(raw["submission_date"]), &app, &obs)
	n.parseGraduationYear(strings.TrimSpace(raw["graduation_year"]), &app, &obs)

	app.FirstGen = parseBool(raw["first_gen"])

	app.EligibilityNotes = strings.TrimSpace(raw["eligibility_notes"])
	app.NoteTags = ExtractNoteTags(app.EligibilityNotes)

	return app, obs
}

func (n *Normalizer) parseGPA(value string, app *models.NormalizedApplication, obs *Observations) {
	if value == "" {
		return
	}
	gpa, err := cast.ToFloat64E(value)
	if err != nil {
		obs.InvalidGPA = true
		return
	}
	gpa = roundTo(gpa, 2)
	app.GPA = &gpa
	if gpa < gpaDomainMin || gpa > gpaDomainMax {
		obs.GPAOutOfRange = true
	} else if gpa < gpaLowCutoff {
		obs.LowGPA = true
	}
}

func (n *Normalizer) parseSubmission(value string, app *models.NormalizedApplication, obs *Observations) {
	if value == "" {
		obs.MissingSubmissionDate = true
		return
	}
	parsed, ok := parseDate(value)
	if !ok {
		obs.InvalidSubmissionDate = true
		return
	}
	app.SubmissionDate = parsed.Format("2006-01-02")
	if parsed.After(n.reference) {
		obs.FutureSubmissionDate = true
		return
	}
	age := int(n.reference.Sub(parsed).Hours() / 24)
	app.SubmissionAgeDays = &age
	if age >= staleAgeDays {
		obs.StaleSubmission = true
	}
}

func (n *Normalizer) parseGraduationYear(value string, app *models.NormalizedApplication, obs *Observations) {
	if value == "" {
		obs.MissingGraduationYear = true
		return
	}
	year, err := cast.ToIntE(value)
	if err != nil || year < 1000 || year > 9999 {
		obs.InvalidGraduationYear = true
		return
	}
	app.GraduationYear = &year
	refYear := n.reference.Year()
	if year < refYear-graduationYearWindow || year > refYear+graduationYearWindow {
		obs.GraduationYearOutOfRange = true
	}
}

func parseDate(value string) (time.Time, bool) {
	for _, format := range dateFormats {
		if parsed, err := time.Parse(format, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func parseBool(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if trueSpellings[v] {
		return true
	}
	if falseSpellings[v] {
		return false
	}
	// Non-critical field: unparseable defaults to false without a flag.
	return false
}

func isEmail(value string) bool {
	if value == "" || strings.Contains(value, " ") {
		return false
	}
	at := strings.Index(value, "@")
	if at <= 0 {
		return false
	}
	domain := value[at+1:]
	return strings.Contains(domain, ".") && !strings.Contains(domain, "@")
}

func normalizeProgram(value string) string {
	if canonical, ok := programAliases[strings.ToLower(value)]; ok {
		return canonical
	}
	return titleCase(value)
}

var incomeBands = []struct {
	needles []string
	label   string
}{
	{[]string{"<=40", "under40", "below40", "<40", "0-40"}, "<=40k"},
	{[]string{"40k-70", "40-70", "40to70"}, "40k-70k"},
	{[]string{"70k-100", "70-100", "70to100"}, "70k-100k"},
	{[]string{">100", "100k+", "over100", "above100"}, ">100k"},
}

func normalizeIncome(value string) string {
	if value == "" {
		return ""
	}
	compact := strings.NewReplacer(" ", "", "$", "", ",", "").Replace(strings.ToLower(value))
	for _, band := range incomeBands {
		for _, needle := range band.needles {
			if strings.Contains(compact, needle) {
				return band.label
			}
		}
	}
	return value
}

func titleCase(value string) string {
	words := strings.Fields(strings.ToLower(value))
	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + word[size:]
	}
	return strings.Join(words, " ")
}

func roundTo(value float64, decimals int) float64 {
	factor := 1.0
	for i := 0; i < decimals; i++ {
		factor *= 10
	}
	return math.Round(value*factor) / factor
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

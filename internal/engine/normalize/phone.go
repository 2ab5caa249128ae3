// internal/engine/normalize/phone.go
package normalize

import "strings"

// Phone country labels. Classification is prefix-based, not a full numbering
// plan: it only needs to be stable enough for reporting buckets.
const (
	PhoneUSCanada      = "US/Canada"
	PhoneUnitedKingdom = "United Kingdom"
	PhoneIndia         = "India"
	PhoneAustralia     = "Australia"
	PhoneInternational = "International"
	PhoneInvalid       = "invalid"
	PhoneMissing       = "missing"
)

// AllPhoneCountries lists the classification labels for fixed-enum counts.
var AllPhoneCountries = []string{
	PhoneUSCanada, PhoneUnitedKingdom, PhoneIndia, PhoneAustralia,
	PhoneInternational, PhoneInvalid, PhoneMissing,
}

var phonePrefixes = []struct {
	prefix  string
	country string
}{
	{"1", PhoneUSCanada},
	{"44", PhoneUnitedKingdom},
	{"91", PhoneIndia},
	{"61", PhoneAustralia},
}

// normalizePhone strips formatting noise and classifies the number by
// leading country code. A present but unparseable value is invalid, not
// missing. The normalized form is "+" followed by digits only.
func normalizePhone(raw string) (normalized, country string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", PhoneMissing
	}

	hasPlus := strings.HasPrefix(trimmed, "+")
	var digits strings.Builder
	for _, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == '+' || r == '-' || r == '.' || r == '(' || r == ')' || r == ' ':
			// formatting noise
		default:
			return "", PhoneInvalid
		}
	}

	num := digits.String()
	if len(num) < 7 || len(num) > 15 {
		return "", PhoneInvalid
	}

	if hasPlus {
		return "+" + num, classifyByPrefix(num)
	}

	// Bare national numbers: 10 digits is assumed North American, 11 digits
	// with a leading 1 likewise. Anything else keeps its digits as dialed.
	switch {
	case len(num) == 10:
		return "+1" + num, PhoneUSCanada
	case len(num) == 11 && strings.HasPrefix(num, "1"):
		return "+" + num, PhoneUSCanada
	default:
		return "+" + num, PhoneInternational
	}
}

func classifyByPrefix(digits string) string {
	for _, entry := range phonePrefixes {
		if strings.HasPrefix(digits, entry.prefix) {
			// The NANP match needs 11 digits total; shorter "1..." numbers
			// are some other country's national format.
			if entry.prefix == "1" && len(digits) != 11 {
				continue
			}
			return entry.country
		}
	}
	return PhoneInternational
}

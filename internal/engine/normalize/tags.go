// internal/engine/normalize/tags.go
package normalize

import "strings"

// Note tag vocabulary. Entries are evaluated in order against the lower-cased
// note text; the first matching phrase wins per tag, so put the more specific
// phrasing first.
var noteTagVocabulary = []struct {
	phrases []string
	tag     string
}{
	{[]string{"missing essay", "no essay"}, "missing_essay"},
	{[]string{"missing recommendation", "no recommendation"}, "missing_recommendation"},
	{[]string{"missing transcript", "no transcript"}, "missing_transcript"},
	{[]string{"gpa review"}, "gpa_review"},
	{[]string{"income verification", "verify income"}, "income_verification"},
	{[]string{"fee waiver"}, "fee_waiver"},
	{[]string{"deferral", "defer"}, "deferral_request"},
	{[]string{"all docs complete", "docs complete"}, "docs_complete"},
	{[]string{"follow up", "follow-up"}, "follow_up"},
}

// ExtractNoteTags scans free-text eligibility notes for the fixed tag
// vocabulary. Multiple tags may apply; each tag appears at most once, in
// vocabulary order.
func ExtractNoteTags(notes string) []string {
	if notes == "" {
		return nil
	}
	lowered := strings.ToLower(notes)
	var tags []string
	for _, entry := range noteTagVocabulary {
		for _, phrase := range entry.phrases {
			if strings.Contains(lowered, phrase) {
				tags = append(tags, entry.tag)
				break
			}
		}
	}
	return tags
}

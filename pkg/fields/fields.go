// pkg/fields/fields.go
package fields

import "strings"

// Field describes one canonical intake field: its name, the header spellings
// seen in the wild, and whether downstream review treats it as required.
type Field struct {
	Name     string
	Aliases  []string
	Required bool
}

// Registry lists every canonical field in input order. Ingest resolves
// headers against it; the sample generator emits it.
var Registry = []Field{
	{Name: "applicant_id", Aliases: []string{"applicant id", "application id", "id"}, Required: true},
	{Name: "name", Aliases: []string{"full name", "applicant name"}, Required: true},
	{Name: "email", Aliases: []string{"email address", "e-mail"}, Required: true},
	{Name: "phone", Aliases: []string{"phone number", "contact phone", "telephone"}},
	{Name: "program", Aliases: []string{"program name"}, Required: true},
	{Name: "school_type", Aliases: []string{"school", "type of school"}},
	{Name: "gpa", Aliases: []string{"grade point average"}},
	{Name: "graduation_year", Aliases: []string{"grad year", "graduation", "expected graduation"}},
	{Name: "income_bracket", Aliases: []string{"income", "household income"}},
	{Name: "first_gen", Aliases: []string{"first gen", "first gen status", "first-generation"}},
	{Name: "citizenship_status", Aliases: []string{"citizenship", "residency status"}},
	{Name: "referral_source", Aliases: []string{"referral", "how did you hear"}},
	{Name: "submission_date", Aliases: []string{"submitted at", "submitted", "submission date"}, Required: true},
	{Name: "submission_time", Aliases: []string{"time submitted", "submitted time"}},
	{Name: "eligibility_notes", Aliases: []string{"notes", "eligibility note"}},
}

var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[string]string {
	index := make(map[string]string)
	for _, field := range Registry {
		index[field.Name] = field.Name
		for _, alias := range field.Aliases {
			index[alias] = field.Name
		}
	}
	return index
}

// Canonical resolves a raw header to its canonical field name. Unknown
// headers pass through lower-cased with spaces as underscores, so extra
// columns survive into the raw record without breaking anything.
func Canonical(header string) string {
	key := strings.ToLower(strings.TrimSpace(header))
	if name, ok := aliasIndex[key]; ok {
		return name
	}
	return strings.ReplaceAll(key, " ", "_")
}

// Names returns the canonical field names in registry order.
func Names() []string {
	names := make([]string, len(Registry))
	for i, field := range Registry {
		names[i] = field.Name
	}
	return names
}

// IsRequired reports whether a canonical field is required for review.
func IsRequired(name string) bool {
	for _, field := range Registry {
		if field.Name == name {
			return field.Required
		}
	}
	return false
}

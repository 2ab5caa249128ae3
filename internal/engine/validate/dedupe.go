// internal/engine/validate/dedupe.go
package validate

import (
	"strings"

	"groupscholar-intake/internal/models"
)

// DuplicateMarks records, per batch index, which duplicate keys collided.
// Marking is symmetric: every member of a colliding group is marked.
type DuplicateMarks struct {
	Email       []bool
	ApplicantID []bool
	Phone       []bool
}

// DetectDuplicates groups the batch by lowered email, lowered applicant id
// and normalized phone digits in one pass. Empty or invalid keys never form
// a group, so missing data can't manufacture duplicates.
func DetectDuplicates(apps []models.NormalizedApplication) DuplicateMarks {
	marks := DuplicateMarks{
		Email:       make([]bool, len(apps)),
		ApplicantID: make([]bool, len(apps)),
		Phone:       make([]bool, len(apps)),
	}

	emailGroups := make(map[string][]int)
	idGroups := make(map[string][]int)
	phoneGroups := make(map[string][]int)

	for i := range apps {
		if key := strings.ToLower(apps[i].Email); key != "" {
			emailGroups[key] = append(emailGroups[key], i)
		}
		if key := strings.ToLower(apps[i].ApplicantID); key != "" {
			idGroups[key] = append(idGroups[key], i)
		}
		if key := apps[i].PhoneNormalized; key != "" {
			phoneGroups[key] = append(phoneGroups[key], i)
		}
	}

	markGroups(emailGroups, marks.Email)
	markGroups(idGroups, marks.ApplicantID)
	markGroups(phoneGroups, marks.Phone)

	return marks
}

func markGroups(groups map[string][]int, out []bool) {
	for _, members := range groups {
		if len(members) < 2 {
			continue
		}
		for _, i := range members {
			out[i] = true
		}
	}
}

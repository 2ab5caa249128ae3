// internal/export/followup.go
package export

import (
	"encoding/csv"
	"os"
	"sort"
	"strconv"
	"strings"

	stderrors "groupscholar-intake/internal/common/errors"
	"groupscholar-intake/internal/models"
)

var priorityRank = map[string]int{
	string(models.PriorityHigh):   0,
	string(models.PriorityMedium): 1,
	string(models.PriorityLow):    2,
}

var recommendedActions = map[string]string{
	string(models.PriorityHigh):   "Contact applicant immediately; application cannot be reviewed as submitted",
	string(models.PriorityMedium): "Request missing information before the review deadline",
	string(models.PriorityLow):    "Resolve minor data issues during routine review",
}

// WriteFollowUpQueue writes flagged applications as a worklist ordered by
// review priority (high first), then readiness score ascending, then
// applicant id so the output is stable across runs.
func WriteFollowUpQueue(apps []models.NormalizedApplication, path string) error {
	var queue []*models.NormalizedApplication
	for i := range apps {
		if len(apps[i].Flags) > 0 {
			queue = append(queue, &apps[i])
		}
	}

	sort.SliceStable(queue, func(i, j int) bool {
		ri, rj := priorityRank[queue[i].ReviewPriority], priorityRank[queue[j].ReviewPriority]
		if ri != rj {
			return ri < rj
		}
		if queue[i].ReadinessScore != queue[j].ReadinessScore {
			return queue[i].ReadinessScore < queue[j].ReadinessScore
		}
		return queue[i].ApplicantID < queue[j].ApplicantID
	})

	if err := ensureParent(path); err != nil {
		return stderrors.NewOutputWriteFailedError(path, err)
	}
	handle, err := os.Create(path)
	if err != nil {
		return stderrors.NewOutputWriteFailedError(path, err)
	}
	defer handle.Close()

	writer := csv.NewWriter(handle)
	header := []string{
		"applicant_id", "name", "email", "program", "review_priority",
		"readiness_score", "readiness_bucket", "flags", "recommended_action",
	}
	if err := writer.Write(header); err != nil {
		return stderrors.NewOutputWriteFailedError(path, err)
	}

	for _, app := range queue {
		row := []string{
			app.ApplicantID,
			app.Name,
			app.Email,
			app.Program,
			app.ReviewPriority,
			strconv.Itoa(app.ReadinessScore),
			app.ReadinessBucket,
			strings.Join(app.Flags, "; "),
			recommendedActions[app.ReviewPriority],
		}
		if err := writer.Write(row); err != nil {
			return stderrors.NewOutputWriteFailedError(path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return stderrors.NewOutputWriteFailedError(path, err)
	}
	return nil
}

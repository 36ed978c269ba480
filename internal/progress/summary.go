// AngelaMos | 2026
// summary.go

package progress

import (
	"math"
	"time"
)

// UserProgressSummary is derived per user for the admin roster; it is
// never persisted.
type UserProgressSummary struct {
	UserID             string     `json:"user_id"`
	UserName           string     `json:"user_name"`
	UserEmail          string     `json:"user_email"`
	TotalSections      int        `json:"total_sections"`
	CompletedSections  int        `json:"completed_sections"`
	ProgressPercentage float64    `json:"progress_percentage"`
	LastActivity       *time.Time `json:"last_activity,omitempty"`
}

// Summarize reduces a user's raw progress records against the fixed
// catalog size. The result is deterministic regardless of record order:
// last activity is a max reduction over completed timestamps, not a
// first match. A user with no records, or an empty catalog, summarizes
// to zero without error.
func Summarize(
	userID, userName, userEmail string,
	records []SectionProgress,
	totalSections int,
) UserProgressSummary {
	completed := 0
	var lastActivity *time.Time

	for i := range records {
		rec := &records[i]
		if !rec.Completed {
			continue
		}

		completed++

		if rec.CompletedAt == nil {
			continue
		}
		if lastActivity == nil || rec.CompletedAt.After(*lastActivity) {
			t := *rec.CompletedAt
			lastActivity = &t
		}
	}

	percentage := 0.0
	if totalSections > 0 {
		percentage = float64(completed) / float64(totalSections) * 100
		percentage = math.Round(percentage*100) / 100
	}

	return UserProgressSummary{
		UserID:             userID,
		UserName:           userName,
		UserEmail:          userEmail,
		TotalSections:      totalSections,
		CompletedSections:  completed,
		ProgressPercentage: percentage,
		LastActivity:       lastActivity,
	}
}

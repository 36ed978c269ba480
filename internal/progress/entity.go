// AngelaMos | 2026
// entity.go

package progress

import (
	"time"
)

// SectionProgress tracks one user's state for one catalog section.
// There is never more than one record per (user, section) pair: updates
// go through the upsert path and a unique compound index backs that up.
//
// CompletedAt is set iff Completed is true; un-completing a section
// clears it rather than leaving a stale timestamp.
type SectionProgress struct {
	ID          string     `bson:"_id"                    json:"id"`
	UserID      string     `bson:"user_id"                json:"user_id"`
	SectionID   string     `bson:"section_id"             json:"section_id"`
	Completed   bool       `bson:"completed"              json:"completed"`
	CompletedAt *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

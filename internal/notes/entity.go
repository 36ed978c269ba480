// AngelaMos | 2026
// entity.go

package notes

import (
	"time"
)

// Note is free text a user keeps against a catalog section. A user may
// have any number of notes per section. Notes are owned exclusively by
// their creator; every mutation is filtered by owner, so a foreign note
// is indistinguishable from a missing one.
type Note struct {
	ID        string    `bson:"_id"        json:"id"`
	UserID    string    `bson:"user_id"    json:"user_id"`
	SectionID string    `bson:"section_id" json:"section_id"`
	Content   string    `bson:"content"    json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

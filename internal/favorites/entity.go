// AngelaMos | 2026
// entity.go

package favorites

import (
	"time"
)

// Favorite marks a section as favorited by its mere existence: there
// is no boolean field, presence of the record is the on state. Toggling
// deletes or inserts accordingly.
type Favorite struct {
	ID        string    `bson:"_id"        json:"id"`
	UserID    string    `bson:"user_id"    json:"user_id"`
	SectionID string    `bson:"section_id" json:"section_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

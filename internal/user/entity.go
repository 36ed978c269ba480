// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

// Role is a closed enumeration; anything else is rejected at the
// boundary so gate checks can be exhaustive.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the stored credential record. PasswordHash never crosses the
// store boundary: it is excluded from JSON and stripped from responses.
type User struct {
	ID           string    `bson:"_id"           json:"id"`
	Email        string    `bson:"email"         json:"email"`
	Name         string    `bson:"name"          json:"name"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         Role      `bson:"role"          json:"role"`
	CreatedAt    time.Time `bson:"created_at"    json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

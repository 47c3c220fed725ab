package models

import "time"

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RolePlayer UserRole = "player"
	RoleFan    UserRole = "fan"
	RoleStaff  UserRole = "staff"
)

// ParseUserRole maps a raw string onto the closed role set.
func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case RoleAdmin, RolePlayer, RoleFan, RoleStaff:
		return UserRole(s), true
	}
	return "", false
}

// User is the per-identity profile: who can sign in, what role they carry,
// and whether a player has been cleared to rate teammates.
type User struct {
	ID                   int       `json:"id"`
	FullName             string    `json:"full_name"`
	Email                string    `json:"email"`
	PasswordHash         string    `json:"-"`
	Role                 UserRole  `json:"role"`
	AuthorizedForRatings bool      `json:"authorized_for_ratings"`
	CreatedAt            time.Time `json:"created_at"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

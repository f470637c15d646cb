package domain

import "time"

const (
	RoleAdmin   = "ADMIN"
	RoleStaff   = "STAFF"
	RoleStudent = "STUDENT"
)

// ValidRole reports whether role is one of the known role constants.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleStaff, RoleStudent:
		return true
	}
	return false
}

// User models an authenticated actor in the system. PasswordHash is never
// serialized; output shapes carry the user without the credential.
type User struct {
	UserID       int64     `json:"userId"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Enabled      bool      `json:"enabled"`
	Active       bool      `json:"active"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserSummary is the reduced projection used by administrative listings.
type UserSummary struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Enabled  bool   `json:"enabled"`
	Active   bool   `json:"active"`
}

package handler

import "time"

// --- Request / Response types ---

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Enabled  *bool  `json:"enabled"`
	Active   *bool  `json:"active"`
	Role     string `json:"role"     validate:"required,oneof=ADMIN STAFF STUDENT"`
}

// updateUserRequest accepts an empty password, which leaves the stored
// credential unchanged.
type updateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
	Enabled  bool   `json:"enabled"`
	Active   bool   `json:"active"`
	Role     string `json:"role"     validate:"required,oneof=ADMIN STAFF STUDENT"`
}

// userResponse never carries the password or its hash.
type userResponse struct {
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	Enabled   bool      `json:"enabled"`
	Active    bool      `json:"active"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type userSummaryResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Enabled  bool   `json:"enabled"`
	Active   bool   `json:"active"`
}

package domain

import "time"

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

// ReservedAdminUsername is the bootstrap super-admin identity. The account
// cannot be created through public registration, cannot be deleted, and its
// role cannot be changed.
const ReservedAdminUsername = "admin"

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the role grants admin-level access.
func IsAdmin(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}

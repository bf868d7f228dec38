package domain

import (
	"errors"
	"time"
)

const (
	RolePlayer     = "player"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

var (
	ErrUnauthenticated      = errors.New("authentication required")
	ErrTokenExpired         = errors.New("token expired")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTooManyLoginAttempts = errors.New("too many login attempts")
	ErrForbidden            = errors.New("access forbidden")
	ErrUserNotFound         = errors.New("user not found")
	ErrValidation           = errors.New("invalid input")
)

// IsAdminRole reports whether a role is allowed to mutate the roster.
// super_admin carries the same mutation rights as admin.
func IsAdminRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}

// User models any principal stored in the roster: players and admins share one
// collection, distinguished by role. PasswordHash is set only for admin roles.
// Position is an admin-assigned display ordering hint; nil means unordered.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	TeamID       string     `json:"team_id"`
	Role         string     `json:"role"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	PasswordHash string     `json:"-"`
	Position     *int       `json:"position,omitempty"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

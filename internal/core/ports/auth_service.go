package ports

import (
	"context"

	"github.com/tibtennis/roster-api/internal/core/domain"
)

// LoginResult is the outcome of a successful login. Created reports whether
// the identity was lazily created by this call.
type LoginResult struct {
	Token   string
	User    *domain.User
	Created bool
}

// AuthService implements the two login flows.
type AuthService interface {
	PlayerLogin(ctx context.Context, name, teamID string) (*LoginResult, error)
	AdminLogin(ctx context.Context, username, password string) (*LoginResult, error)
}

// AttemptLimiter throttles repeated login attempts for a key (the username).
// Allow reports whether another attempt is permitted; Reset clears the
// counter after a successful login.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

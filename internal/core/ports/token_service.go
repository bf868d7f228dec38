package ports

import "github.com/tibtennis/roster-api/internal/core/domain"

// TokenClaims is the identity embedded in a signed token. Verification
// returns the claims verbatim: the backing store is never re-read, so a role
// change does not invalidate tokens issued before it.
type TokenClaims struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	TeamID string `json:"team_id"`
}

// TokenService issues and verifies signed, expiring identity tokens.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (*TokenClaims, error)
}

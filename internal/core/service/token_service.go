package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tibtennis/roster-api/internal/core/domain"
	"github.com/tibtennis/roster-api/internal/core/ports"
)

// Players stay logged in on shared devices for a month; admin sessions are
// shorter-lived.
const (
	playerTokenTTL = 30 * 24 * time.Hour
	adminTokenTTL  = 7 * 24 * time.Hour
)

// tokenClaims is the wire shape of the JWT payload.
type tokenClaims struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	TeamID string `json:"team_id"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies identity tokens with HS256. Verification is
// stateless: a valid signature plus an unexpired claim is sufficient.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue produces a signed token embedding the user's identity. The TTL is
// chosen from the user's role.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	ttl := playerTokenTTL
	if domain.IsAdminRole(user.Role) {
		ttl = adminTokenTTL
	}

	now := time.Now()
	claims := tokenClaims{
		Name:   user.Name,
		Role:   user.Role,
		TeamID: user.TeamID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
// It fails with ErrTokenExpired past the deadline and ErrUnauthenticated for
// any other defect (bad signature, wrong algorithm, malformed token).
func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrUnauthenticated
	}
	if !parsed.Valid {
		return nil, domain.ErrUnauthenticated
	}

	return &ports.TokenClaims{
		UserID: claims.Subject,
		Name:   claims.Name,
		Role:   claims.Role,
		TeamID: claims.TeamID,
	}, nil
}

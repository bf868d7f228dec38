package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tibtennis/roster-api/internal/core/domain"
	"github.com/tibtennis/roster-api/internal/core/ports"
)

// AdminCredentials are the configured admin username and password. Admin
// logins are checked against these, not against the stored hash; the hash
// exists to satisfy the model invariant that admin records carry one.
type AdminCredentials struct {
	Username string
	Password string
}

// AuthService implements the player and admin login flows. Both are lazy
// upserts: a missing identity is created on first successful login.
type AuthService struct {
	users   ports.UserRepository
	tokens  ports.TokenService
	limiter ports.AttemptLimiter
	admin   AdminCredentials
	teamID  string
	log     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, limiter ports.AttemptLimiter, admin AdminCredentials, teamID string, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:   users,
		tokens:  tokens,
		limiter: limiter,
		admin:   admin,
		teamID:  teamID,
		log:     log,
	}
}

// PlayerLogin finds the player by (name, team_id) or creates it with role
// player, then issues a 30-day token. A second identical login returns the
// same identity, never a duplicate.
func (s *AuthService) PlayerLogin(ctx context.Context, name, teamID string) (*ports.LoginResult, error) {
	if name == "" || teamID == "" {
		return nil, fmt.Errorf("%w: name and team_id are required", domain.ErrValidation)
	}

	created := false
	user, err := s.users.FindByNameAndTeam(ctx, name, teamID)
	if errors.Is(err, domain.ErrUserNotFound) {
		user, err = s.users.Insert(ctx, &domain.User{
			Name:      name,
			TeamID:    teamID,
			Role:      domain.RolePlayer,
			CreatedAt: time.Now().UTC(),
		})
		created = true
	}
	if err != nil {
		return nil, err
	}

	s.stampLastLogin(ctx, user)

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("name", user.Name).Str("team_id", user.TeamID).Bool("created", created).Msg("player login")
	return &ports.LoginResult{Token: token, User: user, Created: created}, nil
}

// AdminLogin checks the credentials against the configured admin account,
// creating the admin identity with a bcrypt-hashed password on first success.
// Attempts are throttled per username before the credential check, so a
// brute-force run cannot probe passwords faster than the limiter window.
func (s *AuthService) AdminLogin(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		ok, err := s.limiter.Allow(ctx, username)
		if err != nil {
			// A limiter outage must not lock admins out.
			s.log.Warn().Err(err).Msg("login limiter unavailable")
		} else if !ok {
			return nil, domain.ErrTooManyLoginAttempts
		}
	}

	if username != s.admin.Username || password != s.admin.Password {
		s.log.Info().Str("username", username).Msg("admin login rejected")
		return nil, domain.ErrInvalidCredentials
	}

	created := false
	user, err := s.users.FindAdmin(ctx, username, s.teamID)
	if errors.Is(err, domain.ErrUserNotFound) {
		hash, herr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if herr != nil {
			return nil, herr
		}
		user, err = s.users.Insert(ctx, &domain.User{
			Name:         username,
			TeamID:       s.teamID,
			Role:         domain.RoleAdmin,
			PasswordHash: string(hash),
			CreatedAt:    time.Now().UTC(),
		})
		created = true
	}
	if err != nil {
		return nil, err
	}

	if s.limiter != nil {
		if rerr := s.limiter.Reset(ctx, username); rerr != nil {
			s.log.Warn().Err(rerr).Msg("login limiter reset failed")
		}
	}

	s.stampLastLogin(ctx, user)

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", user.Name).Bool("created", created).Msg("admin login")
	return &ports.LoginResult{Token: token, User: user, Created: created}, nil
}

// stampLastLogin records the login time; failures are logged, not surfaced.
func (s *AuthService) stampLastLogin(ctx context.Context, user *domain.User) {
	now := time.Now().UTC()
	if err := s.users.SetLastLogin(ctx, user.ID, now); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to stamp last_login")
		return
	}
	user.LastLogin = &now
}

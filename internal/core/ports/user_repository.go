package ports

import (
	"context"
	"time"

	"github.com/tibtennis/roster-api/internal/core/domain"
)

// ProfileUpdate carries the mutable profile fields of a user. A nil field is
// left untouched in the store.
type ProfileUpdate struct {
	Name  *string
	Email *string
	Phone *string
}

// PositionAssignment pairs a user id with its new display position.
type PositionAssignment struct {
	UserID   string
	Position int
}

// UserRepository defines persistence for users (players and admins).
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByNameAndTeam(ctx context.Context, name, teamID string) (*domain.User, error)
	FindAdmin(ctx context.Context, name, teamID string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	ListPlayers(ctx context.Context, teamID string) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	SetPositions(ctx context.Context, assignments []PositionAssignment) error
	SetLastLogin(ctx context.Context, id string, at time.Time) error
}

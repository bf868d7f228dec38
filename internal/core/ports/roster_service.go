package ports

import (
	"context"

	"github.com/tibtennis/roster-api/internal/core/domain"
)

// CreatePlayerInput carries the fields for a new player record. TeamID is
// optional; when empty the caller's team is used.
type CreatePlayerInput struct {
	Name   string
	Email  string
	Phone  string
	TeamID string
}

// UpdatePlayerInput carries the mutable fields of an existing player. A nil
// field was absent from the request and keeps its stored value.
type UpdatePlayerInput struct {
	Name  *string
	Email *string
	Phone *string
}

// ReorderItem assigns a caller-supplied position to a player. Positions are
// taken at face value; no uniqueness or contiguity is enforced.
type ReorderItem struct {
	ID       string
	Position int
}

// RosterService performs CRUD and ordering over the player list, scoped to
// the caller's team and gated on the caller's role.
type RosterService interface {
	List(ctx context.Context, caller TokenClaims) ([]*domain.User, error)
	Create(ctx context.Context, caller TokenClaims, input CreatePlayerInput) (*domain.User, error)
	Update(ctx context.Context, caller TokenClaims, id string, input UpdatePlayerInput) (*domain.User, error)
	Delete(ctx context.Context, caller TokenClaims, id string) error
	Reorder(ctx context.Context, caller TokenClaims, items []ReorderItem) error
}

package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tibtennis/roster-api/internal/core/domain"
	"github.com/tibtennis/roster-api/internal/core/ports"
)

// RosterService performs CRUD and manual reordering over the player list.
// Mutations require an admin caller; listing is open to any authenticated
// identity of the team.
type RosterService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewRosterService(users ports.UserRepository, log zerolog.Logger) *RosterService {
	return &RosterService{users: users, log: log}
}

// List returns the team's players sorted by position ascending, then name
// ascending. Players without a position sort after all positioned ones.
func (s *RosterService) List(ctx context.Context, caller ports.TokenClaims) ([]*domain.User, error) {
	players, err := s.users.ListPlayers(ctx, caller.TeamID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(players, func(i, j int) bool {
		return playerBefore(players[i], players[j])
	})
	return players, nil
}

// playerBefore orders by assigned position first, unordered players last,
// name as the tiebreak.
func playerBefore(a, b *domain.User) bool {
	switch {
	case a.Position != nil && b.Position != nil:
		if *a.Position != *b.Position {
			return *a.Position < *b.Position
		}
	case a.Position != nil:
		return true
	case b.Position != nil:
		return false
	}
	return a.Name < b.Name
}

// Create adds a new player record to the caller's team.
func (s *RosterService) Create(ctx context.Context, caller ports.TokenClaims, input ports.CreatePlayerInput) (*domain.User, error) {
	if !domain.IsAdminRole(caller.Role) {
		return nil, domain.ErrForbidden
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	teamID := input.TeamID
	if teamID == "" {
		teamID = caller.TeamID
	}

	player, err := s.users.Insert(ctx, &domain.User{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		TeamID:    teamID,
		Role:      domain.RolePlayer,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("player_id", player.ID).Str("team_id", teamID).Msg("player created")
	return player, nil
}

// Update changes a player's name, email and phone. Fields absent from the
// input keep their stored values.
func (s *RosterService) Update(ctx context.Context, caller ports.TokenClaims, id string, input ports.UpdatePlayerInput) (*domain.User, error) {
	if !domain.IsAdminRole(caller.Role) {
		return nil, domain.ErrForbidden
	}
	if input.Name != nil && *input.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
	}

	player, err := s.users.UpdateProfile(ctx, id, ports.ProfileUpdate{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("player_id", id).Msg("player updated")
	return player, nil
}

// Delete removes a player record.
func (s *RosterService) Delete(ctx context.Context, caller ports.TokenClaims, id string) error {
	if !domain.IsAdminRole(caller.Role) {
		return domain.ErrForbidden
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("player_id", id).Msg("player deleted")
	return nil
}

// Reorder applies caller-supplied positions in one bulk store operation.
// Positions are not checked for uniqueness or contiguity and the batch is
// atomic per item only; a failure can leave it partially applied.
func (s *RosterService) Reorder(ctx context.Context, caller ports.TokenClaims, items []ports.ReorderItem) error {
	if !domain.IsAdminRole(caller.Role) {
		return domain.ErrForbidden
	}
	if len(items) == 0 {
		return fmt.Errorf("%w: players list is required", domain.ErrValidation)
	}

	assignments := make([]ports.PositionAssignment, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			return fmt.Errorf("%w: player id is required", domain.ErrValidation)
		}
		assignments = append(assignments, ports.PositionAssignment{
			UserID:   item.ID,
			Position: item.Position,
		})
	}

	if err := s.users.SetPositions(ctx, assignments); err != nil {
		return err
	}

	s.log.Info().Int("count", len(assignments)).Msg("roster reordered")
	return nil
}

package ports

import (
	"context"

	"github.com/tibtennis/roster-api/internal/core/domain"
)

// TeamRepository defines persistence for the team reference data.
type TeamRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Team, error)
	Insert(ctx context.Context, team *domain.Team) error
}

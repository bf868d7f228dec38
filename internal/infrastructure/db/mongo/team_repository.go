package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tibtennis/roster-api/internal/core/domain"
)

const teamsCollection = "teams"

// TeamRepository persists the team reference data. Teams keep their own
// string id in the "id" field; the Mongo _id stays internal.
type TeamRepository struct {
	coll *mongo.Collection
}

func NewTeamRepository(db *mongo.Database) *TeamRepository {
	return &TeamRepository{coll: db.Collection(teamsCollection)}
}

type mongoTeam struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	TeamID string             `bson:"id"`
	Name   string             `bson:"name"`
	Type   string             `bson:"type"`
}

func (r *TeamRepository) FindByID(ctx context.Context, id string) (*domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mt mongoTeam
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&mt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("find team: %w", err)
	}
	return &domain.Team{ID: mt.TeamID, Name: mt.Name, Type: mt.Type}, nil
}

func (r *TeamRepository) Insert(ctx context.Context, team *domain.Team) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, mongoTeam{TeamID: team.ID, Name: team.Name, Type: team.Type})
	if err != nil {
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tibtennis/roster-api/internal/core/domain"
	"github.com/tibtennis/roster-api/internal/core/ports"
)

const usersCollection = "users"

// UserRepository persists users (players and admins) in a single collection.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// mongoUser is the BSON document shape. The bcrypt hash lives in the
// "password" field for compatibility with existing data.
type mongoUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	TeamID    string             `bson:"team_id"`
	Role      string             `bson:"role"`
	Email     string             `bson:"email,omitempty"`
	Phone     string             `bson:"phone,omitempty"`
	Password  string             `bson:"password,omitempty"`
	Position  *int               `bson:"position,omitempty"`
	LastLogin *time.Time         `bson:"last_login,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (mu *mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:           mu.ID.Hex(),
		Name:         mu.Name,
		TeamID:       mu.TeamID,
		Role:         mu.Role,
		Email:        mu.Email,
		Phone:        mu.Phone,
		PasswordHash: mu.Password,
		Position:     mu.Position,
		LastLogin:    mu.LastLogin,
		CreatedAt:    mu.CreatedAt,
	}
}

// parseID converts an id from the API into an ObjectID. A malformed id is a
// caller error, not a lookup miss.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid user id", domain.ErrValidation)
	}
	return oid, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// FindByNameAndTeam looks up a user by display name within a team. No role
// filter: player login resolves whatever identity owns that name.
func (r *UserRepository) FindByNameAndTeam(ctx context.Context, name, teamID string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"name": name, "team_id": teamID})
}

func (r *UserRepository) FindAdmin(ctx context.Context, name, teamID string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"name": name, "team_id": teamID, "role": domain.RoleAdmin})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUser{
		Name:      user.Name,
		TeamID:    user.TeamID,
		Role:      user.Role,
		Email:     user.Email,
		Phone:     user.Phone,
		Password:  user.PasswordHash,
		Position:  user.Position,
		CreatedAt: user.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// ListPlayers returns all players of a team sorted by name. The caller
// applies the position ordering policy on top.
func (r *UserRepository) ListPlayers(ctx context.Context, teamID string) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx,
		bson.M{"team_id": teamID, "role": domain.RolePlayer},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer cursor.Close(ctx)

	players := make([]*domain.User, 0)
	for cursor.Next(ctx) {
		var mu mongoUser
		if err := cursor.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode player: %w", err)
		}
		players = append(players, mu.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

// UpdateProfile sets only the fields present in the update; nil fields keep
// their stored values. An update with no fields reduces to a lookup.
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, update ports.ProfileUpdate) (*domain.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if len(set) == 0 {
		return r.findOne(ctx, bson.M{"_id": oid})
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// SetPositions applies all position assignments in a single bulk write. Each
// update is atomic on its own, but the batch is not transactional: a failure
// part-way leaves earlier updates applied. No collision or contiguity check
// is performed on the supplied positions.
func (r *UserRepository) SetPositions(ctx context.Context, assignments []ports.PositionAssignment) error {
	models := make([]mongo.WriteModel, 0, len(assignments))
	for _, a := range assignments {
		oid, err := parseID(a.UserID)
		if err != nil {
			return err
		}
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": oid}).
			SetUpdate(bson.M{"$set": bson.M{"position": a.Position}}))
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.BulkWrite(ctx, models); err != nil {
		return fmt.Errorf("bulk set positions: %w", err)
	}
	return nil
}

func (r *UserRepository) SetLastLogin(ctx context.Context, id string, at time.Time) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err = r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"last_login": at}})
	if err != nil {
		return fmt.Errorf("set last_login: %w", err)
	}
	return nil
}

// EnsureIndexes creates the lookup indexes used by the login and list paths.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}, {Key: "team_id", Value: 1}}},
		{Keys: bson.D{{Key: "team_id", Value: 1}, {Key: "role", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

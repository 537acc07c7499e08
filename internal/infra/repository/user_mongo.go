package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BruksfildServices01/doctors-portal-api/internal/db"
	"github.com/BruksfildServices01/doctors-portal-api/internal/domain/auth"
	"github.com/BruksfildServices01/doctors-portal-api/internal/models"
)

type UserMongoRepository struct {
	users *mongo.Collection
}

func NewUserMongoRepository(database *mongo.Database) *UserMongoRepository {
	return &UserMongoRepository{
		users: database.Collection(db.CollectionUsers),
	}
}

func (r *UserMongoRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	err := r.users.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// UpsertUser creates or refreshes the user record keyed by email. The role is
// only set on first insert so a routine upsert can never undo an elevation.
func (r *UserMongoRepository) UpsertUser(
	ctx context.Context,
	email string,
	name string,
) (*models.User, error) {

	email = strings.ToLower(email)

	set := bson.M{
		"email":     email,
		"updatedAt": time.Now().UTC(),
	}
	if name != "" {
		set["name"] = name
	}

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"role": models.RolePatient},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user models.User
	if err := r.users.FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ElevateRole grants the admin role. Returns false when no user with that
// email exists; elevation never creates a user.
func (r *UserMongoRepository) ElevateRole(
	ctx context.Context,
	email string,
) (bool, error) {

	result, err := r.users.UpdateOne(
		ctx,
		bson.M{"email": strings.ToLower(email)},
		bson.M{"$set": bson.M{"role": models.RoleAdmin, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (r *UserMongoRepository) ListUsers(
	ctx context.Context,
) ([]models.User, error) {

	cursor, err := r.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Compile-time check
var _ auth.UserReader = (*UserMongoRepository)(nil)

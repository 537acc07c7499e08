package repository

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/BruksfildServices01/doctors-portal-api/internal/db"
	"github.com/BruksfildServices01/doctors-portal-api/internal/httperr"
	"github.com/BruksfildServices01/doctors-portal-api/internal/models"
)

type DoctorMongoRepository struct {
	doctors *mongo.Collection
}

func NewDoctorMongoRepository(database *mongo.Database) *DoctorMongoRepository {
	return &DoctorMongoRepository{
		doctors: database.Collection(db.CollectionDoctors),
	}
}

func (r *DoctorMongoRepository) ListDoctors(
	ctx context.Context,
) ([]models.Doctor, error) {

	cursor, err := r.doctors.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *DoctorMongoRepository) InsertDoctor(
	ctx context.Context,
	d *models.Doctor,
) error {

	d.Email = strings.ToLower(strings.TrimSpace(d.Email))
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}

	result, err := r.doctors.InsertOne(ctx, d)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return httperr.ErrBusiness("doctor_exists")
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		d.ID = oid
	}
	return nil
}

// DeleteDoctorByEmail returns false when no doctor with that email exists.
func (r *DoctorMongoRepository) DeleteDoctorByEmail(
	ctx context.Context,
	email string,
) (bool, error) {

	result, err := r.doctors.DeleteOne(ctx, bson.M{"email": strings.ToLower(email)})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

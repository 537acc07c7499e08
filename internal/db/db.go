package db

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BruksfildServices01/doctors-portal-api/internal/config"
)

const (
	CollectionServices  = "services"
	CollectionBookings  = "booking"
	CollectionUsers     = "users"
	CollectionDoctors   = "doctors"
	CollectionPayments  = "payments"
	CollectionAuditLogs = "audit_logs"
)

// NewDB connects to Mongo and aborts the process when the store is
// unreachable. Serving without storage is never acceptable.
func NewDB(cfg *config.Config) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("failed to connect to mongo: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping mongo: %v", err)
	}

	database := client.Database(cfg.MongoDB)

	if err := ensureIndexes(ctx, database); err != nil {
		log.Fatalf("failed to create indexes: %v", err)
	}

	return database
}

// ensureIndexes installs the constraints the core depends on. The unique
// compound index on the booking tuple is what makes check-and-insert atomic:
// two concurrent reserves for the same tuple cannot both succeed.
func ensureIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection(CollectionBookings).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "treatment", Value: 1},
			{Key: "date", Value: 1},
			{Key: "patient", Value: 1},
			{Key: "time", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_booking_tuple"),
	})
	if err != nil {
		return err
	}

	_, err = database.Collection(CollectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_user_email"),
	})
	if err != nil {
		return err
	}

	_, err = database.Collection(CollectionDoctors).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_doctor_email"),
	})
	return err
}

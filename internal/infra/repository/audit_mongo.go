package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BruksfildServices01/doctors-portal-api/internal/db"
	"github.com/BruksfildServices01/doctors-portal-api/internal/models"
)

type AuditLogMongoRepository struct {
	logs *mongo.Collection
}

func NewAuditLogMongoRepository(database *mongo.Database) *AuditLogMongoRepository {
	return &AuditLogMongoRepository{
		logs: database.Collection(db.CollectionAuditLogs),
	}
}

func (r *AuditLogMongoRepository) ListRecent(
	ctx context.Context,
	limit int64,
) ([]models.AuditLog, error) {

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.logs.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var logs []models.AuditLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

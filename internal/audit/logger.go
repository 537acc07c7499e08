package audit

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/BruksfildServices01/doctors-portal-api/internal/models"
)

type Logger struct {
	col *mongo.Collection
}

// Compile-time check
var _ Sink = (*Logger)(nil)

func New(col *mongo.Collection) *Logger {
	return &Logger{col: col}
}

func (l *Logger) Log(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	doc := models.AuditLog{
		Actor:     ev.Actor,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metaJSON,
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := l.col.InsertOne(ctx, doc)
	return err
}

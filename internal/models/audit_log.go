package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuditLog struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Actor    string `bson:"actor,omitempty" json:"actor,omitempty"`
	Action   string `bson:"action" json:"action"`
	Entity   string `bson:"entity" json:"entity"`
	EntityID string `bson:"entityId,omitempty" json:"entity_id,omitempty"`
	Metadata string `bson:"metadata,omitempty" json:"metadata,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}

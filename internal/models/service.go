package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is an immutable catalog entry. Slots are per-day time labels
// ("09:00"); they are not bound to a calendar date until booked.
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
	Slots []string           `bson:"slots" json:"slots"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is a derived log record of a confirmed charge. The booking document
// is the source of truth for paid state; this record may be rewritten
// independently.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookingID     primitive.ObjectID `bson:"bookingId" json:"booking_id"`
	TransactionID string             `bson:"transactionId" json:"transaction_id"`
	Amount        int64              `bson:"amount" json:"amount"`
	Currency      string             `bson:"currency" json:"currency"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}

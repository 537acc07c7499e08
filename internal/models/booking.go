package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking is identified by the (treatment, date, patient, time) tuple, which
// is immutable after creation. Only Paid and TransactionID change, and they
// change together.
type Booking struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Treatment string `bson:"treatment" json:"treatment"`
	Date      string `bson:"date" json:"date"`
	Patient   string `bson:"patient" json:"patient"`
	Time      string `bson:"time" json:"time"`

	PatientName string `bson:"patientName,omitempty" json:"patient_name,omitempty"`
	Phone       string `bson:"phone,omitempty" json:"phone,omitempty"`

	Paid          bool   `bson:"paid" json:"paid"`
	TransactionID string `bson:"transactionId,omitempty" json:"transaction_id,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}

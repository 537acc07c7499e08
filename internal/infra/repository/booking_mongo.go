package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BruksfildServices01/doctors-portal-api/internal/db"
	domain "github.com/BruksfildServices01/doctors-portal-api/internal/domain/booking"
	"github.com/BruksfildServices01/doctors-portal-api/internal/httperr"
	"github.com/BruksfildServices01/doctors-portal-api/internal/models"
)

type BookingMongoRepository struct {
	services *mongo.Collection
	bookings *mongo.Collection
	payments *mongo.Collection
}

func NewBookingMongoRepository(database *mongo.Database) *BookingMongoRepository {
	return &BookingMongoRepository{
		services: database.Collection(db.CollectionServices),
		bookings: database.Collection(db.CollectionBookings),
		payments: database.Collection(db.CollectionPayments),
	}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingMongoRepository) ListServices(
	ctx context.Context,
) ([]models.Service, error) {

	cursor, err := r.services.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingMongoRepository) FindBookingByTuple(
	ctx context.Context,
	key domain.TupleKey,
) (*models.Booking, error) {

	filter := bson.M{
		"treatment": key.Treatment,
		"date":      key.Date,
		"patient":   key.Patient,
		"time":      key.Time,
	}

	var b models.Booking
	if err := r.bookings.FindOne(ctx, filter).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// InsertBooking relies on the unique tuple index: a duplicate-key failure is
// reinterpreted as the booking_conflict outcome, which closes the
// check-then-act race between concurrent reserves.
func (r *BookingMongoRepository) InsertBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	result, err := r.bookings.InsertOne(ctx, b)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return httperr.ErrBusiness("booking_conflict")
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		b.ID = oid
	}
	return nil
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingMongoRepository) FindBookingByID(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_booking_id")
	}

	var b models.Booking
	if err := r.bookings.FindOne(ctx, bson.M{"_id": oid}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingMongoRepository) ListBookingsByDate(
	ctx context.Context,
	date string,
) ([]models.Booking, error) {

	cursor, err := r.bookings.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingMongoRepository) ListBookingsByPatient(
	ctx context.Context,
	email string,
) ([]models.Booking, error) {

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.bookings.Find(ctx, bson.M{"patient": email}, opts)
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Booking (payment state)
// --------------------------------------------------

// MarkBookingPaid flips the booking to paid in a single document mutation.
// The paid:false filter makes the transition happen at most once; a reader
// can never observe paid=true with a missing transaction id. The false
// return means no unpaid booking matched.
func (r *BookingMongoRepository) MarkBookingPaid(
	ctx context.Context,
	id string,
	transactionID string,
) (*models.Booking, bool, error) {

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, false, httperr.ErrBusiness("invalid_booking_id")
	}

	filter := bson.M{"_id": oid, "paid": false}
	update := bson.M{"$set": bson.M{
		"paid":          true,
		"transactionId": transactionID,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b models.Booking
	err = r.bookings.FindOneAndUpdate(ctx, filter, update, opts).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &b, true, nil
}

// --------------------------------------------------
// Payment log
// --------------------------------------------------

func (r *BookingMongoRepository) InsertPayment(
	ctx context.Context,
	p *models.Payment,
) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	_, err := r.payments.InsertOne(ctx, p)
	return err
}

// Compile-time check
var _ domain.Repository = (*BookingMongoRepository)(nil)

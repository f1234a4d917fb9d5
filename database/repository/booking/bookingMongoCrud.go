// File: database/repository/booking/bookingMongoCrud.go
package bookingRepo

import (
	"fmt"
	"time"

	"jobmate/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) findSorted(filter bson.M, limit int64) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// GetByCustomer returns a customer's bookings, newest first.
func (r *MongoBookingRepo) GetByCustomer(customerID string) ([]models.Booking, error) {
	return r.findSorted(bson.M{"customer_id": customerID}, 0)
}

// GetByEmployee returns an employee's bookings, newest first.
func (r *MongoBookingRepo) GetByEmployee(employeeID string) ([]models.Booking, error) {
	return r.findSorted(bson.M{"employee_id": employeeID}, 0)
}

// Latest returns the most recent bookings across all users.
func (r *MongoBookingRepo) Latest(limit int) ([]models.Booking, error) {
	return r.findSorted(bson.M{}, int64(limit))
}

// AddWorkProof attaches work-proof metadata to a booking.
func (r *MongoBookingRepo) AddWorkProof(proof *models.WorkProof) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	proof.CreatedAt = time.Now()
	if _, err := r.proofs.InsertOne(ctx, proof); err != nil {
		return fmt.Errorf("failed to add work proof: %w", err)
	}
	return nil
}

// GetWorkProofs returns a booking's work proofs, newest first.
func (r *MongoBookingRepo) GetWorkProofs(bookingID string) ([]models.WorkProof, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.proofs.Find(ctx, bson.M{"booking_id": bookingID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query work proofs: %w", err)
	}
	defer cursor.Close(ctx)

	var proofs []models.WorkProof
	if err := cursor.All(ctx, &proofs); err != nil {
		return nil, fmt.Errorf("failed to decode work proofs: %w", err)
	}
	return proofs, nil
}

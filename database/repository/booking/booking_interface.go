package bookingRepo

import (
	"errors"
	"time"

	"jobmate/models"
)

// ErrStatusConflict is returned when a transition's required current status
// no longer holds at write time. The booking is left unchanged.
var ErrStatusConflict = errors.New("booking status changed since it was read")

// CompletionEffects carries the aggregate-counter updates applied together
// with a transition into the completed status.
type CompletionEffects struct {
	EmployeeUserID string
	CustomerUserID string
	TotalCost      float64
}

// StatusCount pairs a booking status with the number of bookings in it.
type StatusCount struct {
	Status models.BookingStatus `bson:"_id"`
	Count  int64                `bson:"count"`
}

// FraudFlag marks a customer with an unusual number of cancelled or
// rejected bookings.
type FraudFlag struct {
	CustomerID string `bson:"_id"`
	Cancelled  int64  `bson:"cancelled"`
	Rejected   int64  `bson:"rejected"`
}

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetByCustomer returns a customer's bookings, newest first.
	GetByCustomer(customerID string) ([]models.Booking, error)
	// GetByEmployee returns an employee's bookings, newest first.
	GetByEmployee(employeeID string) ([]models.Booking, error)
	// Latest returns the most recent bookings across all users.
	Latest(limit int) ([]models.Booking, error)
	// ApplyTransition atomically moves a booking from the required status to
	// next. An empty required status skips the precondition. When effects is
	// non-nil, the employee and customer aggregates are updated in the same
	// transaction; none of the writes land if any step fails.
	ApplyTransition(id string, required, next models.BookingStatus, effects *CompletionEffects) error
	// AddWorkProof attaches work-proof metadata to a booking.
	AddWorkProof(proof *models.WorkProof) error
	// GetWorkProofs returns a booking's work proofs, newest first.
	GetWorkProofs(bookingID string) ([]models.WorkProof, error)

	// CountAll returns the total number of bookings.
	CountAll() (int64, error)
	// CountByStatus groups booking counts by status.
	CountByStatus() ([]StatusCount, error)
	// CountCreatedSince counts bookings created at or after the given time.
	CountCreatedSince(since time.Time) (int64, error)
	// CompletedRevenue sums total_cost over completed bookings.
	CompletedRevenue() (float64, error)
	// FraudFlags returns customers with at least threshold cancelled or
	// rejected bookings.
	FraudFlags(threshold int64) ([]FraudFlag, error)
}

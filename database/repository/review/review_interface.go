package reviewRepo

import (
	"errors"

	"jobmate/models"
)

// ErrDuplicateReview is returned when a booking already has a review.
var ErrDuplicateReview = errors.New("booking already reviewed")

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// Create inserts a new review. A second review for the same booking
	// fails with ErrDuplicateReview.
	Create(review *models.Review) error
	// GetByBookingID retrieves the review for a booking, or nil when none
	// exists.
	GetByBookingID(bookingID string) (*models.Review, error)
	// GetByEmployee returns all reviews for an employee, newest first.
	GetByEmployee(employeeID string) ([]models.Review, error)
	// AverageForEmployee returns the mean rating and review count for an
	// employee.
	AverageForEmployee(employeeID string) (float64, int64, error)
}

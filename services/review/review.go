package review

import (
	"errors"

	bookingRepo "jobmate/database/repository/booking"
	employeeRepo "jobmate/database/repository/employee"
	reviewRepo "jobmate/database/repository/review"
	userRepo "jobmate/database/repository/user"
	"jobmate/models"
	bookingSvc "jobmate/services/booking"
	"jobmate/services/notification"
	"jobmate/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateReviewInput is the customer-facing input for reviewing a booking.
type CreateReviewInput struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// ReviewService creates reviews and maintains the employee rating aggregate.
type ReviewService interface {
	// CreateReview stores a review for a completed booking and recomputes
	// the employee's average rating.
	CreateReview(actor *models.User, bookingID string, input CreateReviewInput) (*models.Review, error)
	// GetForBooking returns a booking's review, or nil when none exists.
	GetForBooking(bookingID string) (*models.Review, error)
	// ListForEmployee returns an employee's reviews, newest first.
	ListForEmployee(employeeID string) ([]models.Review, error)
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Repo         reviewRepo.ReviewRepository
	BookingRepo  bookingRepo.BookingRepository
	EmployeeRepo employeeRepo.EmployeeRepository
	UserRepo     userRepo.UserRepository
	Notifier     notification.NotificationService
}

// CreateReview validates that the booking is completed, unreviewed and being
// reviewed by its customer, then stores the review and recomputes the
// employee's rating aggregate.
func (svc *DefaultReviewService) CreateReview(actor *models.User, bookingID string, input CreateReviewInput) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, bookingSvc.NewInvalidInputError("rating must be between 1 and 5")
	}

	booking, err := svc.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, bookingSvc.NewNotFoundError("booking not found")
	}
	if actor.ID != booking.CustomerID {
		return nil, bookingSvc.NewPermissionError("only the customer can review")
	}
	if booking.Status != models.StatusCompleted {
		return nil, bookingSvc.NewConflictError("review", string(booking.Status))
	}

	rev := &models.Review{
		ID:         uuid.New().String(),
		BookingID:  booking.ID,
		ReviewerID: actor.ID,
		EmployeeID: booking.EmployeeID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := svc.Repo.Create(rev); err != nil {
		if errors.Is(err, reviewRepo.ErrDuplicateReview) {
			return nil, bookingSvc.NewConflictError("review", "already reviewed")
		}
		return nil, err
	}

	svc.recomputeRating(booking.EmployeeID)
	svc.notify(rev, booking)
	return rev, nil
}

// recomputeRating rewrites the employee's avg_rating from all stored
// reviews. Each run writes a full recomputation, so concurrent reviews
// cannot lose increments.
func (svc *DefaultReviewService) recomputeRating(employeeUserID string) {
	avg, count, err := svc.Repo.AverageForEmployee(employeeUserID)
	if err != nil {
		utils.GetLogger().Error("failed to aggregate ratings", zap.String("employee", employeeUserID), zap.Error(err))
		return
	}
	if count == 0 {
		return
	}
	if err := svc.EmployeeRepo.SetAvgRating(employeeUserID, avg); err != nil {
		utils.GetLogger().Error("failed to store rating aggregate", zap.String("employee", employeeUserID), zap.Error(err))
	}
}

func (svc *DefaultReviewService) notify(rev *models.Review, booking *models.Booking) {
	employee, err := svc.UserRepo.GetByID(booking.EmployeeID)
	if err != nil {
		utils.GetLogger().Warn("skipping review notification", zap.Error(err))
		return
	}
	svc.Notifier.ReviewCreated(rev, booking, employee)
}

// GetForBooking returns a booking's review, or nil when none exists.
func (svc *DefaultReviewService) GetForBooking(bookingID string) (*models.Review, error) {
	return svc.Repo.GetByBookingID(bookingID)
}

// ListForEmployee returns an employee's reviews, newest first.
func (svc *DefaultReviewService) ListForEmployee(employeeID string) ([]models.Review, error) {
	return svc.Repo.GetByEmployee(employeeID)
}

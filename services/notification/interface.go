package notification

import "jobmate/models"

// NotificationService dispatches best-effort notifications. Implementations
// must swallow delivery failures: notifications never fail the operation
// that triggered them.
type NotificationService interface {
	// BookingCreated notifies the employee of a new booking request.
	BookingCreated(booking *models.Booking, customer, employee *models.User)
	// BookingStatusChanged notifies both parties of a status change.
	BookingStatusChanged(booking *models.Booking, customer, employee *models.User)
	// ReviewCreated notifies the employee of a new review.
	ReviewCreated(review *models.Review, booking *models.Booking, employee *models.User)
}

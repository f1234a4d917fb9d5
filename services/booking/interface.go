package booking

import "jobmate/models"

// CreateBookingInput is the customer-facing input for creating a booking.
type CreateBookingInput struct {
	EmployeeID    string              `json:"employee_id" binding:"required"`
	Title         string              `json:"title" binding:"required"`
	Description   string              `json:"description"`
	SkillIDs      []string            `json:"skill_ids"`
	DurationType  models.DurationType `json:"duration_type" binding:"required"`
	DurationValue int                 `json:"duration_value" binding:"required"`
	StartDate     *string             `json:"start_date"`
	EndDate       *string             `json:"end_date"`
	Location      string              `json:"location"`
}

// WorkProofInput is the employee-facing input for attaching work proof.
type WorkProofInput struct {
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"image_url"`
}

// BookingService drives the booking lifecycle: creation with pricing, the
// status state machine, and work-proof attachments.
type BookingService interface {
	// CreateBooking prices and stores a new pending booking for the acting
	// customer.
	CreateBooking(actor *models.User, input CreateBookingInput) (*models.Booking, error)
	// GetBooking returns a booking if the actor is a party to it or an admin.
	GetBooking(actor *models.User, id string) (*models.Booking, error)
	// ListBookings returns the actor's bookings: customers see their own,
	// employees theirs, admins everything.
	ListBookings(actor *models.User) ([]models.Booking, error)
	// Transition applies a status action to a booking on behalf of the actor.
	Transition(actor *models.User, bookingID string, action Action) (*models.Booking, error)
	// AddWorkProof attaches progress evidence to an active booking.
	AddWorkProof(actor *models.User, bookingID string, input WorkProofInput) (*models.WorkProof, error)
	// GetWorkProofs lists a booking's work proofs for a party to it.
	GetWorkProofs(actor *models.User, bookingID string) ([]models.WorkProof, error)
}

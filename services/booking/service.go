package booking

import (
	"errors"
	"time"

	bookingRepo "jobmate/database/repository/booking"
	employeeRepo "jobmate/database/repository/employee"
	userRepo "jobmate/database/repository/user"
	"jobmate/models"
	"jobmate/services/notification"
	"jobmate/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	EmployeeRepo employeeRepo.EmployeeRepository
	UserRepo     userRepo.UserRepository
	Notifier     notification.NotificationService
}

// CreateBooking prices and stores a new pending booking. The cost is fixed
// here and never recomputed on later saves.
func (svc *DefaultBookingService) CreateBooking(actor *models.User, input CreateBookingInput) (*models.Booking, error) {
	if actor.Role != models.RoleCustomer {
		return nil, NewPermissionError("only customers can create bookings")
	}
	if input.DurationValue <= 0 {
		return nil, NewInvalidInputError("duration value must be positive")
	}

	employee, err := svc.UserRepo.GetByID(input.EmployeeID)
	if err != nil {
		return nil, NewNotFoundError("employee not found")
	}
	if employee.Role != models.RoleEmployee {
		return nil, NewInvalidInputError("selected user is not an employee")
	}
	profile, err := svc.EmployeeRepo.GetByUserID(employee.ID)
	if err != nil || profile == nil {
		return nil, NewNotFoundError("employee profile not found")
	}

	cost, rate := CalculateBookingCost(profile, input.DurationType, input.DurationValue)

	booking := &models.Booking{
		ID:            uuid.New().String(),
		CustomerID:    actor.ID,
		EmployeeID:    employee.ID,
		Title:         input.Title,
		Description:   input.Description,
		SkillIDs:      input.SkillIDs,
		DurationType:  input.DurationType,
		DurationValue: input.DurationValue,
		RateApplied:   rate,
		TotalCost:     cost,
		CostFinalized: true,
		Status:        models.StatusPending,
		Location:      input.Location,
	}
	if input.StartDate != nil {
		if start, err := time.Parse(dateLayout, *input.StartDate); err == nil {
			booking.StartDate = &start
		}
	}
	if input.EndDate != nil {
		if end, err := time.Parse(dateLayout, *input.EndDate); err == nil {
			booking.EndDate = &end
		}
	}

	if err := svc.Repo.Create(booking); err != nil {
		return nil, err
	}

	svc.Notifier.BookingCreated(booking, actor, employee)
	return booking, nil
}

// GetBooking returns a booking if the actor is a party to it or an admin.
func (svc *DefaultBookingService) GetBooking(actor *models.User, id string) (*models.Booking, error) {
	booking, err := svc.Repo.GetByID(id)
	if err != nil {
		return nil, NewNotFoundError("booking not found")
	}
	if actor.ID != booking.CustomerID && actor.ID != booking.EmployeeID && actor.Role != models.RoleAdmin {
		return nil, NewPermissionError("you are not a party to this booking")
	}
	return booking, nil
}

// ListBookings returns the actor's bookings scoped by role.
func (svc *DefaultBookingService) ListBookings(actor *models.User) ([]models.Booking, error) {
	switch actor.Role {
	case models.RoleCustomer:
		return svc.Repo.GetByCustomer(actor.ID)
	case models.RoleEmployee:
		return svc.Repo.GetByEmployee(actor.ID)
	case models.RoleAdmin:
		return svc.Repo.Latest(0)
	}
	return nil, NewPermissionError("unknown role")
}

// Transition applies a status action to a booking on behalf of the actor.
// Permission and precondition checks run before any state is touched; the
// status write and completion side effects commit atomically or not at all.
func (svc *DefaultBookingService) Transition(actor *models.User, bookingID string, action Action) (*models.Booking, error) {
	rule, err := ruleFor(action)
	if err != nil {
		return nil, err
	}

	booking, err := svc.Repo.GetByID(bookingID)
	if err != nil {
		return nil, NewNotFoundError("booking not found")
	}

	if err := checkActor(rule, action, booking, actor); err != nil {
		return nil, err
	}
	if rule.required != "" && booking.Status != rule.required {
		return nil, NewConflictError(string(action), string(booking.Status))
	}

	var effects *bookingRepo.CompletionEffects
	if rule.next == models.StatusCompleted {
		effects = &bookingRepo.CompletionEffects{
			EmployeeUserID: booking.EmployeeID,
			CustomerUserID: booking.CustomerID,
			TotalCost:      booking.TotalCost,
		}
	}

	if err := svc.Repo.ApplyTransition(booking.ID, rule.required, rule.next, effects); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			// Lost the race to another transition; the precondition no
			// longer holds.
			return nil, NewConflictError(string(action), string(booking.Status))
		}
		return nil, err
	}
	booking.Status = rule.next

	svc.notifyStatusChange(booking)
	return booking, nil
}

// notifyStatusChange dispatches the best-effort status email to both
// parties. Lookup failures only cost the notification.
func (svc *DefaultBookingService) notifyStatusChange(booking *models.Booking) {
	customer, err := svc.UserRepo.GetByID(booking.CustomerID)
	if err != nil {
		utils.GetLogger().Warn("skipping status notification", zap.Error(err))
		return
	}
	employee, err := svc.UserRepo.GetByID(booking.EmployeeID)
	if err != nil {
		utils.GetLogger().Warn("skipping status notification", zap.Error(err))
		return
	}
	svc.Notifier.BookingStatusChanged(booking, customer, employee)
}

// AddWorkProof attaches progress evidence to an active booking.
func (svc *DefaultBookingService) AddWorkProof(actor *models.User, bookingID string, input WorkProofInput) (*models.WorkProof, error) {
	booking, err := svc.Repo.GetByID(bookingID)
	if err != nil {
		return nil, NewNotFoundError("booking not found")
	}
	if actor.ID != booking.EmployeeID {
		return nil, NewPermissionError("only the assigned employee can upload work proof")
	}
	if booking.Status != models.StatusAccepted && booking.Status != models.StatusInProgress {
		return nil, NewConflictError("add work proof to", string(booking.Status))
	}

	proof := &models.WorkProof{
		ID:          uuid.New().String(),
		BookingID:   booking.ID,
		UploaderID:  actor.ID,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}
	if err := svc.Repo.AddWorkProof(proof); err != nil {
		return nil, err
	}
	return proof, nil
}

// GetWorkProofs lists a booking's work proofs for a party to it.
func (svc *DefaultBookingService) GetWorkProofs(actor *models.User, bookingID string) ([]models.WorkProof, error) {
	booking, err := svc.GetBooking(actor, bookingID)
	if err != nil {
		return nil, err
	}
	return svc.Repo.GetWorkProofs(booking.ID)
}

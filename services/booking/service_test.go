package booking

import (
	"errors"
	"testing"
	"time"

	bookingRepo "jobmate/database/repository/booking"
	"jobmate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeBookingRepo keeps bookings in memory and records transition calls.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	proofs   []models.WorkProof

	transitionCalls int
	gotRequired     models.BookingStatus
	gotNext         models.BookingStatus
	gotEffects      *bookingRepo.CompletionEffects
	transitionErr   error
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: map[string]*models.Booking{}}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, errors.New("not found")
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetByCustomer(customerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByEmployee(employeeID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.EmployeeID == employeeID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Latest(int) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingRepo) ApplyTransition(id string, required, next models.BookingStatus, effects *bookingRepo.CompletionEffects) error {
	f.transitionCalls++
	f.gotRequired = required
	f.gotNext = next
	f.gotEffects = effects
	if f.transitionErr != nil {
		return f.transitionErr
	}
	b, ok := f.bookings[id]
	if !ok {
		return errors.New("not found")
	}
	if required != "" && b.Status != required {
		return bookingRepo.ErrStatusConflict
	}
	b.Status = next
	return nil
}

func (f *fakeBookingRepo) AddWorkProof(proof *models.WorkProof) error {
	f.proofs = append(f.proofs, *proof)
	return nil
}

func (f *fakeBookingRepo) GetWorkProofs(bookingID string) ([]models.WorkProof, error) {
	var out []models.WorkProof
	for _, p := range f.proofs {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountAll() (int64, error) { return int64(len(f.bookings)), nil }
func (f *fakeBookingRepo) CountByStatus() ([]bookingRepo.StatusCount, error) { return nil, nil }
func (f *fakeBookingRepo) CountCreatedSince(time.Time) (int64, error) { return 0, nil }
func (f *fakeBookingRepo) CompletedRevenue() (float64, error) { return 0, nil }
func (f *fakeBookingRepo) FraudFlags(int64) ([]bookingRepo.FraudFlag, error) { return nil, nil }

// fakeUserRepo serves a fixed set of users by ID.
type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) Create(*models.User) error { return nil }
func (f *fakeUserRepo) Update(*models.User) error { return nil }
func (f *fakeUserRepo) Delete(string) error { return nil }
func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}
func (f *fakeUserRepo) GetByEmail(string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByUsername(string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) Count() (int64, error) { return 0, nil }
func (f *fakeUserRepo) CountByRole(models.Role) (int64, error) { return 0, nil }

// fakeProfileRepo serves one employee profile for every user ID.
type fakeProfileRepo struct {
	profile *models.EmployeeProfile
}

func (f *fakeProfileRepo) Create(*models.EmployeeProfile) error { return nil }
func (f *fakeProfileRepo) Update(*models.EmployeeProfile) error { return nil }
func (f *fakeProfileRepo) Delete(string) error { return nil }
func (f *fakeProfileRepo) GetByID(string) (*models.EmployeeProfile, error) {
	return f.profile, nil
}
func (f *fakeProfileRepo) GetByUserID(string) (*models.EmployeeProfile, error) {
	return f.profile, nil
}
func (f *fakeProfileRepo) GetByAvailability(models.Availability) ([]models.EmployeeProfile, error) {
	return nil, nil
}
func (f *fakeProfileRepo) TopRatedAvailable(int) ([]models.EmployeeProfile, error) {
	return nil, nil
}
func (f *fakeProfileRepo) Search([]string) ([]models.EmployeeProfile, error) { return nil, nil }
func (f *fakeProfileRepo) Unverified() ([]models.EmployeeProfile, error) { return nil, nil }
func (f *fakeProfileRepo) CountUnverified() (int64, error) { return 0, nil }
func (f *fakeProfileRepo) SetVerified(string) error { return nil }
func (f *fakeProfileRepo) SetAvgRating(string, float64) error { return nil }
func (f *fakeProfileRepo) UpdateSetDocument(string, bson.M) error { return nil }

// fakeNotifier counts dispatched notifications.
type fakeNotifier struct {
	created       int
	statusChanged int
	reviewed      int
}

func (f *fakeNotifier) BookingCreated(*models.Booking, *models.User, *models.User) { f.created++ }
func (f *fakeNotifier) BookingStatusChanged(*models.Booking, *models.User, *models.User) {
	f.statusChanged++
}
func (f *fakeNotifier) ReviewCreated(*models.Review, *models.Booking, *models.User) { f.reviewed++ }

func testActors() (customer, employee *models.User) {
	customer = &models.User{ID: "cust-1", Role: models.RoleCustomer, Email: "c@example.com"}
	employee = &models.User{ID: "emp-1", Role: models.RoleEmployee, Email: "e@example.com"}
	return customer, employee
}

func newService(repo *fakeBookingRepo, users *fakeUserRepo, notifier *fakeNotifier) *DefaultBookingService {
	return &DefaultBookingService{
		Repo: repo,
		EmployeeRepo: &fakeProfileRepo{profile: &models.EmployeeProfile{
			ID:         "prof-1",
			UserID:     "emp-1",
			HourlyRate: 25,
		}},
		UserRepo: users,
		Notifier: notifier,
	}
}

func TestCreateBooking(t *testing.T) {
	customer, employee := testActors()
	users := &fakeUserRepo{users: map[string]*models.User{
		customer.ID: customer,
		employee.ID: employee,
	}}

	t.Run("prices and stores a pending booking", func(t *testing.T) {
		repo := newFakeBookingRepo()
		notifier := &fakeNotifier{}
		svc := newService(repo, users, notifier)

		booking, err := svc.CreateBooking(customer, CreateBookingInput{
			EmployeeID:    employee.ID,
			Title:         "Fix kitchen sink",
			DurationType:  models.DurationHourly,
			DurationValue: 4,
		})
		require.NoError(t, err)

		assert.Equal(t, models.StatusPending, booking.Status)
		assert.Equal(t, 100.0, booking.TotalCost)
		assert.Equal(t, 25.0, booking.RateApplied)
		assert.True(t, booking.CostFinalized)
		assert.Equal(t, customer.ID, booking.CustomerID)
		assert.Equal(t, employee.ID, booking.EmployeeID)
		assert.Equal(t, 1, notifier.created)
		assert.Contains(t, repo.bookings, booking.ID)
	})

	t.Run("only customers may create", func(t *testing.T) {
		svc := newService(newFakeBookingRepo(), users, &fakeNotifier{})
		_, err := svc.CreateBooking(employee, CreateBookingInput{
			EmployeeID:    employee.ID,
			Title:         "x",
			DurationType:  models.DurationHourly,
			DurationValue: 1,
		})
		assert.Equal(t, CodePermission, CodeOf(err))
	})

	t.Run("rejects non-positive duration", func(t *testing.T) {
		svc := newService(newFakeBookingRepo(), users, &fakeNotifier{})
		_, err := svc.CreateBooking(customer, CreateBookingInput{
			EmployeeID:   employee.ID,
			Title:        "x",
			DurationType: models.DurationHourly,
		})
		assert.Equal(t, CodeInvalidInput, CodeOf(err))
	})

	t.Run("rejects booking a non-employee", func(t *testing.T) {
		svc := newService(newFakeBookingRepo(), users, &fakeNotifier{})
		_, err := svc.CreateBooking(customer, CreateBookingInput{
			EmployeeID:    customer.ID,
			Title:         "x",
			DurationType:  models.DurationHourly,
			DurationValue: 1,
		})
		assert.Equal(t, CodeInvalidInput, CodeOf(err))
	})
}

func TestTransition(t *testing.T) {
	customer, employee := testActors()
	users := &fakeUserRepo{users: map[string]*models.User{
		customer.ID: customer,
		employee.ID: employee,
	}}

	pendingBooking := func() *models.Booking {
		return &models.Booking{
			ID:         "bk-1",
			CustomerID: customer.ID,
			EmployeeID: employee.ID,
			Status:     models.StatusPending,
			TotalCost:  100,
		}
	}

	t.Run("employee accepts a pending booking", func(t *testing.T) {
		repo := newFakeBookingRepo(pendingBooking())
		notifier := &fakeNotifier{}
		svc := newService(repo, users, notifier)

		booking, err := svc.Transition(employee, "bk-1", ActionAccept)
		require.NoError(t, err)
		assert.Equal(t, models.StatusAccepted, booking.Status)
		assert.Equal(t, models.StatusPending, repo.gotRequired)
		assert.Nil(t, repo.gotEffects)
		assert.Equal(t, 1, notifier.statusChanged)
	})

	t.Run("accepting an accepted booking conflicts without touching state", func(t *testing.T) {
		b := pendingBooking()
		b.Status = models.StatusAccepted
		repo := newFakeBookingRepo(b)
		svc := newService(repo, users, &fakeNotifier{})

		_, err := svc.Transition(employee, "bk-1", ActionAccept)
		assert.Equal(t, CodeConflict, CodeOf(err))
		assert.Zero(t, repo.transitionCalls)
		assert.Equal(t, models.StatusAccepted, repo.bookings["bk-1"].Status)
	})

	t.Run("unknown action is rejected before any lookup", func(t *testing.T) {
		repo := newFakeBookingRepo(pendingBooking())
		svc := newService(repo, users, &fakeNotifier{})

		_, err := svc.Transition(employee, "bk-1", Action("approve"))
		assert.Equal(t, CodeInvalidAction, CodeOf(err))
		assert.Zero(t, repo.transitionCalls)
	})

	t.Run("customer may not accept", func(t *testing.T) {
		repo := newFakeBookingRepo(pendingBooking())
		svc := newService(repo, users, &fakeNotifier{})

		_, err := svc.Transition(customer, "bk-1", ActionAccept)
		assert.Equal(t, CodePermission, CodeOf(err))
		assert.Zero(t, repo.transitionCalls)
	})

	t.Run("customer may cancel from any status", func(t *testing.T) {
		b := pendingBooking()
		b.Status = models.StatusAccepted
		repo := newFakeBookingRepo(b)
		svc := newService(repo, users, &fakeNotifier{})

		booking, err := svc.Transition(customer, "bk-1", ActionCancel)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCancelled, booking.Status)
	})

	t.Run("completion carries the aggregate effects", func(t *testing.T) {
		b := pendingBooking()
		b.Status = models.StatusInProgress
		repo := newFakeBookingRepo(b)
		notifier := &fakeNotifier{}
		svc := newService(repo, users, notifier)

		booking, err := svc.Transition(employee, "bk-1", ActionComplete)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, booking.Status)
		require.NotNil(t, repo.gotEffects)
		assert.Equal(t, employee.ID, repo.gotEffects.EmployeeUserID)
		assert.Equal(t, customer.ID, repo.gotEffects.CustomerUserID)
		assert.Equal(t, 100.0, repo.gotEffects.TotalCost)
		assert.Equal(t, 1, repo.transitionCalls)
	})

	t.Run("write-time status race surfaces as conflict", func(t *testing.T) {
		repo := newFakeBookingRepo(pendingBooking())
		repo.transitionErr = bookingRepo.ErrStatusConflict
		svc := newService(repo, users, &fakeNotifier{})

		_, err := svc.Transition(employee, "bk-1", ActionAccept)
		assert.Equal(t, CodeConflict, CodeOf(err))
	})
}

func TestWorkProofs(t *testing.T) {
	customer, employee := testActors()
	users := &fakeUserRepo{users: map[string]*models.User{
		customer.ID: customer,
		employee.ID: employee,
	}}

	activeBooking := func(status models.BookingStatus) *models.Booking {
		return &models.Booking{
			ID:         "bk-1",
			CustomerID: customer.ID,
			EmployeeID: employee.ID,
			Status:     status,
		}
	}

	t.Run("employee attaches proof to an active booking", func(t *testing.T) {
		repo := newFakeBookingRepo(activeBooking(models.StatusInProgress))
		svc := newService(repo, users, &fakeNotifier{})

		proof, err := svc.AddWorkProof(employee, "bk-1", WorkProofInput{Description: "before photo"})
		require.NoError(t, err)
		assert.Equal(t, "bk-1", proof.BookingID)
		assert.Equal(t, employee.ID, proof.UploaderID)

		proofs, err := svc.GetWorkProofs(customer, "bk-1")
		require.NoError(t, err)
		assert.Len(t, proofs, 1)
	})

	t.Run("customer may not attach proof", func(t *testing.T) {
		repo := newFakeBookingRepo(activeBooking(models.StatusInProgress))
		svc := newService(repo, users, &fakeNotifier{})

		_, err := svc.AddWorkProof(customer, "bk-1", WorkProofInput{Description: "x"})
		assert.Equal(t, CodePermission, CodeOf(err))
	})

	t.Run("proof requires an active booking", func(t *testing.T) {
		repo := newFakeBookingRepo(activeBooking(models.StatusPending))
		svc := newService(repo, users, &fakeNotifier{})

		_, err := svc.AddWorkProof(employee, "bk-1", WorkProofInput{Description: "x"})
		assert.Equal(t, CodeConflict, CodeOf(err))
	})

	t.Run("strangers may not list proofs", func(t *testing.T) {
		repo := newFakeBookingRepo(activeBooking(models.StatusInProgress))
		svc := newService(repo, users, &fakeNotifier{})

		stranger := &models.User{ID: "other", Role: models.RoleCustomer}
		_, err := svc.GetWorkProofs(stranger, "bk-1")
		assert.Equal(t, CodePermission, CodeOf(err))
	})
}

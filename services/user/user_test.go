package user

import (
	"testing"

	"jobmate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// memUserRepo keeps accounts in memory, indexed by email and username.
type memUserRepo struct {
	byID       map[string]*models.User
	byEmail    map[string]*models.User
	byUsername map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byID:       map[string]*models.User{},
		byEmail:    map[string]*models.User{},
		byUsername: map[string]*models.User{},
	}
}

func (m *memUserRepo) Create(u *models.User) error {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	m.byUsername[u.Username] = u
	return nil
}
func (m *memUserRepo) Update(*models.User) error { return nil }
func (m *memUserRepo) Delete(string) error       { return nil }
func (m *memUserRepo) GetByID(id string) (*models.User, error) {
	return m.byID[id], nil
}
func (m *memUserRepo) GetByEmail(email string) (*models.User, error) {
	return m.byEmail[email], nil
}
func (m *memUserRepo) GetByUsername(username string) (*models.User, error) {
	return m.byUsername[username], nil
}
func (m *memUserRepo) Count() (int64, error)                  { return int64(len(m.byID)), nil }
func (m *memUserRepo) CountByRole(models.Role) (int64, error) { return 0, nil }

// memEmployeeRepo records created employee profiles and patch documents.
type memEmployeeRepo struct {
	created []*models.EmployeeProfile
	patched bson.M
}

func (m *memEmployeeRepo) Create(p *models.EmployeeProfile) error {
	m.created = append(m.created, p)
	return nil
}
func (m *memEmployeeRepo) Update(*models.EmployeeProfile) error { return nil }
func (m *memEmployeeRepo) Delete(string) error                  { return nil }
func (m *memEmployeeRepo) GetByID(id string) (*models.EmployeeProfile, error) {
	for _, p := range m.created {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (m *memEmployeeRepo) GetByUserID(userID string) (*models.EmployeeProfile, error) {
	for _, p := range m.created {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}
func (m *memEmployeeRepo) GetByAvailability(models.Availability) ([]models.EmployeeProfile, error) {
	return nil, nil
}
func (m *memEmployeeRepo) TopRatedAvailable(int) ([]models.EmployeeProfile, error) {
	return nil, nil
}
func (m *memEmployeeRepo) Search([]string) ([]models.EmployeeProfile, error) { return nil, nil }
func (m *memEmployeeRepo) Unverified() ([]models.EmployeeProfile, error)     { return nil, nil }
func (m *memEmployeeRepo) CountUnverified() (int64, error)                   { return 0, nil }
func (m *memEmployeeRepo) SetVerified(string) error                          { return nil }
func (m *memEmployeeRepo) SetAvgRating(string, float64) error                { return nil }
func (m *memEmployeeRepo) UpdateSetDocument(id string, doc bson.M) error {
	m.patched = doc
	return nil
}

// memCustomerRepo records created customer profiles.
type memCustomerRepo struct {
	created []*models.CustomerProfile
}

func (m *memCustomerRepo) Create(p *models.CustomerProfile) error {
	m.created = append(m.created, p)
	return nil
}
func (m *memCustomerRepo) GetByUserID(string) (*models.CustomerProfile, error) {
	return nil, nil
}
func (m *memCustomerRepo) Update(*models.CustomerProfile) error { return nil }

func newUserService() (*DefaultUserService, *memUserRepo, *memEmployeeRepo, *memCustomerRepo) {
	users := newMemUserRepo()
	employees := &memEmployeeRepo{}
	customers := &memCustomerRepo{}
	svc := &DefaultUserService{
		Repo:         users,
		EmployeeRepo: employees,
		CustomerRepo: customers,
	}
	return svc, users, employees, customers
}

func TestRegister(t *testing.T) {
	input := RegistrationInput{
		Username: "jane",
		Email:    "jane@example.com",
		Password: "s3cretpass",
		Role:     models.RoleEmployee,
	}

	t.Run("creates the account and its employee profile", func(t *testing.T) {
		svc, users, employees, _ := newUserService()

		result, err := svc.Register(input)
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, models.RoleEmployee, result.User.Role)
		assert.NotEqual(t, "s3cretpass", result.User.PasswordHash)

		require.Len(t, employees.created, 1)
		assert.Equal(t, result.User.ID, employees.created[0].UserID)
		assert.Equal(t, models.AvailabilityAvailable, employees.created[0].Availability)

		stored, err := users.GetByEmail(input.Email)
		require.NoError(t, err)
		assert.NotNil(t, stored)
	})

	t.Run("customer role creates a customer profile", func(t *testing.T) {
		svc, _, employees, customers := newUserService()

		custInput := input
		custInput.Username = "joe"
		custInput.Email = "joe@example.com"
		custInput.Role = models.RoleCustomer

		_, err := svc.Register(custInput)
		require.NoError(t, err)
		assert.Len(t, customers.created, 1)
		assert.Empty(t, employees.created)
	})

	t.Run("rejects admin self-registration", func(t *testing.T) {
		svc, _, _, _ := newUserService()
		bad := input
		bad.Role = models.RoleAdmin
		_, err := svc.Register(bad)
		assert.Error(t, err)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		svc, _, _, _ := newUserService()
		_, err := svc.Register(input)
		require.NoError(t, err)

		dup := input
		dup.Username = "other"
		_, err = svc.Register(dup)
		assert.Error(t, err)
	})
}

func TestAuthenticate(t *testing.T) {
	svc, _, _, _ := newUserService()
	_, err := svc.Register(RegistrationInput{
		Username: "jane",
		Email:    "jane@example.com",
		Password: "s3cretpass",
		Role:     models.RoleCustomer,
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		result, err := svc.Authenticate("jane@example.com", "s3cretpass")
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate("jane@example.com", "wrong")
		assert.Error(t, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate("nobody@example.com", "s3cretpass")
		assert.Error(t, err)
	})
}

func TestUpdateEmployeeProfile(t *testing.T) {
	svc, _, employees, _ := newUserService()
	result, err := svc.Register(RegistrationInput{
		Username: "jane",
		Email:    "jane@example.com",
		Password: "s3cretpass",
		Role:     models.RoleEmployee,
	})
	require.NoError(t, err)

	rate := 45.0
	bio := "certified electrician"
	_, err = svc.UpdateEmployeeProfile(result.User, EmployeeProfileInput{
		Bio:        &bio,
		HourlyRate: &rate,
	})
	require.NoError(t, err)

	assert.Equal(t, bson.M{"bio": bio, "hourly_rate": rate}, employees.patched)

	t.Run("customers have no employee profile", func(t *testing.T) {
		customer := &models.User{ID: "c1", Role: models.RoleCustomer}
		_, err := svc.UpdateEmployeeProfile(customer, EmployeeProfileInput{Bio: &bio})
		assert.Error(t, err)
	})
}

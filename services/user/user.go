package user

import (
	"fmt"
	"time"

	customerRepo "jobmate/database/repository/customer"
	employeeRepo "jobmate/database/repository/employee"
	userRepo "jobmate/database/repository/user"
	"jobmate/models"
	"jobmate/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo         userRepo.UserRepository
	EmployeeRepo employeeRepo.EmployeeRepository
	CustomerRepo customerRepo.CustomerRepository
}

// Register creates an account plus its role-matching profile and signs the
// caller in.
func (svc *DefaultUserService) Register(input RegistrationInput) (*AuthResult, error) {
	if !input.Role.Valid() || input.Role == models.RoleAdmin {
		return nil, fmt.Errorf("invalid role %q", input.Role)
	}

	if existing, err := svc.Repo.GetByEmail(input.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("email %s is already registered", input.Email)
	}
	if existing, err := svc.Repo.GetByUsername(input.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("username %s is already taken", input.Username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.User{
		ID:           uuid.New().String(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		City:         input.City,
	}
	if err := svc.Repo.Create(account); err != nil {
		return nil, err
	}

	// Create the matching profile.
	switch account.Role {
	case models.RoleEmployee:
		profile := &models.EmployeeProfile{
			ID:           uuid.New().String(),
			UserID:       account.ID,
			SkillIDs:     []string{},
			Availability: models.AvailabilityAvailable,
		}
		if err := svc.EmployeeRepo.Create(profile); err != nil {
			return nil, err
		}
	case models.RoleCustomer:
		profile := &models.CustomerProfile{
			ID:     uuid.New().String(),
			UserID: account.ID,
		}
		if err := svc.CustomerRepo.Create(profile); err != nil {
			return nil, err
		}
	}

	token, err := utils.GenerateToken(account.ID, string(account.Role), tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResult{Token: token, User: account}, nil
}

// Authenticate verifies credentials and issues a token.
func (svc *DefaultUserService) Authenticate(email, password string) (*AuthResult, error) {
	account, err := svc.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(account.ID, string(account.Role), tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResult{Token: token, User: account}, nil
}

// GetUserByID fetches an account by its ID.
func (svc *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	return svc.Repo.GetByID(id)
}

// UpdateEmployeeProfile patches the acting employee's profile fields.
func (svc *DefaultUserService) UpdateEmployeeProfile(actor *models.User, input EmployeeProfileInput) (*models.EmployeeProfile, error) {
	if actor.Role != models.RoleEmployee {
		return nil, fmt.Errorf("only employees have an employee profile")
	}
	profile, err := svc.EmployeeRepo.GetByUserID(actor.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("employee profile for user %s not found", actor.ID)
	}

	updateDoc := bson.M{}
	if input.Bio != nil {
		updateDoc["bio"] = *input.Bio
	}
	if input.SkillIDs != nil {
		updateDoc["skill_ids"] = *input.SkillIDs
	}
	if input.HourlyRate != nil {
		updateDoc["hourly_rate"] = *input.HourlyRate
	}
	if input.DailyRate != nil {
		updateDoc["daily_rate"] = *input.DailyRate
	}
	if input.MonthlyRate != nil {
		updateDoc["monthly_rate"] = *input.MonthlyRate
	}
	if input.Availability != nil {
		updateDoc["availability"] = *input.Availability
	}
	if input.ExperienceYears != nil {
		updateDoc["experience_years"] = *input.ExperienceYears
	}
	if input.Latitude != nil {
		updateDoc["latitude"] = *input.Latitude
	}
	if input.Longitude != nil {
		updateDoc["longitude"] = *input.Longitude
	}
	if len(updateDoc) > 0 {
		if err := svc.EmployeeRepo.UpdateSetDocument(profile.ID, updateDoc); err != nil {
			return nil, err
		}
	}
	return svc.EmployeeRepo.GetByID(profile.ID)
}

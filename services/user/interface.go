package user

import "jobmate/models"

// RegistrationInput is the signup payload. Role selects which profile
// document is created alongside the account.
type RegistrationInput struct {
	Username  string      `json:"username" binding:"required"`
	Email     string      `json:"email" binding:"required,email"`
	Password  string      `json:"password" binding:"required,min=8"`
	Role      models.Role `json:"role" binding:"required"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Phone     string      `json:"phone"`
	City      string      `json:"city"`
}

// AuthResult carries the signed token and account after authentication.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UserService manages accounts and their role profiles.
type UserService interface {
	// Register creates an account plus its employee or customer profile.
	Register(input RegistrationInput) (*AuthResult, error)
	// Authenticate verifies credentials and issues a token.
	Authenticate(email, password string) (*AuthResult, error)
	// GetUserByID fetches an account by its ID.
	GetUserByID(id string) (*models.User, error)
	// UpdateEmployeeProfile patches the acting employee's profile fields.
	UpdateEmployeeProfile(actor *models.User, input EmployeeProfileInput) (*models.EmployeeProfile, error)
}

// EmployeeProfileInput carries employee profile updates. Nil fields are
// left untouched.
type EmployeeProfileInput struct {
	Bio             *string              `json:"bio"`
	SkillIDs        *[]string            `json:"skill_ids"`
	HourlyRate      *float64             `json:"hourly_rate"`
	DailyRate       *float64             `json:"daily_rate"`
	MonthlyRate     *float64             `json:"monthly_rate"`
	Availability    *models.Availability `json:"availability"`
	ExperienceYears *int                 `json:"experience_years"`
	Latitude        *float64             `json:"latitude"`
	Longitude       *float64             `json:"longitude"`
}

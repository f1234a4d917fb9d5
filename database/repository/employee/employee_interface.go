package employeeRepo

import (
	"jobmate/models"

	"go.mongodb.org/mongo-driver/bson"
)

// EmployeeRepository defines methods for employee profile data access.
type EmployeeRepository interface {
	// Create inserts a new employee profile.
	Create(profile *models.EmployeeProfile) error
	// Update modifies an existing employee profile.
	Update(profile *models.EmployeeProfile) error
	// Delete removes an employee profile by its ID.
	Delete(id string) error
	// GetByID retrieves a profile by its unique ID.
	GetByID(id string) (*models.EmployeeProfile, error)
	// GetByUserID retrieves the profile owned by the given user account.
	GetByUserID(userID string) (*models.EmployeeProfile, error)
	// GetByAvailability returns profiles in the given availability state,
	// with the owning user populated.
	GetByAvailability(availability models.Availability) ([]models.EmployeeProfile, error)
	// TopRatedAvailable returns available profiles ordered by rating.
	TopRatedAvailable(limit int) ([]models.EmployeeProfile, error)
	// Search returns available profiles matching any of the given query
	// tokens against skill name, bio, city, first/last name or username.
	Search(tokens []string) ([]models.EmployeeProfile, error)
	// Unverified returns profiles pending admin verification.
	Unverified() ([]models.EmployeeProfile, error)
	// CountUnverified returns the number of profiles pending verification.
	CountUnverified() (int64, error)
	// SetVerified marks a profile as verified.
	SetVerified(id string) error
	// SetAvgRating writes the recomputed rating aggregate for the profile
	// owned by the given user.
	SetAvgRating(userID string, avg float64) error
	// UpdateSetDocument patches a profile document with the given fields.
	UpdateSetDocument(id string, updateDoc bson.M) error
}

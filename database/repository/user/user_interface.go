package userRepo

import "jobmate/models"

// UserRepository defines methods for account data access.
type UserRepository interface {
	// Create inserts a new user document.
	Create(user *models.User) error
	// Update modifies an existing user document.
	Update(user *models.User) error
	// Delete removes a user document by its ID.
	Delete(id string) error
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by email, or nil when none exists.
	GetByEmail(email string) (*models.User, error)
	// GetByUsername retrieves a user by username, or nil when none exists.
	GetByUsername(username string) (*models.User, error)
	// Count returns the total number of users.
	Count() (int64, error)
	// CountByRole returns the number of users holding the given role.
	CountByRole(role models.Role) (int64, error)
}

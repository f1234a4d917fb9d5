package models

import "time"

// Availability is an employee's current bookable state. It filters both
// ranking and search candidates.
type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityBusy      Availability = "busy"
	AvailabilityOffline   Availability = "offline"
)

// EmployeeProfile is the extended profile for employee accounts: skills,
// rates, availability and the rating/job aggregates maintained by the
// booking and review services.
type EmployeeProfile struct {
	ID              string       `bson:"id" json:"id"`
	UserID          string       `bson:"user_id" json:"user_id"`
	SkillIDs        []string     `bson:"skill_ids" json:"skill_ids"`
	Bio             string       `bson:"bio,omitempty" json:"bio,omitempty"`
	HourlyRate      float64      `bson:"hourly_rate" json:"hourly_rate"`
	DailyRate       float64      `bson:"daily_rate" json:"daily_rate"`
	MonthlyRate     float64      `bson:"monthly_rate" json:"monthly_rate"`
	Availability    Availability `bson:"availability" json:"availability"`
	ExperienceYears int          `bson:"experience_years" json:"experience_years"`
	Verified        bool         `bson:"verified" json:"verified"`
	AvgRating       float64      `bson:"avg_rating" json:"avg_rating"`
	TotalJobs       int          `bson:"total_jobs" json:"total_jobs"`
	Latitude        *float64     `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude       *float64     `bson:"longitude,omitempty" json:"longitude,omitempty"`
	CreatedAt       time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time    `bson:"updated_at" json:"updated_at"`

	// User is the owning account, populated by lookup-backed queries.
	User *User `bson:"user,omitempty" json:"user,omitempty"`
}

package models

import "time"

// CustomerProfile is the extended profile for customer accounts with
// hiring-history aggregates updated on booking completion.
type CustomerProfile struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	CompanyName   string    `bson:"company_name,omitempty" json:"company_name,omitempty"`
	TotalSpent    float64   `bson:"total_spent" json:"total_spent"`
	TotalBookings int       `bson:"total_bookings" json:"total_bookings"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

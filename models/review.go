package models

import "time"

// Review is post-job feedback linked one-to-one with a completed booking.
// EmployeeID is denormalized from the booking so rating aggregation can run
// against the reviews collection alone.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	BookingID  string    `bson:"booking_id" json:"booking_id"`
	ReviewerID string    `bson:"reviewer_id" json:"reviewer_id"`
	EmployeeID string    `bson:"employee_id" json:"employee_id"`
	Rating     int       `bson:"rating" json:"rating"`
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

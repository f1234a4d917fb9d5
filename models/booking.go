package models

import "time"

// DurationType is the billing granularity selecting which stored rate
// applies to a booking.
type DurationType string

const (
	DurationHourly  DurationType = "hourly"
	DurationDaily   DurationType = "daily"
	DurationMonthly DurationType = "monthly"
)

// BookingStatus is the workflow state of a booking. Transitions are applied
// only through the booking service.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusAccepted   BookingStatus = "accepted"
	StatusRejected   BookingStatus = "rejected"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// Terminal reports whether no further transition is defined from s.
func (s BookingStatus) Terminal() bool {
	switch s {
	case StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Booking links a customer, an employee, a billed duration and a workflow
// status. RateApplied and TotalCost are fixed by the pricing engine when the
// booking is created; CostFinalized guards against silent recomputation.
type Booking struct {
	ID            string        `bson:"id" json:"id"`
	CustomerID    string        `bson:"customer_id" json:"customer_id"`
	EmployeeID    string        `bson:"employee_id" json:"employee_id"`
	Title         string        `bson:"title" json:"title"`
	Description   string        `bson:"description,omitempty" json:"description,omitempty"`
	SkillIDs      []string      `bson:"skill_ids,omitempty" json:"skill_ids,omitempty"`
	DurationType  DurationType  `bson:"duration_type" json:"duration_type"`
	DurationValue int           `bson:"duration_value" json:"duration_value"`
	RateApplied   float64       `bson:"rate_applied" json:"rate_applied"`
	TotalCost     float64       `bson:"total_cost" json:"total_cost"`
	CostFinalized bool          `bson:"cost_finalized" json:"cost_finalized"`
	Status        BookingStatus `bson:"status" json:"status"`
	StartDate     *time.Time    `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate       *time.Time    `bson:"end_date,omitempty" json:"end_date,omitempty"`
	Location      string        `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updated_at"`
}

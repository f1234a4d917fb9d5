package models

import "time"

// Skill is a tag employees can hold and bookings can require.
type Skill struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Category  string    `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

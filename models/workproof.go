package models

import "time"

// WorkProof is progress evidence an employee attaches to an active booking.
// Only the image URL is stored; upload handling lives outside this service.
type WorkProof struct {
	ID          string    `bson:"id" json:"id"`
	BookingID   string    `bson:"booking_id" json:"booking_id"`
	UploaderID  string    `bson:"uploader_id" json:"uploader_id"`
	Description string    `bson:"description" json:"description"`
	ImageURL    string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

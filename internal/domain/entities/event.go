package entities

import "time"

// Event types published on the bus after successful writes.
const (
	EventAppointmentCreated = "appointment.created"
	EventReviewCreated      = "review.created"
)

// Event is a best-effort domain event. Publishing is fire-and-forget; a
// lost event never affects the write it describes.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	EntityID   string    `json:"entityId"`
	UserID     string    `json:"userId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

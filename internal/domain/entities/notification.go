package entities

import "time"

// NotificationType represents the notification purpose
type NotificationType string

const (
	NotificationTypeAppointment NotificationType = "appointment"
	NotificationTypeReview      NotificationType = "review"
	NotificationTypeReminder    NotificationType = "reminder"
	NotificationTypeSystem      NotificationType = "system"
)

// Notification represents a message delivered to a user. RelatedID is a
// loose reference to the record that triggered it (an appointment id for
// booking notifications) and is never validated.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
	RelatedID *string          `json:"relatedId,omitempty"`
}

// NotificationUpdate carries a merge update for a notification. Only the
// read flag is ever mutated.
type NotificationUpdate struct {
	Read *bool `json:"read,omitempty"`
}

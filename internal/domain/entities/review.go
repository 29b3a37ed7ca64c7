package entities

import "time"

// Review represents a user review of a service. Reviews are immutable once
// created; there is no update or delete path anywhere in the system.
type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ServiceID string    `json:"serviceId"`
	Rating    int       `json:"rating"` // 1-5
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

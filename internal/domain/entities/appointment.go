package entities

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a booking made by a client. ServiceName and
// InstitutionName are denormalized at creation time and never kept in
// sync afterwards. Date is the YYYY-MM-DD string the clients send; Time
// is the wall-clock slot label. Status never transitions on its own.
type Appointment struct {
	ID              string            `json:"id"`
	UserID          string            `json:"userId"`
	ServiceID       string            `json:"serviceId"`
	ServiceName     string            `json:"serviceName"`
	InstitutionName string            `json:"institutionName"`
	Date            string            `json:"date"`
	Time            string            `json:"time"`
	Status          AppointmentStatus `json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       *time.Time        `json:"updatedAt,omitempty"`
}

// AppointmentUpdate carries a merge update for an appointment. Nil fields
// are left untouched.
type AppointmentUpdate struct {
	Status *AppointmentStatus `json:"status,omitempty"`
	Date   *string            `json:"date,omitempty"`
	Time   *string            `json:"time,omitempty"`
}

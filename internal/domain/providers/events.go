package providers

import (
	"context"

	"github.com/agendafacil/booking-platform/internal/domain/entities"
)

// Channels events are published on.
const (
	EventChannelAppointments = "appointments"
	EventChannelReviews      = "reviews"
)

// EventBus publishes and delivers best-effort domain events. Services
// publish after a successful write and ignore publish failures.
type EventBus interface {
	Publish(ctx context.Context, channel string, event *entities.Event) error
	Subscribe(ctx context.Context, channel string) (<-chan *entities.Event, error)
	Close() error
}

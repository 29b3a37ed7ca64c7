package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendafacil/booking-platform/internal/api/handlers"
	"github.com/agendafacil/booking-platform/internal/domain/entities"
	"github.com/agendafacil/booking-platform/internal/domain/providers"
)

// channelEventBus is an in-process EventBus handing every subscriber the
// same event channel. Sends on the unbuffered channel block until the
// stream is consuming, which keeps the tests free of arbitrary sleeps.
type channelEventBus struct {
	events     chan *entities.Event
	subscribed []string
}

func newChannelEventBus() *channelEventBus {
	return &channelEventBus{events: make(chan *entities.Event)}
}

func (b *channelEventBus) Publish(ctx context.Context, channel string, event *entities.Event) error {
	b.events <- event
	return nil
}

func (b *channelEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.Event, error) {
	b.subscribed = append(b.subscribed, channel)
	return b.events, nil
}

func (b *channelEventBus) Close() error {
	return nil
}

func TestStreamHandler_DeliversPublishedEvents(t *testing.T) {
	bus := newChannelEventBus()
	handler := handlers.NewStreamHandler(bus)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/events/appointments", nil).WithContext(ctx)
	req.SetPathValue("channel", "appointments")
	recorder := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		handler.Stream(recorder, req)
		close(done)
	}()

	event := &entities.Event{
		ID:         "evt-1",
		Type:       entities.EventAppointmentCreated,
		EntityID:   "apt-1",
		UserID:     "user-1",
		OccurredAt: time.Now().UTC(),
	}
	require.NoError(t, bus.Publish(context.Background(), providers.EventChannelAppointments, event))

	// Let the forwarded event reach the response writer before closing
	// the connection.
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, []string{providers.EventChannelAppointments}, bus.subscribed)
	assert.Equal(t, "text/event-stream", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", recorder.Header().Get("Cache-Control"))

	body := recorder.Body.String()
	assert.Contains(t, body, "event: connected")
	assert.Contains(t, body, "event: "+entities.EventAppointmentCreated)
	assert.Contains(t, body, `"id":"evt-1"`)
	assert.Contains(t, body, `"entityId":"apt-1"`)
}

func TestStreamHandler_RejectsUnknownChannel(t *testing.T) {
	handler := handlers.NewStreamHandler(newChannelEventBus())

	req := httptest.NewRequest(http.MethodGet, "/events/users", nil)
	req.SetPathValue("channel", "users")
	recorder := httptest.NewRecorder()

	handler.Stream(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "unknown event channel", decode(t, recorder)["error"])
}

func TestStreamHandler_ReviewChannelConnects(t *testing.T) {
	bus := newChannelEventBus()
	handler := handlers.NewStreamHandler(bus)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/events/reviews", nil).WithContext(ctx)
	req.SetPathValue("channel", "reviews")
	recorder := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		handler.Stream(recorder, req)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, []string{providers.EventChannelReviews}, bus.subscribed)
	assert.Contains(t, recorder.Body.String(), `"channel":"reviews"`)
}

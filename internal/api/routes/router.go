package routes

import (
	"net/http"

	"github.com/agendafacil/booking-platform/internal/api/handlers"
	"github.com/agendafacil/booking-platform/internal/api/middleware"
	"github.com/agendafacil/booking-platform/internal/domain/providers"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	identity providers.IdentityProvider

	authHandler         *handlers.AuthHandler
	institutionHandler  *handlers.InstitutionHandler
	serviceHandler      *handlers.ServiceHandler
	appointmentHandler  *handlers.AppointmentHandler
	reviewHandler       *handlers.ReviewHandler
	favoritesHandler    *handlers.FavoritesHandler
	notificationHandler *handlers.NotificationHandler
	analyticsHandler    *handlers.AnalyticsHandler
	streamHandler       *handlers.StreamHandler
}

// NewRouter creates a new router
func NewRouter(
	identity providers.IdentityProvider,
	authHandler *handlers.AuthHandler,
	institutionHandler *handlers.InstitutionHandler,
	serviceHandler *handlers.ServiceHandler,
	appointmentHandler *handlers.AppointmentHandler,
	reviewHandler *handlers.ReviewHandler,
	favoritesHandler *handlers.FavoritesHandler,
	notificationHandler *handlers.NotificationHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	streamHandler *handlers.StreamHandler,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		identity: identity,

		authHandler:         authHandler,
		institutionHandler:  institutionHandler,
		serviceHandler:      serviceHandler,
		appointmentHandler:  appointmentHandler,
		reviewHandler:       reviewHandler,
		favoritesHandler:    favoritesHandler,
		notificationHandler: notificationHandler,
		analyticsHandler:    analyticsHandler,
		streamHandler:       streamHandler,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	guard := middleware.RequireIdentity(r.identity)
	protected := func(h http.HandlerFunc) http.Handler {
		return guard(h)
	}

	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Auth endpoints
	r.mux.HandleFunc("POST /signup", r.authHandler.Signup)
	r.mux.Handle("GET /profile", protected(r.authHandler.Profile))

	// Institution endpoints
	r.mux.Handle("POST /institutions", protected(r.institutionHandler.Create))
	r.mux.HandleFunc("GET /institutions", r.institutionHandler.List)
	r.mux.HandleFunc("GET /institutions/{id}", r.institutionHandler.Get)

	// Service catalog endpoints. Literal segments (mine, clean-no-images)
	// must stay distinct from the {id} patterns beside them.
	r.mux.Handle("POST /services", protected(r.serviceHandler.Create))
	r.mux.HandleFunc("GET /services", r.serviceHandler.List)
	r.mux.Handle("GET /services/mine", protected(r.serviceHandler.ListMine))
	r.mux.HandleFunc("GET /services/{id}", r.serviceHandler.Get)
	r.mux.Handle("PUT /services/{id}", protected(r.serviceHandler.Update))
	r.mux.Handle("DELETE /services/clean-no-images", protected(r.serviceHandler.CleanWithoutImages))
	r.mux.Handle("DELETE /services/{id}", protected(r.serviceHandler.Delete))

	// Appointment endpoints
	r.mux.Handle("POST /appointments", protected(r.appointmentHandler.Create))
	r.mux.Handle("GET /appointments", protected(r.appointmentHandler.List))
	r.mux.Handle("PUT /appointments/{id}", protected(r.appointmentHandler.UpdateStatus))

	// Review endpoints. Listing is public; writing needs an identity.
	r.mux.Handle("POST /reviews", protected(r.reviewHandler.Create))
	r.mux.HandleFunc("GET /reviews/{serviceId}", r.reviewHandler.ListByService)

	// Favorites endpoints
	r.mux.Handle("POST /favorites", protected(r.favoritesHandler.Toggle))
	r.mux.Handle("GET /favorites", protected(r.favoritesHandler.List))

	// Notification endpoints
	r.mux.Handle("POST /notifications", protected(r.notificationHandler.Create))
	r.mux.Handle("GET /notifications", protected(r.notificationHandler.List))
	r.mux.Handle("PUT /notifications/read-all", protected(r.notificationHandler.MarkAllRead))
	r.mux.Handle("PUT /notifications/{id}/read", protected(r.notificationHandler.MarkRead))
	r.mux.Handle("DELETE /notifications/{id}", protected(r.notificationHandler.Delete))

	// Analytics endpoint
	r.mux.Handle("GET /analytics", protected(r.analyticsHandler.Get))

	// Live event stream. Only available when an event bus is configured.
	if r.streamHandler != nil {
		r.mux.Handle("GET /events/{channel}", protected(r.streamHandler.Stream))
	}

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so error responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}

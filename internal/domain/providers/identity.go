package providers

import (
	"context"

	"github.com/agendafacil/booking-platform/internal/domain/entities"
)

// IdentityProvider is the external identity gateway. It owns credentials
// and token issuance; this service only ever asks it two questions.
type IdentityProvider interface {
	// Resolve answers "who is this token for?". It returns an
	// unauthorized AppError when the token is absent, expired or invalid.
	Resolve(ctx context.Context, token string) (*entities.Identity, error)

	// CreateUser registers a new identity during signup and returns it
	// with the gateway-assigned user id.
	CreateUser(ctx context.Context, input entities.NewIdentity) (*entities.Identity, error)
}

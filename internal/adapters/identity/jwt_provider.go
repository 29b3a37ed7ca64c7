package identity

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/agendafacil/booking-platform/internal/domain/entities"
	"github.com/agendafacil/booking-platform/internal/domain/providers"
	apperrors "github.com/agendafacil/booking-platform/pkg/errors"
)

const defaultTokenTTL = 24 * time.Hour

// Claims carries the identity fields inside an access token. The subject
// is the user id.
type Claims struct {
	Email       string               `json:"email"`
	Name        string               `json:"name"`
	AccountType entities.AccountType `json:"type"`
	jwt.RegisteredClaims
}

// JWTProvider is the self-contained identity gateway: HS256 tokens signed
// with a shared secret. Tokens carry the whole identity, so resolving one
// never touches the store.
type JWTProvider struct {
	secret []byte
}

// NewJWTProvider creates a new JWT identity provider
func NewJWTProvider(secret string) *JWTProvider {
	return &JWTProvider{secret: []byte(secret)}
}

var _ providers.IdentityProvider = (*JWTProvider)(nil)

// Resolve answers "who is this token for?"
func (p *JWTProvider) Resolve(ctx context.Context, token string) (*entities.Identity, error) {
	if token == "" {
		return nil, apperrors.NewUnauthorizedError("Unauthorized")
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// Block algorithm confusion.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.NewUnauthorizedError("Unauthorized")
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Unauthorized")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, apperrors.NewUnauthorizedError("Unauthorized")
	}

	return &entities.Identity{
		UserID:      claims.Subject,
		Email:       claims.Email,
		Name:        claims.Name,
		AccountType: claims.AccountType,
	}, nil
}

// CreateUser registers a new identity. Tokens are self-contained, so all
// this mode has to do is assign an id; credentials live with whoever
// issues tokens.
func (p *JWTProvider) CreateUser(ctx context.Context, input entities.NewIdentity) (*entities.Identity, error) {
	if input.Email == "" {
		return nil, apperrors.NewValidationError("email is required")
	}
	return &entities.Identity{
		UserID:      uuid.New().String(),
		Email:       input.Email,
		Name:        input.Name,
		AccountType: input.AccountType,
	}, nil
}

// IssueToken mints an access token for the identity. Used by the signup
// response in local mode and by tests.
func (p *JWTProvider) IssueToken(identity *entities.Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:       identity.Email,
		Name:        identity.Name,
		AccountType: identity.AccountType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(defaultTokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", apperrors.NewInternalError("failed to sign token", err)
	}
	return token, nil
}

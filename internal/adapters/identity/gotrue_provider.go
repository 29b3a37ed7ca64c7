package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/agendafacil/booking-platform/internal/domain/entities"
	"github.com/agendafacil/booking-platform/internal/domain/providers"
	apperrors "github.com/agendafacil/booking-platform/pkg/errors"
)

// GoTrueProvider talks to a GoTrue-compatible auth service (the hosted
// deployment's identity provider). Resolution asks GET /user with the
// caller's bearer token; signup uses the admin endpoint with the service
// key and auto-confirms the email.
type GoTrueProvider struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// NewGoTrueProvider creates a new GoTrue identity provider
func NewGoTrueProvider(baseURL, serviceKey string) *GoTrueProvider {
	return &GoTrueProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

var _ providers.IdentityProvider = (*GoTrueProvider)(nil)

type gotrueUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		Name string               `json:"name"`
		Type entities.AccountType `json:"type"`
	} `json:"user_metadata"`
}

func (u *gotrueUser) identity() *entities.Identity {
	return &entities.Identity{
		UserID:      u.ID,
		Email:       u.Email,
		Name:        u.UserMetadata.Name,
		AccountType: u.UserMetadata.Type,
	}
}

// Resolve answers "who is this token for?"
func (p *GoTrueProvider) Resolve(ctx context.Context, token string) (*entities.Identity, error) {
	if token == "" {
		return nil, apperrors.NewUnauthorizedError("Unauthorized")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/user", nil)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build identity request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", p.serviceKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewExternalError("identity gateway unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, apperrors.NewUnauthorizedError("Unauthorized")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewExternalError(
			fmt.Sprintf("identity gateway returned status %d", resp.StatusCode), nil)
	}

	var user gotrueUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, apperrors.NewExternalError("failed to decode identity response", err)
	}
	if user.ID == "" {
		return nil, apperrors.NewUnauthorizedError("Unauthorized")
	}
	return user.identity(), nil
}

// CreateUser registers a new identity through the admin endpoint
func (p *GoTrueProvider) CreateUser(ctx context.Context, input entities.NewIdentity) (*entities.Identity, error) {
	payload := map[string]interface{}{
		"email":         input.Email,
		"password":      input.Password,
		"email_confirm": true,
		"user_metadata": map[string]interface{}{
			"name": input.Name,
			"type": input.AccountType,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode signup request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/admin/users", bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build signup request", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.serviceKey)
	req.Header.Set("apikey", p.serviceKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewExternalError("identity gateway unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnprocessableEntity || resp.StatusCode == http.StatusConflict {
		return nil, apperrors.NewConflictError("email is already registered")
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, apperrors.NewExternalError(
			fmt.Sprintf("identity gateway returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail))), nil)
	}

	var user gotrueUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, apperrors.NewExternalError("failed to decode signup response", err)
	}
	return user.identity(), nil
}

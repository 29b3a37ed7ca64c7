package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/agendafacil/booking-platform/internal/api/middleware"
	"github.com/agendafacil/booking-platform/internal/domain/entities"
	"github.com/agendafacil/booking-platform/internal/domain/providers"
	"github.com/agendafacil/booking-platform/internal/domain/repositories"
)

// TokenIssuer is implemented by identity providers that can mint access
// tokens locally. The signup response includes a token when available so
// local setups work without a separate auth service.
type TokenIssuer interface {
	IssueToken(identity *entities.Identity) (string, error)
}

// AuthHandler handles signup and profile requests
type AuthHandler struct {
	identity providers.IdentityProvider
	users    repositories.UserRepository
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(identity providers.IdentityProvider, users repositories.UserRepository) *AuthHandler {
	return &AuthHandler{
		identity: identity,
		users:    users,
	}
}

type signupRequest struct {
	Email    string               `json:"email"`
	Password string               `json:"password"`
	Name     string               `json:"name"`
	Type     entities.AccountType `json:"type"`
}

// Signup handles POST /signup. It registers the identity with the
// gateway, then stores the user profile. The two writes are not atomic;
// a failed profile write leaves the identity registered.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload signupRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if payload.Email == "" || payload.Password == "" || payload.Name == "" {
		respondWithError(w, http.StatusBadRequest, "email, password and name are required")
		return
	}
	if payload.Type == "" {
		payload.Type = entities.AccountTypeClient
	}
	if payload.Type != entities.AccountTypeClient && payload.Type != entities.AccountTypeInstitution {
		respondWithError(w, http.StatusBadRequest, "type must be client or institution")
		return
	}

	identity, err := h.identity.CreateUser(r.Context(), entities.NewIdentity{
		Email:       payload.Email,
		Password:    payload.Password,
		Name:        payload.Name,
		AccountType: payload.Type,
	})
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	user := &entities.User{
		ID:          identity.UserID,
		Email:       identity.Email,
		Name:        identity.Name,
		AccountType: identity.AccountType,
		Favorites:   []string{},
		CreatedAt:   time.Now().UTC(),
	}
	// Institution accounts start out owning themselves; creating an
	// institution record later relinks them.
	if user.AccountType == entities.AccountTypeInstitution {
		user.InstitutionID = &user.ID
	}

	if err := h.users.Create(r.Context(), user); err != nil {
		respondWithAppError(w, err)
		return
	}

	response := map[string]interface{}{
		"success": true,
		"user":    user,
	}
	if issuer, ok := h.identity.(TokenIssuer); ok {
		if token, err := issuer.IssueToken(identity); err == nil {
			response["accessToken"] = token
		}
	}

	respondWithJSON(w, http.StatusOK, response)
}

// Profile handles GET /profile
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r.Context())

	profile, err := h.users.GetByID(r.Context(), identity.UserID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"profile": profile,
	})
}

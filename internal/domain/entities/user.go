package entities

import "time"

// AccountType distinguishes client accounts from institution accounts
type AccountType string

const (
	AccountTypeClient      AccountType = "client"
	AccountTypeInstitution AccountType = "institution"
)

// User represents a user profile. Favorites holds service ids; insertion
// order carries no meaning.
type User struct {
	ID            string      `json:"id"`
	Email         string      `json:"email"`
	Name          string      `json:"name"`
	AccountType   AccountType `json:"type"`
	InstitutionID *string     `json:"institutionId,omitempty"`
	Favorites     []string    `json:"favorites"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     *time.Time  `json:"updatedAt,omitempty"`
}

// UserUpdate carries a merge update for a user profile. Nil fields are
// left untouched.
type UserUpdate struct {
	Name          *string   `json:"name,omitempty"`
	InstitutionID *string   `json:"institutionId,omitempty"`
	Favorites     *[]string `json:"favorites,omitempty"`
}

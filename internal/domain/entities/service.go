package entities

import "time"

// RecommendedCategories is the category set the clients offer in their
// pickers. Category stays free text; nothing enforces membership here.
var RecommendedCategories = []string{
	"Odontologia",
	"Cardiologia",
	"Ortopedia",
	"Pediatria",
	"Psicologia",
	"Outros",
}

// Service represents a bookable service offered by an institution.
// Rating and ReviewCount are derived from the stored reviews and are
// recomputed in full whenever a review is created.
type Service struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	Description     string     `json:"description"`
	InstitutionID   string     `json:"institutionId"`
	InstitutionName string     `json:"institutionName"`
	Location        string     `json:"location"`
	Image           *string    `json:"image,omitempty"`
	Rating          float64    `json:"rating"`
	ReviewCount     int        `json:"reviewCount"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// ServiceUpdate carries a merge update for a service. Nil fields are left
// untouched. Rating and ReviewCount are included because the rating
// recomputation writes through the same merge path.
type ServiceUpdate struct {
	Name            *string  `json:"name,omitempty"`
	Category        *string  `json:"category,omitempty"`
	Description     *string  `json:"description,omitempty"`
	InstitutionID   *string  `json:"institutionId,omitempty"`
	InstitutionName *string  `json:"institutionName,omitempty"`
	Location        *string  `json:"location,omitempty"`
	Image           *string  `json:"image,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
	ReviewCount     *int     `json:"reviewCount,omitempty"`
}

// OwnedBy reports whether the service belongs to the given user account.
// Accounts whose institution id was never set fall back to matching on the
// raw user id; this mirrors historical data and must not be "fixed".
func (s *Service) OwnedBy(user *User) bool {
	if user == nil {
		return false
	}
	institutionID := user.ID
	if user.InstitutionID != nil && *user.InstitutionID != "" {
		institutionID = *user.InstitutionID
	}
	return s.InstitutionID == institutionID
}

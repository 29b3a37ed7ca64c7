package entities

// Identity is the resolved caller of a request. It is produced by the
// identity gateway from a bearer token and passed explicitly into every
// repository and service call that needs it; there is no ambient session
// state anywhere in the process.
type Identity struct {
	UserID      string      `json:"userId"`
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"type"`
}

// NewIdentity carries the fields needed to register a new identity with
// the gateway.
type NewIdentity struct {
	Email       string      `json:"email"`
	Password    string      `json:"password"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"type"`
}

package domain

// Contact is owned by exactly one User, referenced by username. All
// reads and mutations must be scoped by both the contact ID and the
// owner; a contact owned by someone else is indistinguishable from a
// missing one.
type Contact struct {
	ID        int64  `json:"id"`
	Username  string `json:"-"` // owner, never returned to the caller
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

package domain

// User represents a registered account. Username is the primary key.
// The session token is nullable: it is minted on login and cleared on
// logout, and its presence is what the auth middleware resolves to an
// identity.
type User struct {
	Username       string `json:"username"`
	Name           string `json:"name"`
	HashedPassword string `json:"-"` // never expose the password hash
	Token          string `json:"-"` // empty when the user has no active session
}

// HasToken reports whether the user currently holds an active session
// token.
func (u *User) HasToken() bool {
	return u.Token != ""
}

package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Guard holds the single admin credential pair. The password is kept only as
// a bcrypt hash; login compares in constant time and never by string
// equality.
type Guard struct {
	username     string
	passwordHash []byte
}

// NewGuard creates a Guard from the configured username and bcrypt password
// hash. Either value may be empty, in which case every login fails.
func NewGuard(username, passwordHash string) *Guard {
	return &Guard{username: username, passwordHash: []byte(passwordHash)}
}

// Configured reports whether a usable credential pair is present.
func (g *Guard) Configured() bool {
	return g.username != "" && len(g.passwordHash) > 0
}

// Login checks the submitted credentials. It always runs both comparisons so
// a username mismatch is not distinguishable by timing.
func (g *Guard) Login(username, password string) bool {
	if !g.Configured() {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(g.username), []byte(username)) == 1
	passOK := bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password)) == nil
	return userOK && passOK
}

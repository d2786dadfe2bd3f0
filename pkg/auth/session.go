package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

const sessionCookieName = "portfolio_session"
const minSecretLen = 32

// SessionDuration is how long an admin session stays valid without logout.
const SessionDuration = 24 * time.Hour

const sessionSubject = "admin"

// ErrInvalidSession is returned when a session token is malformed, has a bad
// signature, or has expired.
var ErrInvalidSession = errors.New("invalid session")

// SessionCookieName returns the name of the admin session cookie.
func SessionCookieName() string {
	return sessionCookieName
}

var (
	bootSecret     []byte
	bootSecretOnce sync.Once
)

// SessionSecretBytes derives the signing key from the configured secret
// string, padding to a 32-byte minimum. An empty secret must never produce a
// key an attacker could predict, so it falls back to a random per-boot key:
// sessions then survive only until restart, and tokens signed with any
// guessable constant fail verification.
func SessionSecretBytes(s string) []byte {
	if s == "" {
		bootSecretOnce.Do(func() {
			bootSecret = make([]byte, minSecretLen)
			if _, err := rand.Read(bootSecret); err != nil {
				panic("auth: cannot generate session secret: " + err.Error())
			}
		})
		return bootSecret
	}
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}

// CreateSessionToken generates a signed admin session token that expires
// after ttl.
func CreateSessionToken(secret []byte, ttl time.Duration) string {
	expiry := time.Now().Add(ttl).Unix()
	payload := sessionSubject + ":" + strconv.FormatInt(expiry, 10)
	return signToken([]byte(payload), secret)
}

// VerifySessionToken checks the token's signature and expiry.
func VerifySessionToken(token string, secret []byte) error {
	payload, err := verifyToken(token, secret)
	if err != nil {
		return ErrInvalidSession
	}
	subject, expiryStr, ok := strings.Cut(string(payload), ":")
	if !ok || subject != sessionSubject {
		return ErrInvalidSession
	}
	expiry, err := strconv.ParseInt(expiryStr, 10, 64)
	if err != nil || time.Now().Unix() >= expiry {
		return ErrInvalidSession
	}
	return nil
}

// SetSessionCookie marks the browser session as admin-authenticated.
func SetSessionCookie(w http.ResponseWriter, secret []byte) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    CreateSessionToken(secret, SessionDuration),
		Path:     "/",
		MaxAge:   int(SessionDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie removes the admin session cookie (logout).
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// IsAuthenticated reports whether the request carries a valid admin session.
func IsAuthenticated(r *http.Request, secret []byte) bool {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return false
	}
	return VerifySessionToken(cookie.Value, secret) == nil
}

// signToken produces base64url(payload) + "." + hex(hmac-sha256(payload)).
func signToken(payload, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	sig := hex.EncodeToString(mac.Sum(nil))
	return base64.URLEncoding.EncodeToString(payload) + "." + sig
}

// verifyToken checks the signature and returns the decoded payload.
func verifyToken(token string, secret []byte) ([]byte, error) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return nil, errors.New("invalid token format")
	}
	payload, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, err
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return nil, errors.New("invalid signature")
	}
	return payload, nil
}

package auth

import (
	"net/http"
	"strings"
)

const flashCookieName = "portfolio_flash"

// Flash is a one-shot notification shown on the next rendered page.
// Category matches the CSS class used by the templates ("success", "danger").
type Flash struct {
	Category string
	Message  string
}

// SetFlash attaches a signed one-shot notification cookie to the response.
// The signature prevents a client from forging arbitrary page banners.
func SetFlash(w http.ResponseWriter, secret []byte, category, message string) {
	payload := category + "|" + message
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    signToken([]byte(payload), secret),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash reads and clears the flash cookie. Returns nil when there is no
// valid flash pending.
func PopFlash(w http.ResponseWriter, r *http.Request, secret []byte) *Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}

	// One-shot: clear regardless of validity.
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	payload, err := verifyToken(cookie.Value, secret)
	if err != nil {
		return nil
	}
	category, message, ok := strings.Cut(string(payload), "|")
	if !ok {
		return nil
	}
	return &Flash{Category: category, Message: message}
}

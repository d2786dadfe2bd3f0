package handler

import (
	"net/http"

	"github.com/devfolio/site/pkg/auth"
)

// AuthHandler handles admin login and logout.
type AuthHandler struct {
	guard  *auth.Guard
	secret []byte
	render *Renderer
}

func NewAuthHandler(guard *auth.Guard, secret []byte, render *Renderer) *AuthHandler {
	return &AuthHandler{guard: guard, secret: secret, render: render}
}

// LoginForm handles GET /admin/login. An already-authenticated session is
// sent straight to the dashboard.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if auth.IsAuthenticated(r, h.secret) {
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}
	h.render.Render(w, r, "admin_login.html", map[string]any{"Title": "Admin Login"})
}

// Login handles POST /admin/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	if !h.guard.Login(username, password) {
		auth.SetFlash(w, h.secret, "danger", "Invalid username or password!")
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}

	auth.SetSessionCookie(w, h.secret)
	auth.SetFlash(w, h.secret, "success", "Logged in successfully!")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout handles GET /admin/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	auth.SetFlash(w, h.secret, "success", "Logged out successfully!")
	http.Redirect(w, r, "/admin/login", http.StatusFound)
}

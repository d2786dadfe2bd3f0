package auth

import "net/http"

// LoginPath is where unauthenticated admin requests are redirected.
const LoginPath = "/admin/login"

// RequireAdmin gates admin routes. Requests without a valid admin session
// are redirected to the login page with a "please login" notification and
// reach no handler, so no side effect can occur. Every /admin route goes
// through this middleware; handlers never re-check the session themselves.
func RequireAdmin(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsAuthenticated(r, secret) {
				SetFlash(w, secret, "danger", "Please login first!")
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

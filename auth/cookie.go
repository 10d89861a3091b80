package auth

import "net/http"

// CookieName identifies the session cookie.
const CookieName = "auth-token"

// cookieMaxAge matches TokenTTL: the cookie and the token it carries expire
// together.
const cookieMaxAge = 7 * 24 * 60 * 60

// SetSessionCookie binds a signed token to the response.  HttpOnly keeps it
// away from page scripts; Lax keeps it on top-level navigations; Secure is
// enabled in production-like environments only so local HTTP development
// still works.
func SetSessionCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.  The token itself stays
// cryptographically valid until its natural expiry; there is no server-side
// revocation list.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// TokenFromRequest returns the raw token carried by the session cookie.
// ok == false when the cookie is missing or empty.
func TokenFromRequest(r *http.Request) (token string, ok bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

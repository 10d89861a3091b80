package auth

import (
	"net/http"
	"strings"

	"jobdesk/metrics"
)

// Default admission configuration.  Protected prefixes require a valid
// session; admin prefixes additionally require the admin role.
var (
	DefaultProtectedPrefixes = []string{"/profile", "/addAd", "/editAd", "/applicants", "/admin"}
	DefaultAdminPrefixes     = []string{"/admin"}
)

// Entry points the gate redirects to.  Unauthenticated requests go to the
// account page; authenticated-but-forbidden requests go home.  The distinct
// targets are the only signal the gate emits; it never writes an error body.
const (
	loginRedirectTarget = "/account"
	homeRedirectTarget  = "/"
)

// Gate is the sole admission-control point for protected paths.  It checks
// the session cookie by signature verification only; no store round-trip
// happens per request, so a role embedded in a live token is trusted until
// the token expires.
type Gate struct {
	codec     *Codec
	protected []string
	admin     []string
}

// NewGate builds a Gate with the default prefix lists.
func NewGate(codec *Codec) *Gate {
	return &Gate{
		codec:     codec,
		protected: DefaultProtectedPrefixes,
		admin:     DefaultAdminPrefixes,
	}
}

// NewGateWithPrefixes builds a Gate with explicit prefix lists, used by
// tests and non-default deployments.
func NewGateWithPrefixes(codec *Codec, protected, admin []string) *Gate {
	return &Gate{codec: codec, protected: protected, admin: admin}
}

// Middleware intercepts requests to protected prefixes.  Paths outside the
// lists pass through without a cookie read.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !hasPrefix(r.URL.Path, g.protected) {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := TokenFromRequest(r)
		if !ok {
			metrics.GateRedirectTotal.WithLabelValues("unauthenticated").Inc()
			http.Redirect(w, r, loginRedirectTarget, http.StatusTemporaryRedirect)
			return
		}

		claims := g.codec.Verify(token)
		if claims == nil {
			metrics.GateRedirectTotal.WithLabelValues("unauthenticated").Inc()
			http.Redirect(w, r, loginRedirectTarget, http.StatusTemporaryRedirect)
			return
		}

		if hasPrefix(r.URL.Path, g.admin) && claims.Role != RoleAdmin {
			metrics.GateRedirectTotal.WithLabelValues("forbidden").Inc()
			http.Redirect(w, r, homeRedirectTarget, http.StatusTemporaryRedirect)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

func hasPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

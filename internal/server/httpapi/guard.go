package httpapi

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/infinityui/backend/internal/model"
)

// protectedPrefixes are the route trees that require a session.
var protectedPrefixes = []string{"/dashboard", "/admin", "/checkout"}

// guardDecision is the outcome of evaluating one request against the route
// table. The zero value passes the request through untouched.
type guardDecision struct {
	clearCookie bool
	redirect    string
}

// underPrefix reports whether path sits at or below a route prefix.
func underPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// evaluateRoute applies the route decision table. The order is load-bearing:
// API routes short-circuit everything, the invalid-token cleanup happens
// before any redirect decision, and the auth-page redirect is mutually
// exclusive with the protected-route redirect.
func evaluateRoute(path, rawQuery string, tokenPresent bool, claims *model.SessionClaims) guardDecision {
	if underPrefix(path, "/api") {
		return guardDecision{}
	}

	var d guardDecision
	if tokenPresent && claims == nil {
		// stale or tampered cookie: drop it, continue as unauthenticated
		d.clearCookie = true
	}

	if claims != nil {
		switch {
		case path == "/sign-in" || path == "/sign-up":
			if claims.IsAdmin() {
				d.redirect = "/admin"
			} else {
				d.redirect = "/dashboard"
			}
		case !claims.IsAdmin() && underPrefix(path, "/admin"):
			d.redirect = "/"
		case claims.IsAdmin() && underPrefix(path, "/dashboard"):
			d.redirect = "/admin"
		}
		return d
	}

	for _, prefix := range protectedPrefixes {
		if underPrefix(path, prefix) {
			callback := path
			if rawQuery != "" {
				callback += "?" + rawQuery
			}
			d.redirect = "/sign-in?callbackUrl=" + url.QueryEscape(callback)
			break
		}
	}
	return d
}

// guard enforces evaluateRoute on every request before route handlers run.
func (s *Server) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st := sessionFromCtx(r.Context())
		d := evaluateRoute(r.URL.Path, r.URL.RawQuery, st.tokenPresent, st.claims)
		if d.clearCookie {
			s.clearSessionCookie(w)
		}
		if d.redirect != "" {
			http.Redirect(w, r, d.redirect, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

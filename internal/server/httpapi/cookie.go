package httpapi

import (
	"net/http"
	"time"
)

// SessionCookieName is the session token cookie.
const SessionCookieName = "infinityui_session_token"

// setSessionCookie writes the session token as an HTTP-only, same-site-strict
// cookie. Secure is driven by config so local development over plain HTTP works.
func (s *Server) setSessionCookie(w http.ResponseWriter, signed string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    signed,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(time.Until(expires).Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.SecureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearSessionCookie expires the session cookie immediately.
func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.SecureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}

package httpapi

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"go.uber.org/zap"

	"github.com/infinityui/backend/internal/errs"
	"github.com/infinityui/backend/internal/model"
)

// clientIP extracts the remote host for rate-limit keying.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// roleHome is the default landing page per role.
func roleHome(role string) string {
	if role == model.RoleAdmin {
		return "/admin"
	}
	return "/dashboard"
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	u, err := s.auth.SignUp(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAlreadyExists):
			s.respondJSON(w, http.StatusConflict, errorBody{Error: "email already registered"})
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}
	s.respondJSON(w, http.StatusCreated, toUserJSON(u))
}

// handleSignIn authenticates, sets the session cookie and returns the
// callback URL the client should navigate to. Bad credentials come back as a
// plain-text 400; anything unexpected is a generic 500.
func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		CallbackURL string `json:"callbackUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	signed, claims, err := s.auth.SignIn(r.Context(), req.Email, req.Password, clientIP(r))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidCredentials):
			http.Error(w, "invalid email or password", http.StatusBadRequest)
		case errors.Is(err, errs.ErrRateLimited):
			http.Error(w, "too many attempts, try again later", http.StatusTooManyRequests)
		default:
			s.log.Error("sign-in", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	s.setSessionCookie(w, signed, claims.ExpiresAt)

	callback := req.CallbackURL
	if callback == "" {
		callback = roleHome(claims.Role)
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"callbackUrl": callback})
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	s.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// handleMe resolves identity from the token but answers with the live account
// row; role and purchase state are never trusted from the token payload.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromCtx(r.Context())
	if !ok {
		s.respondJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized"})
		return
	}
	u, err := s.auth.CurrentUser(r.Context(), claims.UserID)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, toUserJSON(u))
}

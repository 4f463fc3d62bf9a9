package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/infinityui/backend/internal/errs"
)

type errorBody struct {
	Error string `json:"error"`
}

// actionResult is the admin mutation envelope: failures come back as data so
// the dashboard can render them inline instead of handling thrown errors.
type actionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", zap.Error(err))
	}
}

// respondError maps sentinel errors onto status codes for read endpoints.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		s.respondJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	case errors.Is(err, errs.ErrUnauthorized):
		s.respondJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized"})
	case errors.Is(err, errs.ErrAlreadyExists), errors.Is(err, errs.ErrConflict):
		s.respondJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	case errors.Is(err, errs.ErrRateLimited):
		s.respondJSON(w, http.StatusTooManyRequests, errorBody{Error: "too many attempts"})
	default:
		s.log.Error("internal error", zap.Error(err))
		s.respondJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

// respondAction wraps an admin mutation outcome in the success/message
// envelope. Errors are data here, not transport failures.
func (s *Server) respondAction(w http.ResponseWriter, err error, okMessage string) {
	if err != nil {
		s.respondJSON(w, http.StatusOK, actionResult{Success: false, Message: err.Error()})
		return
	}
	s.respondJSON(w, http.StatusOK, actionResult{Success: true, Message: okMessage})
}

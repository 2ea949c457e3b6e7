// ABOUTME: JSON error responses and the sentinel-error to HTTP status mapping
// ABOUTME: Every failure path goes through writeError; no status is derived from message text

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2389/taskdeck/internal/store"
	"github.com/2389/taskdeck/internal/users"
)

// ErrorResponse is the JSON body returned on every failure path.
type ErrorResponse struct {
	Timestamp string   `json:"timestamp"`
	Status    int      `json:"status"`
	Error     string   `json:"error"`
	Message   string   `json:"message"`
	Path      string   `json:"path"`
	Details   []string `json:"details,omitempty"`
}

// writeError writes a standardized JSON error body.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, errLabel, message string, details []string) {
	resp := ErrorResponse{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    status,
		Error:     errLabel,
		Message:   message,
		Path:      r.URL.Path,
		Details:   details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("encoding error response", "error", err)
	}
}

// writeServiceError maps a service or store error to its HTTP status. The
// mapping is an explicit switch over sentinel errors; anything unmatched is a
// 500 with no internal detail exposed.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, users.ErrUsernameTaken):
		s.writeError(w, r, http.StatusBadRequest, "Invalid Request", "username already in use", nil)
	case errors.Is(err, users.ErrEmailTaken):
		s.writeError(w, r, http.StatusBadRequest, "Invalid Request", "email already in use", nil)
	case errors.Is(err, users.ErrUserNotFound), errors.Is(err, users.ErrBadCredentials):
		// Same outcome for unknown user and wrong password so the login
		// endpoint does not confirm which usernames exist
		s.writeError(w, r, http.StatusUnauthorized, "Invalid Credentials", "invalid username or password", nil)
	case errors.Is(err, store.ErrTaskNotFound):
		s.writeError(w, r, http.StatusNotFound, "Not Found", "task not found", nil)
	default:
		s.logger.Error("unexpected error", "error", err, "path", r.URL.Path, "method", r.Method)
		s.writeError(w, r, http.StatusInternalServerError, "Internal Server Error", "an unexpected error occurred", nil)
	}
}

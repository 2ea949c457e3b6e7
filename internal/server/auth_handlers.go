// ABOUTME: HTTP handlers for the public /auth endpoints
// ABOUTME: Registration and login both respond with a bearer token

package server

import (
	"encoding/json"
	"net/http"
	"regexp"
	"unicode/utf8"
)

// emailRegex is a light format check; the store's unique constraint is the
// real gate on emails.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// RegisterRequest is the JSON request body for POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON request body for POST /auth/login.
type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}

// AuthResponse is the JSON response for successful register/login.
type AuthResponse struct {
	Token   string `json:"token"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// validate collects field violations for a registration request.
func (req *RegisterRequest) validate() []string {
	var details []string

	nameLen := utf8.RuneCountInString(req.Username)
	if nameLen < 3 || nameLen > 50 {
		details = append(details, "username: must be between 3 and 50 characters")
	}
	if !emailRegex.MatchString(req.Email) {
		details = append(details, "email: must be a valid email address")
	}
	if utf8.RuneCountInString(req.Password) < 6 {
		details = append(details, "password: must be at least 6 characters")
	}

	return details
}

// handleRegister handles POST /auth/register requests.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "Invalid Request", "request body is not valid JSON", nil)
		return
	}

	if details := req.validate(); details != nil {
		s.writeError(w, r, http.StatusBadRequest, "Validation Error", "invalid registration data", details)
		return
	}

	user, err := s.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	token, err := s.users.IssueToken(user)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, AuthResponse{
		Token:   token,
		Type:    "Bearer",
		Message: "user registered successfully",
	})
}

// handleLogin handles POST /auth/login requests. The identifier may be a
// username or an email.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "Invalid Request", "request body is not valid JSON", nil)
		return
	}

	var details []string
	if req.UsernameOrEmail == "" {
		details = append(details, "username_or_email: is required")
	}
	if req.Password == "" {
		details = append(details, "password: is required")
	}
	if details != nil {
		s.writeError(w, r, http.StatusBadRequest, "Validation Error", "invalid login data", details)
		return
	}

	user, err := s.users.Authenticate(r.Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	token, err := s.users.IssueToken(user)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, AuthResponse{
		Token:   token,
		Type:    "Bearer",
		Message: "login successful",
	})
}

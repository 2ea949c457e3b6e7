// ABOUTME: HTTP handlers for the owner-scoped /tasks endpoints
// ABOUTME: Every store call carries the authenticated user's ID as the owner key

package server

import (
	"encoding/json"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/2389/taskdeck/internal/auth"
	"github.com/2389/taskdeck/internal/store"
)

// TaskRequest is the JSON request body for POST /tasks and PUT /tasks/{id}.
// All fields are optional pointers so a partial update can distinguish
// "absent" from "set to zero value".
type TaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// TaskResponse is the JSON representation of a task. The owner is implied by
// the token that fetched it and never serialized.
type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func taskResponse(t *store.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// validate collects field violations. requireTitle is set on creation, where
// a missing title is an error rather than "keep the old one".
func (req *TaskRequest) validate(requireTitle bool) []string {
	var details []string

	if req.Title == nil {
		if requireTitle {
			details = append(details, "title: is required")
		}
	} else {
		titleLen := utf8.RuneCountInString(*req.Title)
		if titleLen < 1 || titleLen > 200 {
			details = append(details, "title: must be between 1 and 200 characters")
		}
	}

	if req.Description != nil && utf8.RuneCountInString(*req.Description) > 1000 {
		details = append(details, "description: must not exceed 1000 characters")
	}

	return details
}

// writeJSON writes a JSON response with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "error", err)
	}
}

// handleCreateTask handles POST /tasks requests. The owner is always the
// authenticated user; the request body has no say in it.
func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.MustFromContext(r.Context())

	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "Invalid Request", "request body is not valid JSON", nil)
		return
	}

	if details := req.validate(true); details != nil {
		s.writeError(w, r, http.StatusBadRequest, "Validation Error", "invalid task data", details)
		return
	}

	task := &store.Task{
		OwnerID: authCtx.UserID,
		Title:   *req.Title,
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if err := s.store.CreateTask(r.Context(), task); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, taskResponse(task))
}

// handleListTasks handles GET /tasks requests, returning all tasks owned by
// the authenticated user.
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.MustFromContext(r.Context())

	tasks, err := s.store.ListTasks(r.Context(), authCtx.UserID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	resp := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, taskResponse(t))
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// handleGetTask handles GET /tasks/{id} requests.
func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.MustFromContext(r.Context())

	task, err := s.store.GetTask(r.Context(), r.PathValue("id"), authCtx.UserID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, taskResponse(task))
}

// handleUpdateTask handles PUT /tasks/{id} requests. Only fields present in
// the body change; absent fields keep their stored values.
func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.MustFromContext(r.Context())

	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "Invalid Request", "request body is not valid JSON", nil)
		return
	}

	if details := req.validate(false); details != nil {
		s.writeError(w, r, http.StatusBadRequest, "Validation Error", "invalid task data", details)
		return
	}

	patch := store.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}

	task, err := s.store.UpdateTask(r.Context(), r.PathValue("id"), authCtx.UserID, patch)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, taskResponse(task))
}

// handleDeleteTask handles DELETE /tasks/{id} requests.
func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.MustFromContext(r.Context())

	if err := s.store.DeleteTask(r.Context(), r.PathValue("id"), authCtx.UserID); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

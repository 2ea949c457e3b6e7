// ABOUTME: Owner-scoped task persistence methods for the SQLite store
// ABOUTME: Every query and mutation is keyed by (task id, owner id)

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateTask creates a new task. The caller stamps OwnerID from the
// authenticated user; this method never derives it from anything else.
func (s *SQLiteStore) CreateTask(ctx context.Context, task *Task) error {
	if task.OwnerID == "" {
		return fmt.Errorf("creating task: owner id is required")
	}
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	now := time.Now()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	task.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (id, owner_id, title, description, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, task.ID, task.OwnerID, task.Title, task.Description, task.Completed,
		formatTime(task.CreatedAt), formatTime(task.UpdatedAt))
	if err != nil {
		return fmt.Errorf("creating task: %w", err)
	}

	return nil
}

// GetTask retrieves a task by (id, ownerID). A task that exists but belongs to
// a different owner is reported as ErrTaskNotFound, same as a missing one.
func (s *SQLiteStore) GetTask(ctx context.Context, id, ownerID string) (*Task, error) {
	var t Task
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, owner_id, title, description, completed, created_at, updated_at
		FROM tasks WHERE id = ? AND owner_id = ?
	`, id, ownerID).Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Completed, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting task: %w", err)
	}

	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &t, nil
}

// ListTasks lists all tasks owned by the given user, oldest first.
func (s *SQLiteStore) ListTasks(ctx context.Context, ownerID string) ([]*Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, title, description, completed, created_at, updated_at
		FROM tasks WHERE owner_id = ?
		ORDER BY created_at ASC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*Task{}
	for rows.Next() {
		var t Task
		var createdAt, updatedAt string
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Completed, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		if t.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", err)
		}
		tasks = append(tasks, &t)
	}

	return tasks, rows.Err()
}

// UpdateTask applies a partial update to a task owned by ownerID. Nil patch
// fields keep the stored values; updated_at always advances. Returns the
// updated task, or ErrTaskNotFound when no row matches (id, ownerID).
func (s *SQLiteStore) UpdateTask(ctx context.Context, id, ownerID string, patch TaskPatch) (*Task, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET
			title       = COALESCE(?, title),
			description = COALESCE(?, description),
			completed   = COALESCE(?, completed),
			updated_at  = ?
		WHERE id = ? AND owner_id = ?
	`, patch.Title, patch.Description, patch.Completed,
		formatTime(time.Now()), id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}
	if n == 0 {
		return nil, ErrTaskNotFound
	}

	return s.GetTask(ctx, id, ownerID)
}

// DeleteTask deletes a task owned by ownerID. The delete statement itself
// carries the owner predicate, so the existence check and the deletion can
// never disagree about ownership.
func (s *SQLiteStore) DeleteTask(ctx context.Context, id, ownerID string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM tasks WHERE id = ? AND owner_id = ?
	`, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	if n == 0 {
		return ErrTaskNotFound
	}

	return nil
}

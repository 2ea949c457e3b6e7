// ABOUTME: Store interfaces and data types for taskdeck persistence
// ABOUTME: Defines User, Task structs and the store interfaces for database operations

package store

import (
	"context"
	"errors"
	"time"
)

// ErrUserNotFound is returned when a requested user does not exist
var ErrUserNotFound = errors.New("user not found")

// ErrTaskNotFound is returned when a task does not exist or belongs to another
// user. The two cases are deliberately indistinguishable so task IDs cannot be
// probed across accounts.
var ErrTaskNotFound = errors.New("task not found")

// ErrUsernameExists is returned when a username unique constraint is violated
var ErrUsernameExists = errors.New("username already exists")

// ErrEmailExists is returned when an email unique constraint is violated
var ErrEmailExists = errors.New("email already exists")

// User represents a registered account
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Task represents a single task owned by a user. OwnerID is set at creation
// and never reassigned.
type Task struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskPatch carries a partial task update. Nil fields leave the stored value
// untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// UserStore defines the interface for user persistence
type UserStore interface {
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// TaskStore defines the interface for owner-scoped task persistence. Every
// read and mutation takes the owner ID alongside the task ID, never the task
// ID alone.
type TaskStore interface {
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id, ownerID string) (*Task, error)
	ListTasks(ctx context.Context, ownerID string) ([]*Task, error)
	UpdateTask(ctx context.Context, id, ownerID string, patch TaskPatch) (*Task, error)
	DeleteTask(ctx context.Context, id, ownerID string) error
}

// ABOUTME: User registration, login, and token resolution for taskdeck
// ABOUTME: Hashes passwords with bcrypt and mints JWTs on success

package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/2389/taskdeck/internal/auth"
	"github.com/2389/taskdeck/internal/store"
)

// Auth errors
var (
	ErrUsernameTaken  = errors.New("username already in use")
	ErrEmailTaken     = errors.New("email already in use")
	ErrUserNotFound   = errors.New("user not found")
	ErrBadCredentials = errors.New("invalid username or password")

	// ErrUserVanished is returned when a token verifies but its subject no
	// longer resolves to a user (deleted after issuance). Kept distinct from
	// token errors so it isn't mistaken for a forged credential.
	ErrUserVanished = errors.New("token subject no longer exists")
)

// dummyHash is compared against when the user lookup fails so the login path
// takes the same time whether or not the username exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Service handles user registration, authentication, and token issuance.
type Service struct {
	users    store.UserStore
	verifier *auth.JWTVerifier
	tokenTTL time.Duration
	logger   *slog.Logger
}

// New creates a user service over the given store and token verifier.
func New(users store.UserStore, verifier *auth.JWTVerifier, tokenTTL time.Duration) *Service {
	return &Service{
		users:    users,
		verifier: verifier,
		tokenTTL: tokenTTL,
		logger:   slog.Default().With("component", "users"),
	}
}

// Register creates a new user with a bcrypt-hashed password. The username
// check runs before the email check, so when both are taken the username
// error wins. The pre-checks are advisory: if a concurrent registration
// slips past them, the store's unique constraint reports the same taken
// error.
func (s *Service) Register(ctx context.Context, username, email, password string) (*store.User, error) {
	taken, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("checking username: %w", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	taken, err = s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &store.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameExists):
			return nil, ErrUsernameTaken
		case errors.Is(err, store.ErrEmailExists):
			return nil, ErrEmailTaken
		default:
			return nil, fmt.Errorf("creating user: %w", err)
		}
	}

	s.logger.Info("user registered", "username", username)
	return user, nil
}

// Authenticate verifies a password against the stored hash, looking the user
// up by username first and falling back to email.
func (s *Service) Authenticate(ctx context.Context, usernameOrEmail, password string) (*store.User, error) {
	user, err := s.users.GetUserByUsername(ctx, usernameOrEmail)
	if errors.Is(err, store.ErrUserNotFound) {
		user, err = s.users.GetUserByEmail(ctx, usernameOrEmail)
	}
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Dummy comparison keeps timing constant so usernames cannot be
			// enumerated through the login endpoint
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}

	return user, nil
}

// IssueToken mints a bearer token whose subject is the user's ID.
func (s *Service) IssueToken(user *store.User) (string, error) {
	return s.verifier.Generate(user.ID, s.tokenTTL)
}

// ResolveToken verifies a bearer token and loads the user it was issued for.
// Token errors pass through unchanged; a verified token whose subject no
// longer exists yields ErrUserVanished.
func (s *Service) ResolveToken(ctx context.Context, token string) (*store.User, error) {
	subject, err := s.verifier.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUser(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserVanished
		}
		return nil, fmt.Errorf("loading token subject: %w", err)
	}

	return user, nil
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/adisyon/internal/models"
)

// DefaultMinPasswordLen admits the café's historical admin password.
const DefaultMinPasswordLen = 3

// Errors returned by the user store. Login maps every credential failure to
// ErrInvalidCredentials so callers cannot enumerate usernames.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWeakPassword       = errors.New("password is too short")
	ErrUserExists         = errors.New("username already registered")
	ErrMissingUsername    = errors.New("username is required")
)

// UserStorage defines the interface for user persistence operations.
// Lookups return a nil user and no error when the user does not exist.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// PasswordAuthenticator implements password-based authentication using bcrypt.
type PasswordAuthenticator struct {
	storage UserStorage
	minLen  int
}

// NewPasswordAuthenticator creates a new password-based authenticator.
// A minLen of zero or less falls back to DefaultMinPasswordLen.
func NewPasswordAuthenticator(storage UserStorage, minLen int) *PasswordAuthenticator {
	if minLen <= 0 {
		minLen = DefaultMinPasswordLen
	}
	return &PasswordAuthenticator{
		storage: storage,
		minLen:  minLen,
	}
}

// ValidateCredential checks if the password meets the minimum length.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < a.minLen {
		return fmt.Errorf("%w: need at least %d characters", ErrWeakPassword, a.minLen)
	}
	return nil
}

// Register creates a new user account with a hashed password.
func (a *PasswordAuthenticator) Register(ctx context.Context, username, credential string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrMissingUsername
	}
	if err := a.ValidateCredential(credential); err != nil {
		return nil, err
	}

	existing, err := a.storage.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(username, string(hashedPassword))
	if err := a.storage.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies the username and password, returning the user if valid.
// Any mismatch, including an unknown username, is ErrInvalidCredentials.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, username, credential string) (*models.User, error) {
	user, err := a.storage.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// EnsureUser registers username unless it already exists. It is used to
// seed the admin account at startup; an existing account keeps its password.
func (a *PasswordAuthenticator) EnsureUser(ctx context.Context, username, credential string) (*models.User, error) {
	user, err := a.Register(ctx, username, credential)
	if errors.Is(err, ErrUserExists) {
		slog.Debug("User already exists, not seeding", "username", username)
		return a.storage.GetUserByUsername(ctx, strings.TrimSpace(username))
	}
	if err != nil {
		return nil, err
	}
	slog.Info("Seeded user account", "user_id", user.ID, "username", user.Username)
	return user, nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/yukikurage/notes-api/internal/models"
)

// ErrVersionConflict is returned when a conditional write finds that the row
// changed since the caller read it.
var ErrVersionConflict = errors.New("note repository: version conflict")

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	// Create inserts a new note
	Create(ctx context.Context, note *models.Note) error

	// FindByID finds a note by ID with optional preloading
	FindByID(ctx context.Context, id string, preload ...string) (*models.Note, error)

	// FindOwned finds a note by ID that belongs to the user, optionally
	// restricted to a collection
	FindOwned(ctx context.Context, userID uint64, id string, collection models.Collection) (*models.Note, error)

	// ListByCollection returns every note of the user in the collection
	ListByCollection(ctx context.Context, userID uint64, collection models.Collection) ([]models.Note, error)

	// UpdateFields writes the given columns to the note only if its version
	// still equals expectedVersion, and bumps the version
	UpdateFields(ctx context.Context, userID uint64, id string, expectedVersion int, fields NoteFields) error

	// Delete removes a note owned by the user
	Delete(ctx context.Context, userID uint64, id string) (bool, error)
}

// NoteFields holds the columns a note update may touch. Nil means untouched.
type NoteFields struct {
	Title       *string
	Content     *string
	Colour      *models.Colour
	IsFavourite *bool
	IsArchived  *bool
	IsPublic    *bool
	LastUpdate  *time.Time
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// UpdatePasswordAndConsumeToken sets a new password hash and deletes the
	// reset token in one transaction
	UpdatePasswordAndConsumeToken(ctx context.Context, userID uint64, passwordHash string, tokenID uint64) error

	// Delete removes the user with their notes and preferences
	Delete(ctx context.Context, id uint64) error
}

// PreferencesRepository defines the interface for per-user preferences
type PreferencesRepository interface {
	// FindByUserID returns the stored preferences of a user
	FindByUserID(ctx context.Context, userID uint64) (*models.Preferences, error)

	// Upsert creates or replaces the preferences row of prefs.UserID
	Upsert(ctx context.Context, prefs *models.Preferences) error
}

// PasswordResetRepository defines the interface for password reset tokens
type PasswordResetRepository interface {
	// Create stores a new token
	Create(ctx context.Context, token *models.PasswordResetToken) error

	// FindByToken finds a token by its value
	FindByToken(ctx context.Context, token string) (*models.PasswordResetToken, error)

	// DeleteByEmail removes every outstanding token of an email
	DeleteByEmail(ctx context.Context, email string) error
}

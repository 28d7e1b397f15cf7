package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/notes-api/internal/models"
	"github.com/yukikurage/notes-api/internal/repository"
	"gorm.io/gorm"
)

var ErrInvalidNoteFormat = errors.New("note format must be full or slim")

// PreferencesService handles per-user display preferences
type PreferencesService struct {
	prefsRepo repository.PreferencesRepository
}

func NewPreferencesService(prefsRepo repository.PreferencesRepository) *PreferencesService {
	return &PreferencesService{prefsRepo: prefsRepo}
}

// UpdatePreferencesInput represents a partial preferences update
type UpdatePreferencesInput struct {
	UserID     uint64
	NoteFormat *models.NoteFormat
	FullNote   *bool
}

// GetPreferences returns the stored preferences or the defaults when the
// user has none. No row is created on read.
func (s *PreferencesService) GetPreferences(ctx context.Context, userID uint64) (models.Preferences, error) {
	prefs, err := s.prefsRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DefaultPreferences(userID), nil
		}
		return models.Preferences{}, fmt.Errorf("failed to find preferences: %w", err)
	}
	return *prefs, nil
}

// UpdatePreferences merges the input into the current preferences and stores them
func (s *PreferencesService) UpdatePreferences(ctx context.Context, input UpdatePreferencesInput) (models.Preferences, error) {
	if input.NoteFormat != nil && !input.NoteFormat.Valid() {
		return models.Preferences{}, ErrInvalidNoteFormat
	}

	prefs, err := s.GetPreferences(ctx, input.UserID)
	if err != nil {
		return models.Preferences{}, err
	}

	if input.NoteFormat != nil {
		prefs.NoteFormat = *input.NoteFormat
	}
	if input.FullNote != nil {
		prefs.FullNote = *input.FullNote
	}

	if err := s.prefsRepo.Upsert(ctx, &prefs); err != nil {
		return models.Preferences{}, fmt.Errorf("failed to save preferences: %w", err)
	}
	return prefs, nil
}

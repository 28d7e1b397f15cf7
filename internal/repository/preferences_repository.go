package repository

import (
	"context"

	"github.com/yukikurage/notes-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPreferencesRepository is a GORM implementation of PreferencesRepository
type GormPreferencesRepository struct {
	db *gorm.DB
}

// NewPreferencesRepository creates a new PreferencesRepository
func NewPreferencesRepository(db *gorm.DB) PreferencesRepository {
	return &GormPreferencesRepository{db: db}
}

// FindByUserID returns the stored preferences of a user
func (r *GormPreferencesRepository) FindByUserID(ctx context.Context, userID uint64) (*models.Preferences, error) {
	var prefs models.Preferences
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		return nil, err
	}
	return &prefs, nil
}

// Upsert creates or replaces the preferences row of prefs.UserID
func (r *GormPreferencesRepository) Upsert(ctx context.Context, prefs *models.Preferences) error {
	// the row is keyed by user_id; a stale primary key would conflict first
	prefs.ID = 0
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"note_format", "full_note"}),
		}).
		Create(prefs).Error
}

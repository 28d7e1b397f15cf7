package repository

import (
	"context"

	"github.com/yukikurage/notes-api/internal/database"
	"github.com/yukikurage/notes-api/internal/models"
	"gorm.io/gorm"
)

// GormNoteRepository is a GORM implementation of NoteRepository
type GormNoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &GormNoteRepository{db: db}
}

// Create inserts a new note
func (r *GormNoteRepository) Create(ctx context.Context, note *models.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

// FindByID finds a note by ID with optional preloading
func (r *GormNoteRepository) FindByID(ctx context.Context, id string, preload ...string) (*models.Note, error) {
	var note models.Note
	query := r.db.WithContext(ctx)

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Where("id = ?", id).First(&note).Error; err != nil {
		return nil, err
	}

	return &note, nil
}

// FindOwned finds a note by ID within the user's notes
func (r *GormNoteRepository) FindOwned(ctx context.Context, userID uint64, id string, collection models.Collection) (*models.Note, error) {
	var note models.Note
	query := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID)
	if collection != "" {
		query = query.Scopes(database.InCollection(collection))
	}

	if err := query.First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// ListByCollection returns every note of the user in the collection
func (r *GormNoteRepository) ListByCollection(ctx context.Context, userID uint64, collection models.Collection) ([]models.Note, error) {
	notes := []models.Note{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Scopes(database.InCollection(collection)).
		Order("created_at ASC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// UpdateFields performs a version-checked write of the supplied columns
func (r *GormNoteRepository) UpdateFields(ctx context.Context, userID uint64, id string, expectedVersion int, fields NoteFields) error {
	updates := map[string]interface{}{
		"version": gorm.Expr("version + ?", 1),
	}
	if fields.Title != nil {
		updates["title"] = *fields.Title
	}
	if fields.Content != nil {
		updates["content"] = *fields.Content
	}
	if fields.Colour != nil {
		updates["colour"] = *fields.Colour
	}
	if fields.IsFavourite != nil {
		updates["is_favourite"] = *fields.IsFavourite
	}
	if fields.IsArchived != nil {
		updates["is_archived"] = *fields.IsArchived
	}
	if fields.IsPublic != nil {
		updates["is_public"] = *fields.IsPublic
	}
	if fields.LastUpdate != nil {
		updates["last_update"] = *fields.LastUpdate
	}

	result := r.db.WithContext(ctx).
		Model(&models.Note{}).
		Where("id = ? AND user_id = ? AND version = ?", id, userID, expectedVersion).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}

// Delete removes a note owned by the user
func (r *GormNoteRepository) Delete(ctx context.Context, userID uint64, id string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Note{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

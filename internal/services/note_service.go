package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yukikurage/notes-api/internal/models"
	"github.com/yukikurage/notes-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrNoteNotFound      = errors.New("note not found")
	ErrNoteNotVisible    = errors.New("you can't see this note")
	ErrTitleRequired     = errors.New("title is required")
	ErrTitleEmpty        = errors.New("title cannot be empty")
	ErrInvalidColour     = errors.New("invalid colour")
	ErrInvalidCollection = errors.New("invalid collection")
	ErrVersionConflict   = errors.New("note was modified by another request")
)

// NoteService handles note business logic
type NoteService struct {
	noteRepo repository.NoteRepository
	now      func() time.Time
}

// NewNoteService creates a new NoteService
func NewNoteService(noteRepo repository.NoteRepository) *NoteService {
	return &NoteService{
		noteRepo: noteRepo,
		now:      time.Now,
	}
}

// ListNotesInput represents the collection and presentation options for a list
type ListNotesInput struct {
	UserID     uint64
	Collection models.Collection
	Search     string
	Sort       SortKey
}

// ListNotesResult is the filtered and ordered collection together with the
// normalized search term
type ListNotesResult struct {
	Notes  []models.Note
	Search string
}

// CreateNoteInput represents input for creating a note
type CreateNoteInput struct {
	OwnerID uint64
	Title   string
	Content string
	Colour  models.Colour
}

// UpdateNoteInput represents a partial note update. Nil fields are left as is.
type UpdateNoteInput struct {
	UserID          uint64
	NoteID          string
	Collection      models.Collection
	Title           *string
	Content         *string
	Colour          *models.Colour
	IsFavourite     *bool
	IsArchived      *bool
	IsPublic        *bool
	ExpectedVersion *int
}

// NoteView is a note as presented to a particular viewer
type NoteView struct {
	Note     models.Note
	Owner    models.User
	FullNote bool
	IsOwner  bool
}

// ListNotes returns the user's notes in a collection, filtered by title and sorted
func (s *NoteService) ListNotes(ctx context.Context, input ListNotesInput) (*ListNotesResult, error) {
	if input.Collection == "" {
		input.Collection = models.CollectionOrdinary
	}
	if !input.Collection.Valid() {
		return nil, ErrInvalidCollection
	}

	notes, err := s.noteRepo.ListByCollection(ctx, input.UserID, input.Collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	matched, term := FilterNotes(notes, input.Search)
	return &ListNotesResult{
		Notes:  Sort(matched, input.Sort),
		Search: term,
	}, nil
}

// GetNote returns a note with its owner and the owner's preferences
func (s *NoteService) GetNote(ctx context.Context, noteID string) (*models.Note, error) {
	note, err := s.noteRepo.FindByID(ctx, noteID, "Owner", "Owner.Preferences")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}
	return note, nil
}

// ViewNote loads a note and checks that viewerID may see it. The returned
// view carries the owner's full-note preference.
func (s *NoteService) ViewNote(ctx context.Context, viewerID uint64, noteID string) (*NoteView, error) {
	note, err := s.GetNote(ctx, noteID)
	if err != nil {
		return nil, err
	}

	if !IsVisible(viewerID, *note) {
		return nil, ErrNoteNotVisible
	}

	return &NoteView{
		Note:     *note,
		Owner:    note.Owner,
		FullNote: ResolveFullNote(note.Owner.Preferences),
		IsOwner:  viewerID == note.UserID,
	}, nil
}

// CreateNote creates a note owned by input.OwnerID. CreatedAt and LastUpdate
// are stamped with the same instant.
func (s *NoteService) CreateNote(ctx context.Context, input CreateNoteInput) (*models.Note, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if !input.Colour.Valid() {
		return nil, ErrInvalidColour
	}

	now := s.timestamp()
	note := &models.Note{
		Title:      input.Title,
		Content:    input.Content,
		Colour:     input.Colour,
		CreatedAt:  now,
		LastUpdate: now,
		UserID:     input.OwnerID,
		Version:    1,
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"note_id": note.ID,
		"user_id": note.UserID,
	}).Debug("Note created")

	return note, nil
}

// UpdateNote merges the supplied fields into the user's note. The write is
// conditional on the version read here, so two overlapping edits cannot
// silently overwrite each other.
func (s *NoteService) UpdateNote(ctx context.Context, input UpdateNoteInput) (*models.Note, error) {
	if input.Collection != "" && !input.Collection.Valid() {
		return nil, ErrInvalidCollection
	}

	note, err := s.noteRepo.FindOwned(ctx, input.UserID, input.NoteID, input.Collection)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}

	if input.ExpectedVersion != nil && *input.ExpectedVersion != note.Version {
		return nil, ErrVersionConflict
	}

	fields := repository.NoteFields{
		Content:     input.Content,
		IsFavourite: input.IsFavourite,
		IsArchived:  input.IsArchived,
		IsPublic:    input.IsPublic,
	}
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleEmpty
		}
		fields.Title = input.Title
	}
	if input.Colour != nil {
		if !input.Colour.Valid() {
			return nil, ErrInvalidColour
		}
		fields.Colour = input.Colour
	}
	if input.Title != nil || input.Content != nil {
		lastUpdate := s.timestamp()
		if lastUpdate.Before(note.CreatedAt) {
			lastUpdate = note.CreatedAt
		}
		fields.LastUpdate = &lastUpdate
	}

	if err := s.noteRepo.UpdateFields(ctx, input.UserID, note.ID, note.Version, fields); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, ErrVersionConflict
		}
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	updated, err := s.noteRepo.FindOwned(ctx, input.UserID, note.ID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to reload note: %w", err)
	}
	return updated, nil
}

// DeleteNote removes a note owned by userID
func (s *NoteService) DeleteNote(ctx context.Context, userID uint64, noteID string) error {
	deleted, err := s.noteRepo.Delete(ctx, userID, noteID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if !deleted {
		return ErrNoteNotFound
	}
	return nil
}

func (s *NoteService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

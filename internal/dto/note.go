package dto

import (
	"time"

	"github.com/yukikurage/notes-api/internal/models"
	"github.com/yukikurage/notes-api/internal/services"
	"github.com/yukikurage/notes-api/internal/utils"
)

// NoteDTO represents a note in API responses
type NoteDTO struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Content     string        `json:"content"`
	Colour      models.Colour `json:"colour"`
	CreatedAt   time.Time     `json:"created_at"`
	LastUpdate  time.Time     `json:"last_update"`
	IsFavourite bool          `json:"is_favourite"`
	IsArchived  bool          `json:"is_archived"`
	IsPublic    bool          `json:"is_public"`
	OwnerID     uint64        `json:"owner_id"`
	Version     int           `json:"version"`
}

// NoteDetailDTO is a single note as seen by a viewer
type NoteDetailDTO struct {
	NoteDTO
	Owner    OwnerDTO `json:"owner"`
	FullNote bool     `json:"full_note"`
	IsOwner  bool     `json:"is_owner"`
}

// NoteListResponse represents a filtered, sorted and paginated collection
type NoteListResponse struct {
	Notes      []NoteDTO                `json:"notes"`
	Collection models.Collection        `json:"collection"`
	Search     string                   `json:"search"`
	Sort       string                   `json:"sort"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// Conversion functions

// ToNoteDTO converts a Note model to NoteDTO
func ToNoteDTO(note models.Note) NoteDTO {
	return NoteDTO{
		ID:          note.ID,
		Title:       note.Title,
		Content:     note.Content,
		Colour:      note.Colour,
		CreatedAt:   note.CreatedAt,
		LastUpdate:  note.LastUpdate,
		IsFavourite: note.IsFavourite,
		IsArchived:  note.IsArchived,
		IsPublic:    note.IsPublic,
		OwnerID:     note.UserID,
		Version:     note.Version,
	}
}

// ToNoteDetailDTO converts a NoteView to NoteDetailDTO
func ToNoteDetailDTO(view services.NoteView) NoteDetailDTO {
	return NoteDetailDTO{
		NoteDTO: ToNoteDTO(view.Note),
		Owner: OwnerDTO{
			ID:   view.Owner.ID,
			Name: view.Owner.Name,
		},
		FullNote: view.FullNote,
		IsOwner:  view.IsOwner,
	}
}

// ToNoteListResponse converts one page of notes to NoteListResponse
func ToNoteListResponse(notes []models.Note, collection models.Collection, search string, sort services.SortKey, params utils.PaginationParams, total int) NoteListResponse {
	items := make([]NoteDTO, len(notes))
	for i, note := range notes {
		items[i] = ToNoteDTO(note)
	}

	return NoteListResponse{
		Notes:      items,
		Collection: collection,
		Search:     search,
		Sort:       string(sort),
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int64(total),
		},
	}
}

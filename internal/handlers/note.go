package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yukikurage/notes-api/internal/dto"
	apierrors "github.com/yukikurage/notes-api/internal/errors"
	"github.com/yukikurage/notes-api/internal/middleware"
	"github.com/yukikurage/notes-api/internal/models"
	"github.com/yukikurage/notes-api/internal/services"
	"github.com/yukikurage/notes-api/internal/utils"
)

type NoteHandler struct {
	noteService *services.NoteService
}

func NewNoteHandler(noteService *services.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// ListNotes returns one collection of the current user's notes.
// Query: collection (ordinary|favourite|archived), search, sort, page, limit.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	collection := models.Collection(c.DefaultQuery("collection", string(models.CollectionOrdinary)))
	sortKey := services.ParseSortKey(c.Query("sort"))

	result, err := h.noteService.ListNotes(c.Request.Context(), services.ListNotesInput{
		UserID:     userID,
		Collection: collection,
		Search:     c.Query("search"),
		Sort:       sortKey,
	})
	if err != nil {
		respondNoteError(c, err)
		return
	}

	params := utils.GetPaginationParams(c)
	page := utils.PaginateSlice(result.Notes, params)

	c.JSON(http.StatusOK, dto.ToNoteListResponse(page, collection, result.Search, sortKey, params, len(result.Notes)))
}

// GetNote returns a single note.
// The note is loaded and visibility-checked by RequireNoteVisible.
func (h *NoteHandler) GetNote(c *gin.Context) {
	view, exists := middleware.GetNoteView(c)
	if !exists {
		apierrors.InternalError(c, "Note not found in context")
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteDetailDTO(view))
}

// CreateNote creates a new note owned by the current user
func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateNoteRequest struct {
		Title   string        `json:"title" binding:"required"`
		Content string        `json:"content"`
		Colour  models.Colour `json:"colour" binding:"required"`
	}

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	note, err := h.noteService.CreateNote(c.Request.Context(), services.CreateNoteInput{
		OwnerID: userID,
		Title:   req.Title,
		Content: req.Content,
		Colour:  req.Colour,
	})
	if err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToNoteDTO(*note))
}

// UpdateNote applies a partial update to one of the current user's notes.
// Sending "version" makes the update fail with 409 if the note changed since.
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateNoteRequest struct {
		Title       *string        `json:"title"`
		Content     *string        `json:"content"`
		Colour      *models.Colour `json:"colour"`
		IsFavourite *bool          `json:"is_favourite"`
		IsArchived  *bool          `json:"is_archived"`
		IsPublic    *bool          `json:"is_public"`
		Version     *int           `json:"version"`
	}

	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	note, err := h.noteService.UpdateNote(c.Request.Context(), services.UpdateNoteInput{
		UserID:          userID,
		NoteID:          c.Param("id"),
		Collection:      models.Collection(c.Query("collection")),
		Title:           req.Title,
		Content:         req.Content,
		Colour:          req.Colour,
		IsFavourite:     req.IsFavourite,
		IsArchived:      req.IsArchived,
		IsPublic:        req.IsPublic,
		ExpectedVersion: req.Version,
	})
	if err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteDTO(*note))
}

// DeleteNote deletes one of the current user's notes
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.noteService.DeleteNote(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Note deleted successfully",
	})
}

func respondNoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoteNotFound):
		apierrors.NotFound(c, "Note not found")
	case errors.Is(err, services.ErrNoteNotVisible):
		apierrors.NotVisible(c, "")
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrTitleEmpty),
		errors.Is(err, services.ErrInvalidColour),
		errors.Is(err, services.ErrInvalidCollection):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrVersionConflict):
		apierrors.Conflict(c, err.Error())
	default:
		logrus.WithError(err).Error("Unhandled note error")
		apierrors.InternalError(c, "Internal server error")
	}
}

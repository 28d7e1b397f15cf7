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
)

type PreferencesHandler struct {
	prefsService *services.PreferencesService
}

func NewPreferencesHandler(prefsService *services.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{prefsService: prefsService}
}

// GetPreferences returns the current user's preferences, or the defaults
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	prefs, err := h.prefsService.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		logrus.WithError(err).Error("Failed to load preferences")
		apierrors.InternalError(c, "Failed to load preferences")
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferencesDTO(prefs))
}

// UpdatePreferences stores the supplied preference fields
func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdatePreferencesRequest struct {
		NoteFormat *models.NoteFormat `json:"note_format"`
		FullNote   *bool              `json:"full_note"`
	}

	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	prefs, err := h.prefsService.UpdatePreferences(c.Request.Context(), services.UpdatePreferencesInput{
		UserID:     userID,
		NoteFormat: req.NoteFormat,
		FullNote:   req.FullNote,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidNoteFormat) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		logrus.WithError(err).Error("Failed to save preferences")
		apierrors.InternalError(c, "Failed to save preferences")
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferencesDTO(prefs))
}

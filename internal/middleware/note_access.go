package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yukikurage/notes-api/internal/constants"
	apierrors "github.com/yukikurage/notes-api/internal/errors"
	"github.com/yukikurage/notes-api/internal/services"
)

// RequireNoteVisible loads the note named by the :id parameter and checks
// that the current viewer may see it. Anonymous viewers see public notes only.
// Missing notes and hidden notes produce distinct responses.
func RequireNoteVisible(noteService *services.NoteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		noteID := c.Param("id")
		if _, err := uuid.Parse(noteID); err != nil {
			apierrors.NotFound(c, "Note not found")
			c.Abort()
			return
		}

		viewerID, ok := GetUserID(c)
		if !ok {
			viewerID = services.AnonymousViewer
		}

		view, err := noteService.ViewNote(c.Request.Context(), viewerID, noteID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoteNotFound):
				apierrors.NotFound(c, "Note not found")
			case errors.Is(err, services.ErrNoteNotVisible):
				apierrors.NotVisible(c, "")
			default:
				logrus.WithError(err).WithField("note_id", noteID).Error("Failed to load note")
				apierrors.InternalError(c, "Failed to load note")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyNote, *view)
		c.Next()
	}
}

// GetNoteView retrieves the note loaded by RequireNoteVisible
func GetNoteView(c *gin.Context) (services.NoteView, bool) {
	value, exists := c.Get(constants.ContextKeyNote)
	if !exists {
		return services.NoteView{}, false
	}
	view, ok := value.(services.NoteView)
	return view, ok
}

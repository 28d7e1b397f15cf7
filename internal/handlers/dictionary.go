package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	apierrors "github.com/yukikurage/notes-api/internal/errors"
	"github.com/yukikurage/notes-api/internal/services"
)

type DictionaryHandler struct {
	dictionaryService *services.DictionaryService
}

func NewDictionaryHandler(dictionaryService *services.DictionaryService) *DictionaryHandler {
	return &DictionaryHandler{dictionaryService: dictionaryService}
}

// Lookup returns the definition of the :word parameter
func (h *DictionaryHandler) Lookup(c *gin.Context) {
	word := c.Param("word")

	definition, err := h.dictionaryService.Lookup(c.Request.Context(), word)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWordRequired):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrWordNotFound):
			apierrors.NotFound(c, "No definitions found for "+word)
		case errors.Is(err, services.ErrUpstreamFailure):
			logrus.WithError(err).WithField("word", word).Warn("Dictionary lookup failed")
			apierrors.BadGateway(c, "Dictionary service is unavailable, try again later")
		default:
			logrus.WithError(err).Error("Unhandled dictionary error")
			apierrors.InternalError(c, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, definition)
}

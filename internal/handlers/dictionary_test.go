package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "github.com/yukikurage/notes-api/internal/errors"
	"github.com/yukikurage/notes-api/internal/services"
)

func setupDictionaryRouter(t *testing.T, status int, body string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(upstream.Close)

	svc := services.NewDictionaryService(services.DictionaryConfig{BaseURL: upstream.URL}, nil)
	r := gin.New()
	r.GET("/api/dictionary/:word", NewDictionaryHandler(svc).Lookup)
	return r
}

func lookup(r *gin.Engine, word string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/dictionary/"+word, nil))
	return w
}

func TestDictionaryHandler_Lookup(t *testing.T) {
	r := setupDictionaryRouter(t, http.StatusOK, `[{"word":"note","phonetic":"nəʊt","meanings":[{"partOfSpeech":"noun","definitions":[{"definition":"a brief record"}]}]}]`)

	w := lookup(r, "note")
	require.Equal(t, http.StatusOK, w.Code)

	def := decode[services.Definition](t, w)
	assert.Equal(t, "note", def.Word)
	require.Len(t, def.Meanings, 1)
	assert.Equal(t, "a brief record", def.Meanings[0].Definitions[0].Definition)
}

func TestDictionaryHandler_NotFound(t *testing.T) {
	r := setupDictionaryRouter(t, http.StatusNotFound, `{"title":"No Definitions Found"}`)

	w := lookup(r, "qwzx")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDictionaryHandler_UpstreamFailure(t *testing.T) {
	r := setupDictionaryRouter(t, http.StatusServiceUnavailable, `down`)

	w := lookup(r, "note")
	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, apierrors.ErrCodeUpstreamFailure, decode[apierrors.APIError](t, w).Code)
}

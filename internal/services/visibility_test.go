package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/notes-api/internal/models"
	"pgregory.net/rapid"
)

func noteGenerator() *rapid.Generator[models.Note] {
	return rapid.Custom(func(t *rapid.T) models.Note {
		return models.Note{
			ID:       rapid.StringMatching(`[a-f0-9]{8}`).Draw(t, "id"),
			Title:    rapid.StringMatching(`[A-Za-z ]{1,20}`).Draw(t, "title"),
			UserID:   rapid.Uint64Range(1, 1000).Draw(t, "owner"),
			IsPublic: rapid.Bool().Draw(t, "public"),
		}
	})
}

func TestIsVisible_OwnerAlwaysSees(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		note := noteGenerator().Draw(t, "note")
		if !IsVisible(note.UserID, note) {
			t.Fatalf("owner %d cannot see own note", note.UserID)
		}
	})
}

func TestIsVisible_PrivateHiddenFromOthers(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		note := noteGenerator().Draw(t, "note")
		note.IsPublic = false
		viewer := rapid.Uint64Range(0, 1000).Filter(func(v uint64) bool {
			return v != note.UserID
		}).Draw(t, "viewer")

		if IsVisible(viewer, note) {
			t.Fatalf("viewer %d sees private note of %d", viewer, note.UserID)
		}
	})
}

func TestIsVisible_PublicSeenByAnyone(t *testing.T) {
	note := models.Note{UserID: 7, IsPublic: true}

	assert.True(t, IsVisible(AnonymousViewer, note))
	assert.True(t, IsVisible(8, note))
	assert.True(t, IsVisible(7, note))
}

func TestIsVisible_AnonymousPrivate(t *testing.T) {
	assert.False(t, IsVisible(AnonymousViewer, models.Note{UserID: 1}))
}

func TestResolveFullNote(t *testing.T) {
	assert.True(t, ResolveFullNote(nil))
	assert.False(t, ResolveFullNote(&models.Preferences{FullNote: false}))
	assert.True(t, ResolveFullNote(&models.Preferences{FullNote: true}))

	defaults := models.DefaultPreferences(1)
	assert.True(t, ResolveFullNote(&defaults))
}

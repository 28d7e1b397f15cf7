package services

import "github.com/yukikurage/notes-api/internal/models"

// AnonymousViewer is the viewer id used for requests without a session.
// User ids start at 1, so it never matches an owner.
const AnonymousViewer uint64 = 0

// IsVisible reports whether viewerID may see the note: owners always can,
// everyone else only when the note is public.
func IsVisible(viewerID uint64, note models.Note) bool {
	return viewerID == note.UserID || note.IsPublic
}

// ResolveFullNote returns the full-note display preference, defaulting to
// true when the user never stored one.
func ResolveFullNote(prefs *models.Preferences) bool {
	if prefs == nil {
		return true
	}
	return prefs.FullNote
}

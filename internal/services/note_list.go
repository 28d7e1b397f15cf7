package services

import (
	"slices"
	"strings"

	"github.com/yukikurage/notes-api/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortKey string

const (
	SortDateNew SortKey = "date-new"
	SortDateOld SortKey = "date-old"
	SortTitle   SortKey = "title"
	// SortDefault orders by most recently updated first.
	SortDefault SortKey = ""
)

// ParseSortKey maps a query value to a SortKey; unknown values fall back to
// SortDefault.
func ParseSortKey(s string) SortKey {
	switch key := SortKey(strings.TrimSpace(s)); key {
	case SortDateNew, SortDateOld, SortTitle:
		return key
	default:
		return SortDefault
	}
}

type NotePredicate func(models.Note) bool

// TitleContains matches notes whose title contains term, ignoring case.
// An empty term matches every note.
func TitleContains(term string) NotePredicate {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(term))
	return func(n models.Note) bool {
		if needle == "" {
			return true
		}
		return strings.Contains(fold.String(n.Title), needle)
	}
}

// Filter returns the notes satisfying pred in their input order.
func Filter(notes []models.Note, pred NotePredicate) []models.Note {
	matched := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if pred(n) {
			matched = append(matched, n)
		}
	}
	return matched
}

// FilterNotes applies the title search and echoes the normalized term back.
func FilterNotes(notes []models.Note, term string) ([]models.Note, string) {
	term = strings.TrimSpace(term)
	return Filter(notes, TitleContains(term)), term
}

// Sort returns a stably sorted copy of notes. Titles are compared with
// English collation ignoring case, so "apple" and "Apple" keep input order.
func Sort(notes []models.Note, key SortKey) []models.Note {
	sorted := slices.Clone(notes)

	switch key {
	case SortDateNew:
		slices.SortStableFunc(sorted, func(a, b models.Note) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case SortDateOld:
		slices.SortStableFunc(sorted, func(a, b models.Note) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	case SortTitle:
		col := collate.New(language.English, collate.IgnoreCase)
		slices.SortStableFunc(sorted, func(a, b models.Note) int {
			return col.CompareString(a.Title, b.Title)
		})
	default:
		slices.SortStableFunc(sorted, func(a, b models.Note) int {
			return b.LastUpdate.Compare(a.LastUpdate)
		})
	}

	return sorted
}

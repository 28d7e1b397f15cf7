package dto

import "github.com/yukikurage/notes-api/internal/models"

// UserDTO represents a user in API responses
type UserDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Image string `json:"image,omitempty"`
}

// OwnerDTO is the public identity of a note owner
type OwnerDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// PreferencesDTO represents display preferences in API responses
type PreferencesDTO struct {
	NoteFormat models.NoteFormat `json:"note_format"`
	FullNote   bool              `json:"full_note"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Image: user.Image,
	}
}

// ToPreferencesDTO converts a Preferences model to PreferencesDTO
func ToPreferencesDTO(prefs models.Preferences) PreferencesDTO {
	return PreferencesDTO{
		NoteFormat: prefs.NoteFormat,
		FullNote:   prefs.FullNote,
	}
}

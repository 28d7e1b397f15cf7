package models

type NoteFormat string

const (
	NoteFormatFull NoteFormat = "full"
	NoteFormatSlim NoteFormat = "slim"
)

func (f NoteFormat) Valid() bool {
	return f == NoteFormatFull || f == NoteFormatSlim
}

type Preferences struct {
	ID         uint64     `gorm:"primarykey" json:"-"`
	UserID     uint64     `gorm:"uniqueIndex;not null" json:"user_id"`
	NoteFormat NoteFormat `gorm:"type:varchar(10);not null;default:'full'" json:"note_format"`
	FullNote   bool       `gorm:"not null" json:"full_note"`
}

func (Preferences) TableName() string {
	return "users_preferences"
}

// DefaultPreferences is applied whenever a user has no stored record.
func DefaultPreferences(userID uint64) Preferences {
	return Preferences{
		UserID:     userID,
		NoteFormat: NoteFormatFull,
		FullNote:   true,
	}
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Colour string

const (
	ColourTiffany   Colour = "tiffany"
	ColourBlue      Colour = "blue"
	ColourMindaro   Colour = "mindaro"
	ColourSunset    Colour = "sunset"
	ColourMelon     Colour = "melon"
	ColourTickle    Colour = "tickle"
	ColourWisteria  Colour = "wisteria"
	ColourCambridge Colour = "cambridge"
	ColourMikado    Colour = "mikado"
	ColourSlate     Colour = "slate"
)

// Colours is the closed set of theme colours a note may carry. Adding a value
// requires a storage migration.
var Colours = []Colour{
	ColourTiffany,
	ColourBlue,
	ColourMindaro,
	ColourSunset,
	ColourMelon,
	ColourTickle,
	ColourWisteria,
	ColourCambridge,
	ColourMikado,
	ColourSlate,
}

// Valid reports whether c is one of Colours.
func (c Colour) Valid() bool {
	for _, known := range Colours {
		if c == known {
			return true
		}
	}
	return false
}

type Collection string

const (
	CollectionOrdinary  Collection = "ordinary"
	CollectionFavourite Collection = "favourite"
	CollectionArchived  Collection = "archived"
)

func (c Collection) Valid() bool {
	switch c {
	case CollectionOrdinary, CollectionFavourite, CollectionArchived:
		return true
	}
	return false
}

type Note struct {
	ID          string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Colour      Colour    `gorm:"type:varchar(20);not null" json:"colour"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdate  time.Time `gorm:"column:last_update" json:"last_update"`
	IsFavourite bool      `gorm:"not null;default:false" json:"is_favourite"`
	IsArchived  bool      `gorm:"not null;default:false" json:"is_archived"`
	IsPublic    bool      `gorm:"not null;default:false" json:"is_public"`
	UserID      uint64    `gorm:"not null;index" json:"user_id"`
	Version     int       `gorm:"not null;default:1" json:"version"`

	// Relations
	Owner User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate assigns a UUID when the caller did not supply one.
func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

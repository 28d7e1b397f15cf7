package models

import "time"

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(255)" json:"name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Image        string    `gorm:"type:text" json:"image"`
	PasswordHash string    `gorm:"type:varchar(255)" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Notes       []Note       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Preferences *Preferences `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

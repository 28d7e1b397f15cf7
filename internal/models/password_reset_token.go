package models

import "time"

type PasswordResetToken struct {
	ID      uint64    `gorm:"primarykey"`
	Email   string    `gorm:"type:varchar(255);not null;index"`
	Token   string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Expires time.Time `gorm:"not null"`
}

func (t PasswordResetToken) Expired(now time.Time) bool {
	return !now.Before(t.Expires)
}

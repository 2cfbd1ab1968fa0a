package models

import "time"

// Session stores admin login sessions so sign-out can invalidate a token.
type Session struct {
	ID        string    `gorm:"primaryKey;size:64"` // uuid, also the token jti
	AdminID   uint      `gorm:"index;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	Revoked   bool      `gorm:"index;not null"`
	CreatedAt time.Time

	Admin Admin `gorm:"constraint:OnDelete:CASCADE"`
}

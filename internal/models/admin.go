package models

import "time"

// Admin is a back-office operator who signs in to the views.
type Admin struct {
	ID           uint       `gorm:"primaryKey"`
	Username     string     `gorm:"size:64;uniqueIndex;not null"`
	PasswordHash string     `gorm:"size:255;not null"`
	DisplayName  string     `gorm:"size:64"`
	LastLoginAt  *time.Time
	LastLoginIP  string `gorm:"size:64"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Admin) TableName() string { return "Admin" }

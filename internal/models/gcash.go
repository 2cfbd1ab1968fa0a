package models

// GcashAccount is a receiving account offered to tenants for remitting rent.
type GcashAccount struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:128;not null" json:"name"`
	Number string `gorm:"size:32;not null" json:"number"`
}

func (GcashAccount) TableName() string { return "Gcash" }

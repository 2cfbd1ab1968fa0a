package models

import "time"

// Sanction records one complaint and the penalty issued for it.
type Sanction struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	BusinessNumber string         `gorm:"size:32;index;not null" json:"business_number"`
	StoreName      string         `gorm:"size:128" json:"store_name"`
	Complain       string         `gorm:"type:text" json:"complain"`
	Sanction       string         `gorm:"type:text" json:"sanction"`
	Clearance      string         `gorm:"type:text" json:"clearance"`
	Status         SanctionStatus `gorm:"size:16;index;not null;default:Unresolved" json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (Sanction) TableName() string { return "Sanction" }

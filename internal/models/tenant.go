package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tenant rents a stall. BusinessNumber is the key Rent and Sanction rows
// refer to.
type Tenant struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	BusinessNumber string          `gorm:"size:32;uniqueIndex;not null" json:"business_number"`
	TenantName     string          `gorm:"size:128;not null" json:"tenant_name"`
	StoreName      string          `gorm:"size:128;not null" json:"store_name"`
	BusinessType   string          `gorm:"size:64" json:"business_type"`
	Rent           decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"rent"`
	Status         AccountStatus   `gorm:"size:16;not null;default:Pending" json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
}

func (Tenant) TableName() string { return "Tenant" }

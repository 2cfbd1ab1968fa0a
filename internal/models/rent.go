package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rent is one billing period for a tenant. Rent, bills and Total are
// copied at creation and never recomputed.
type Rent struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	BusinessNumber string          `gorm:"size:32;index;not null" json:"business_number"`
	StoreName      string          `gorm:"size:128" json:"store_name"`
	Department     string          `gorm:"size:64" json:"department"`
	Date           string          `gorm:"size:32;not null" json:"date"` // "January 2025"
	Rent           decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"rent"`
	WaterBill      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"water_bill"`
	ElectricBill   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"electric_bill"`
	Total          decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"total"`
	Status         PaymentStatus   `gorm:"size:16;index;not null;default:Pending" json:"status"`
	PaymentMethod  string          `gorm:"size:32" json:"payment_method"`
	Proof          string          `gorm:"size:512" json:"proof"`
	DatePaid       *time.Time      `json:"date_paid"`
	EmployeeName   string          `gorm:"size:128" json:"employee_name"`
	CreatedAt      time.Time       `json:"created_at"`
}

func (Rent) TableName() string { return "Rent" }

// Package billing turns a tenant's rent and the month's utility readings
// into a Rent record.
package billing

import (
	"strings"

	"rental-backoffice/internal/models"

	"github.com/shopspring/decimal"
)

// ParseAmount reads a user-entered amount. Blank or non-numeric input
// counts as zero so a bill can be issued without utilities.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Total is the exact decimal sum of the three components.
func Total(rent, water, electric decimal.Decimal) decimal.Decimal {
	return rent.Add(water).Add(electric)
}

// Draft is the add-bill form for one tenant. Rent is copied from the tenant
// when the draft is opened and stays fixed while the bills are edited.
type Draft struct {
	Tenant   models.Tenant
	Period   Period
	Water    string
	Electric string
}

func NewDraft(t models.Tenant, p Period) Draft {
	return Draft{Tenant: t, Period: p}
}

// SetWater and SetElectric return the updated draft; Total reflects the
// change immediately.
func (d Draft) SetWater(v string) Draft    { d.Water = v; return d }
func (d Draft) SetElectric(v string) Draft { d.Electric = v; return d }

// Total is the running total shown before submission.
func (d Draft) Total() decimal.Decimal {
	return Total(d.Tenant.Rent, ParseAmount(d.Water), ParseAmount(d.Electric))
}

// Rent builds the record to insert. Every amount is a copy; later edits to
// the tenant's rent never reach an issued bill.
func (d Draft) Rent() models.Rent {
	water := ParseAmount(d.Water)
	electric := ParseAmount(d.Electric)
	return models.Rent{
		BusinessNumber: d.Tenant.BusinessNumber,
		StoreName:      d.Tenant.StoreName,
		Department:     d.Tenant.BusinessType,
		Date:           d.Period.String(),
		Rent:           d.Tenant.Rent,
		WaterBill:      water,
		ElectricBill:   electric,
		Total:          Total(d.Tenant.Rent, water, electric),
		Status:         models.PaymentPending,
	}
}

// NewRent is the one-shot form of NewDraft(...).SetWater(...).SetElectric(...).Rent().
func NewRent(t models.Tenant, p Period, water, electric string) models.Rent {
	return NewDraft(t, p).SetWater(water).SetElectric(electric).Rent()
}

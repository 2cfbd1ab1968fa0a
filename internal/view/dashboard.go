package view

import (
	"context"

	"rental-backoffice/internal/models"
	"rental-backoffice/internal/store"
)

// Counts are the four dashboard tiles.
type Counts struct {
	Employees          int `json:"employees"`
	Tenants            int `json:"tenants"`
	PendingPayments    int `json:"pending_payments"`
	UnresolvedSanction int `json:"unresolved_sanctions"`
}

// Dashboard shows the counts and the employee roster with section
// assignment.
type Dashboard struct {
	st        store.Store
	Employees *Employees
	Counts    Counts
}

func NewDashboard(st store.Store) *Dashboard {
	return &Dashboard{st: st, Employees: NewEmployees(st)}
}

func (v *Dashboard) Guard(g *InFlight) *Dashboard {
	v.Employees.Guard(g)
	return v
}

func (v *Dashboard) Load(ctx context.Context) error {
	if err := v.Employees.Load(ctx); err != nil {
		return err
	}
	var tenants []models.Tenant
	if err := v.st.FetchAll(ctx, store.Tenant, &tenants); err != nil {
		return err
	}
	var pending []models.Rent
	if err := v.st.FetchWhere(ctx, store.Rent, store.Eq("status", string(models.PaymentPending)), &pending); err != nil {
		return err
	}
	var open []models.Sanction
	if err := v.st.FetchWhere(ctx, store.Sanction, store.Eq("status", string(models.SanctionUnresolved)), &open); err != nil {
		return err
	}

	v.Counts = Counts{
		Employees:          len(v.Employees.List.Rows()),
		Tenants:            len(tenants),
		PendingPayments:    len(pending),
		UnresolvedSanction: len(open),
	}
	return nil
}

// Assign sets an employee's section from the dashboard roster.
func (v *Dashboard) Assign(ctx context.Context, id uint, department string) error {
	return v.Employees.Assign(ctx, id, department)
}

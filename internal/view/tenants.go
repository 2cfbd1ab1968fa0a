package view

import (
	"context"

	"rental-backoffice/internal/billing"
	"rental-backoffice/internal/lifecycle"
	"rental-backoffice/internal/models"
	"rental-backoffice/internal/store"

	"github.com/shopspring/decimal"
)

// Tenants drives the tenant list, rent editing and bill issuing, and the
// tenant tab of account management.
type Tenants struct {
	st   store.Store
	List *List[models.Tenant]
}

func NewTenants(st store.Store) *Tenants {
	return &Tenants{
		st: st,
		List: NewList(
			func(t models.Tenant) uint { return t.ID },
			func(t models.Tenant) string { return t.TenantName },
		),
	}
}

// Guard shares g with other requests so concurrent mutations of one row
// are refused.
func (v *Tenants) Guard(g *InFlight) *Tenants {
	v.List.share(g, store.Tenant)
	return v
}

func (v *Tenants) Load(ctx context.Context) error {
	var rows []models.Tenant
	if err := v.st.FetchAll(ctx, store.Tenant, &rows); err != nil {
		return err
	}
	v.List.Load(rows)
	return nil
}

// EditRent changes the tenant's monthly rent. Bills already issued keep
// the amount they were created with.
func (v *Tenants) EditRent(ctx context.Context, id uint, amount decimal.Decimal) error {
	return mutate(v.List, id,
		func() error { return v.st.UpdateByID(ctx, store.Tenant, id, map[string]any{"rent": amount}) },
		func() { v.List.Replace(id, func(t *models.Tenant) { t.Rent = amount }) },
	)
}

// Draft opens the add-bill form for a loaded tenant.
func (v *Tenants) Draft(id uint, p billing.Period) (billing.Draft, error) {
	t, ok := v.List.Find(id)
	if !ok {
		return billing.Draft{}, ErrNotInView
	}
	return billing.NewDraft(t, p), nil
}

// AddBill issues a Pending rent record from the draft. The tenant list is
// not touched.
func (v *Tenants) AddBill(ctx context.Context, d billing.Draft) (models.Rent, error) {
	rent := d.Rent()
	err := mutate(v.List, d.Tenant.ID,
		func() error { return v.st.Insert(ctx, store.Rent, &rent) },
		nil,
	)
	if err != nil {
		return models.Rent{}, err
	}
	return rent, nil
}

func (v *Tenants) Delete(ctx context.Context, id uint) error {
	return mutate(v.List, id,
		func() error { return v.st.DeleteByID(ctx, store.Tenant, id) },
		func() { v.List.Remove(id) },
	)
}

func (v *Tenants) SetStatus(ctx context.Context, id uint, to models.AccountStatus) error {
	row, ok := v.List.Find(id)
	if !ok {
		return ErrNotInView
	}
	change := lifecycle.Change[models.AccountStatus]{Table: store.Tenant, ID: id, From: row.Status, To: to}
	return mutate(v.List, id,
		func() error {
			return lifecycle.Apply(ctx, v.st, lifecycle.AccountRule, change, func() {
				v.List.Replace(id, func(t *models.Tenant) { t.Status = to })
			})
		},
		nil,
	)
}

package view

import (
	"context"
	"strings"

	"rental-backoffice/internal/lifecycle"
	"rental-backoffice/internal/models"
	"rental-backoffice/internal/store"
)

// NewSanction is the add-sanction form. The business number is looked up
// from the tenant with the chosen store name.
type NewSanction struct {
	StoreName string `json:"store_name" binding:"required"`
	Complain  string `json:"complain" binding:"required"`
	Sanction  string `json:"sanction" binding:"required"`
	Clearance string `json:"clearance"`
}

// Sanctions lists open complaints, searched by store name.
type Sanctions struct {
	st      store.Store
	tenants []models.Tenant
	List    *List[models.Sanction]
}

func NewSanctions(st store.Store) *Sanctions {
	return &Sanctions{
		st: st,
		List: NewList(
			func(s models.Sanction) uint { return s.ID },
			func(s models.Sanction) string { return s.StoreName },
		),
	}
}

// Load fetches the Unresolved sanctions and the tenant directory used by
// the store-name picker.
// Guard shares g with other requests so concurrent mutations of one row
// are refused.
func (v *Sanctions) Guard(g *InFlight) *Sanctions {
	v.List.share(g, store.Sanction)
	return v
}

func (v *Sanctions) Load(ctx context.Context) error {
	var rows []models.Sanction
	if err := v.st.FetchWhere(ctx, store.Sanction, store.Eq("status", string(models.SanctionUnresolved)), &rows); err != nil {
		return err
	}
	var tenants []models.Tenant
	if err := v.st.FetchAll(ctx, store.Tenant, &tenants); err != nil {
		return err
	}
	v.List.Load(rows)
	v.tenants = tenants
	return nil
}

// StoreNames feeds the store picker of the add form.
func (v *Sanctions) StoreNames() []string {
	names := make([]string, 0, len(v.tenants))
	for _, t := range v.tenants {
		names = append(names, t.StoreName)
	}
	return names
}

// tenantByStore matches a store name as typed, ignoring case.
func (v *Sanctions) tenantByStore(storeName string) (models.Tenant, bool) {
	for _, t := range v.tenants {
		if strings.EqualFold(t.StoreName, strings.TrimSpace(storeName)) {
			return t, true
		}
	}
	return models.Tenant{}, false
}

// Add records a new Unresolved sanction against the tenant's store.
func (v *Sanctions) Add(ctx context.Context, in NewSanction) (models.Sanction, error) {
	tn, ok := v.tenantByStore(in.StoreName)
	if !ok {
		return models.Sanction{}, ErrUnknownStore
	}
	release, ok := v.List.claim(0)
	if !ok {
		return models.Sanction{}, ErrBusy
	}
	defer release()

	row := models.Sanction{
		BusinessNumber: tn.BusinessNumber,
		StoreName:      tn.StoreName,
		Complain:       in.Complain,
		Sanction:       in.Sanction,
		Clearance:      in.Clearance,
		Status:         models.SanctionUnresolved,
	}
	if err := v.st.Insert(ctx, store.Sanction, &row); err != nil {
		return models.Sanction{}, err
	}
	v.List.Load(append(v.List.Rows(), row))
	return row, nil
}

// Resolve closes a sanction; it drops off the Unresolved list.
func (v *Sanctions) Resolve(ctx context.Context, id uint) error {
	row, ok := v.List.Find(id)
	if !ok {
		return ErrNotInView
	}
	change := lifecycle.Change[models.SanctionStatus]{Table: store.Sanction, ID: id, From: row.Status, To: models.SanctionResolved}
	return mutate(v.List, id,
		func() error {
			return lifecycle.Apply(ctx, v.st, lifecycle.SanctionRule, change, func() { v.List.Remove(id) })
		},
		nil,
	)
}

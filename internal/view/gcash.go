package view

import (
	"context"

	"rental-backoffice/internal/models"
	"rental-backoffice/internal/store"
)

// Gcash manages the GCash accounts tenants pay into.
type Gcash struct {
	st   store.Store
	List *List[models.GcashAccount]
}

func NewGcash(st store.Store) *Gcash {
	return &Gcash{
		st: st,
		List: NewList(
			func(g models.GcashAccount) uint { return g.ID },
			func(g models.GcashAccount) string { return g.Name },
		),
	}
}

// Guard shares g with other requests so concurrent mutations of one row
// are refused.
func (v *Gcash) Guard(g *InFlight) *Gcash {
	v.List.share(g, store.Gcash)
	return v
}

func (v *Gcash) Load(ctx context.Context) error {
	var rows []models.GcashAccount
	if err := v.st.FetchAll(ctx, store.Gcash, &rows); err != nil {
		return err
	}
	v.List.Load(rows)
	return nil
}

func (v *Gcash) Create(ctx context.Context, name, number string) (models.GcashAccount, error) {
	release, ok := v.List.claim(0)
	if !ok {
		return models.GcashAccount{}, ErrBusy
	}
	defer release()

	row := models.GcashAccount{Name: name, Number: number}
	if err := v.st.Insert(ctx, store.Gcash, &row); err != nil {
		return models.GcashAccount{}, err
	}
	v.List.Load(append(v.List.Rows(), row))
	return row, nil
}

func (v *Gcash) Update(ctx context.Context, id uint, name, number string) error {
	return mutate(v.List, id,
		func() error {
			return v.st.UpdateByID(ctx, store.Gcash, id, map[string]any{"name": name, "number": number})
		},
		func() {
			v.List.Replace(id, func(g *models.GcashAccount) {
				g.Name = name
				g.Number = number
			})
		},
	)
}

func (v *Gcash) Delete(ctx context.Context, id uint) error {
	return mutate(v.List, id,
		func() error { return v.st.DeleteByID(ctx, store.Gcash, id) },
		func() { v.List.Remove(id) },
	)
}

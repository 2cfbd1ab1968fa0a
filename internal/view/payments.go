package view

import (
	"context"
	"time"

	"rental-backoffice/internal/lifecycle"
	"rental-backoffice/internal/models"
	"rental-backoffice/internal/store"
)

// Payments is the rent list behind the unpaid and history screens. The
// two differ only in the status filter.
type Payments struct {
	st     store.Store
	filter store.Filter
	member func(models.PaymentStatus) bool
	List   *List[models.Rent]
}

// Both screens search on store name.
func newPayments(st store.Store, f store.Filter, member func(models.PaymentStatus) bool) *Payments {
	return &Payments{
		st:     st,
		filter: f,
		member: member,
		List: NewList(
			func(r models.Rent) uint { return r.ID },
			func(r models.Rent) string { return r.StoreName },
		),
	}
}

// NewUnpaid lists Pending bills.
func NewUnpaid(st store.Store) *Payments {
	return newPayments(st, store.Eq("status", string(models.PaymentPending)), lifecycle.InUnpaid)
}

// NewHistory lists every bill past Pending.
func NewHistory(st store.Store) *Payments {
	return newPayments(st, store.Neq("status", string(models.PaymentPending)), lifecycle.InHistory)
}

// Guard shares g with other requests so concurrent mutations of one row
// are refused.
func (v *Payments) Guard(g *InFlight) *Payments {
	v.List.share(g, store.Rent)
	return v
}

func (v *Payments) Load(ctx context.Context) error {
	var rows []models.Rent
	if err := v.st.FetchWhere(ctx, store.Rent, v.filter, &rows); err != nil {
		return err
	}
	v.List.Load(rows)
	return nil
}

// MarkPaid confirms an On-Process payment. Status and date paid go out in
// one update; the row leaves this list if the new status no longer
// belongs here.
func (v *Payments) MarkPaid(ctx context.Context, id uint, now time.Time) error {
	row, ok := v.List.Find(id)
	if !ok {
		return ErrNotInView
	}
	paidAt := now.UTC()
	change := lifecycle.Change[models.PaymentStatus]{
		Table: store.Rent,
		ID:    id,
		From:  row.Status,
		To:    models.PaymentPaid,
		Extra: map[string]any{"date_paid": paidAt},
	}
	return mutate(v.List, id,
		func() error {
			return lifecycle.Apply(ctx, v.st, lifecycle.AdminPaymentRule, change, func() {
				v.List.Replace(id, func(r *models.Rent) {
					r.Status = models.PaymentPaid
					r.DatePaid = &paidAt
				})
				if !v.member(models.PaymentPaid) {
					v.List.Remove(id)
				}
			})
		},
		nil,
	)
}

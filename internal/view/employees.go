package view

import (
	"context"

	"rental-backoffice/internal/lifecycle"
	"rental-backoffice/internal/models"
	"rental-backoffice/internal/store"
)

// Employees drives the employee directory, the dashboard roster and the
// employee tab of account management.
type Employees struct {
	st   store.Store
	List *List[models.Employee]
}

func NewEmployees(st store.Store) *Employees {
	return &Employees{
		st: st,
		List: NewList(
			func(e models.Employee) uint { return e.ID },
			func(e models.Employee) string { return e.EmployeeName },
		),
	}
}

// Guard shares g with other requests so concurrent mutations of one row
// are refused.
func (v *Employees) Guard(g *InFlight) *Employees {
	v.List.share(g, store.Employee)
	return v
}

func (v *Employees) Load(ctx context.Context) error {
	var rows []models.Employee
	if err := v.st.FetchAll(ctx, store.Employee, &rows); err != nil {
		return err
	}
	v.List.Load(rows)
	return nil
}

func (v *Employees) Delete(ctx context.Context, id uint) error {
	return mutate(v.List, id,
		func() error { return v.st.DeleteByID(ctx, store.Employee, id) },
		func() { v.List.Remove(id) },
	)
}

// Assign moves an employee to a market section.
func (v *Employees) Assign(ctx context.Context, id uint, department string) error {
	return mutate(v.List, id,
		func() error {
			return v.st.UpdateByID(ctx, store.Employee, id, map[string]any{"department_assigned": department})
		},
		func() { v.List.Replace(id, func(e *models.Employee) { e.DepartmentAssigned = department }) },
	)
}

// SetStatus accepts, rejects or resets an employee account.
func (v *Employees) SetStatus(ctx context.Context, id uint, to models.AccountStatus) error {
	row, ok := v.List.Find(id)
	if !ok {
		return ErrNotInView
	}
	change := lifecycle.Change[models.AccountStatus]{Table: store.Employee, ID: id, From: row.Status, To: to}
	return mutate(v.List, id,
		func() error {
			return lifecycle.Apply(ctx, v.st, lifecycle.AccountRule, change, func() {
				v.List.Replace(id, func(e *models.Employee) { e.Status = to })
			})
		},
		nil,
	)
}

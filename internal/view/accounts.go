package view

import (
	"context"
	"errors"
	"fmt"

	"rental-backoffice/internal/models"
)

// Kind names a tab of the account management screen.
type Kind string

const (
	KindEmployee Kind = "employees"
	KindTenant   Kind = "tenants"
)

// ErrUnknownKind is returned for a tab other than employees or tenants.
var ErrUnknownKind = errors.New("unknown account kind")

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindEmployee, KindTenant:
		return k, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKind, s)
}

// Accounts is the account management screen: both directories side by
// side, one search box.
type Accounts struct {
	Employees *Employees
	Tenants   *Tenants
}

func NewAccounts(e *Employees, t *Tenants) *Accounts {
	return &Accounts{Employees: e, Tenants: t}
}

func (v *Accounts) Load(ctx context.Context) error {
	if err := v.Employees.Load(ctx); err != nil {
		return err
	}
	return v.Tenants.Load(ctx)
}

func (v *Accounts) Search(q string) {
	v.Employees.List.Search(q)
	v.Tenants.List.Search(q)
}

func (v *Accounts) SetStatus(ctx context.Context, k Kind, id uint, to models.AccountStatus) error {
	switch k {
	case KindEmployee:
		return v.Employees.SetStatus(ctx, id, to)
	case KindTenant:
		return v.Tenants.SetStatus(ctx, id, to)
	}
	return ErrUnknownKind
}

func (v *Accounts) Delete(ctx context.Context, k Kind, id uint) error {
	switch k {
	case KindEmployee:
		return v.Employees.Delete(ctx, id)
	case KindTenant:
		return v.Tenants.Delete(ctx, id)
	}
	return ErrUnknownKind
}

// Package store is the single doorway to the rental tables. Every call is
// one round trip; nothing here spans tables or caches rows.
package store

import (
	"context"
	"errors"
	"fmt"

	"rental-backoffice/internal/models"
)

// Table names match the hosted database.
type Table string

const (
	Employee Table = "Employee"
	Tenant   Table = "Tenant"
	Rent     Table = "Rent"
	Sanction Table = "Sanction"
	Gcash    Table = "Gcash"
)

// Op is the comparison applied by FetchWhere.
type Op int

const (
	Equals Op = iota
	NotEquals
)

func (o Op) String() string {
	if o == NotEquals {
		return "neq"
	}
	return "eq"
}

// Filter narrows a fetch to rows whose Field compares to Value under Op.
type Filter struct {
	Field string
	Op    Op
	Value any
}

func Eq(field string, value any) Filter  { return Filter{Field: field, Op: Equals, Value: value} }
func Neq(field string, value any) Filter { return Filter{Field: field, Op: NotEquals, Value: value} }

// Store is the record-level contract the views are written against.
// dest is a pointer to a slice of the table's model; row is a pointer to
// a model value.
type Store interface {
	FetchAll(ctx context.Context, table Table, dest any) error
	FetchWhere(ctx context.Context, table Table, f Filter, dest any) error
	Insert(ctx context.Context, table Table, row any) error
	UpdateByID(ctx context.Context, table Table, id uint, fields map[string]any) error
	DeleteByID(ctx context.Context, table Table, id uint) error
}

var (
	ErrNotFound      = errors.New("record not found")
	ErrUnknownTable  = errors.New("unknown table")
	ErrUnknownColumn = errors.New("unknown column")
)

// Error reports which call failed against which table.
type Error struct {
	Op    string
	Table Table
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Table, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func wrap(op string, table Table, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Table: table, Err: err}
}

type tableSpec struct {
	model   func() any
	columns map[string]bool
}

func columns(names ...string) map[string]bool {
	m := make(map[string]bool, len(names)+1)
	m["id"] = true
	for _, n := range names {
		m[n] = true
	}
	return m
}

var tables = map[Table]tableSpec{
	Employee: {
		model:   func() any { return &models.Employee{} },
		columns: columns("id_number", "employee_name", "department_assigned", "status", "assign"),
	},
	Tenant: {
		model:   func() any { return &models.Tenant{} },
		columns: columns("business_number", "tenant_name", "store_name", "business_type", "rent", "status"),
	},
	Rent: {
		model: func() any { return &models.Rent{} },
		columns: columns("business_number", "store_name", "department", "date", "rent", "water_bill",
			"electric_bill", "total", "status", "payment_method", "proof", "date_paid", "employee_name"),
	},
	Sanction: {
		model:   func() any { return &models.Sanction{} },
		columns: columns("business_number", "store_name", "complain", "sanction", "clearance", "status"),
	},
	Gcash: {
		model:   func() any { return &models.GcashAccount{} },
		columns: columns("name", "number"),
	},
}

func lookup(table Table) (tableSpec, error) {
	spec, ok := tables[table]
	if !ok {
		return tableSpec{}, ErrUnknownTable
	}
	return spec, nil
}

func (s tableSpec) check(fields ...string) error {
	for _, f := range fields {
		if !s.columns[f] {
			return fmt.Errorf("%w %q", ErrUnknownColumn, f)
		}
	}
	return nil
}

// Package view holds the per-request state of each back-office screen and
// the controllers that drive it. A List lives for one request and is never
// shared; an InFlight guard is what requests share.
package view

import (
	"strings"
	"sync"

	"rental-backoffice/internal/store"
)

type rowKey struct {
	table store.Table
	id    uint
}

// InFlight tracks the rows with a mutation running, across requests. Id 0
// stands for an insert into the table.
type InFlight struct {
	rows sync.Map
}

func NewInFlight() *InFlight { return &InFlight{} }

// Claim marks the row as in flight. It reports false if another mutation
// already holds it; otherwise release must be called when done.
func (f *InFlight) Claim(table store.Table, id uint) (release func(), ok bool) {
	key := rowKey{table, id}
	if _, held := f.rows.LoadOrStore(key, struct{}{}); held {
		return nil, false
	}
	return func() { f.rows.Delete(key) }, true
}

// List is the transient state of one list screen: the fetched rows, the
// search box, the selected row, modal visibility and an in-flight flag that
// keeps a second mutation from starting.
type List[T any] struct {
	rows  []T
	id    func(T) uint
	field func(T) string

	Query     string
	Selected  uint // 0 when nothing is selected
	ModalOpen bool
	Busy      bool

	table store.Table
	guard *InFlight
}

// NewList builds an empty list keyed by id and searched on field.
func NewList[T any](id func(T) uint, field func(T) string) *List[T] {
	return &List[T]{id: id, field: field}
}

// Load replaces the rows with a fresh fetch.
func (l *List[T]) Load(rows []T) {
	l.rows = rows
}

// Rows is the full loaded set, ignoring the search box.
func (l *List[T]) Rows() []T {
	return l.rows
}

// Visible applies the search box to the loaded rows.
func (l *List[T]) Visible() []T {
	return Filter(l.rows, l.Query, l.field)
}

func (l *List[T]) Find(id uint) (T, bool) {
	for _, r := range l.rows {
		if l.id(r) == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Replace applies patch to the row with id and reports whether it existed.
func (l *List[T]) Replace(id uint, patch func(*T)) bool {
	for i := range l.rows {
		if l.id(l.rows[i]) == id {
			patch(&l.rows[i])
			return true
		}
	}
	return false
}

// Remove drops exactly the row with id.
func (l *List[T]) Remove(id uint) bool {
	for i := range l.rows {
		if l.id(l.rows[i]) == id {
			l.rows = append(l.rows[:i:i], l.rows[i+1:]...)
			return true
		}
	}
	return false
}

// Search sets the query; it never refetches.
func (l *List[T]) Search(q string) { l.Query = q }

// Select marks a row and opens its modal. Unknown ids are ignored.
func (l *List[T]) Select(id uint) bool {
	if _, ok := l.Find(id); !ok {
		return false
	}
	l.Selected = id
	l.ModalOpen = true
	return true
}

// Close hides the modal and clears the selection.
func (l *List[T]) Close() {
	l.Selected = 0
	l.ModalOpen = false
}

// Begin claims the list for one mutation. It returns false while another
// is in flight.
func (l *List[T]) Begin() bool {
	if l.Busy {
		return false
	}
	l.Busy = true
	return true
}

func (l *List[T]) Done() { l.Busy = false }

func (l *List[T]) share(g *InFlight, table store.Table) {
	l.guard = g
	l.table = table
}

// claim takes both the list and, when shared, the row in the InFlight
// guard.
func (l *List[T]) claim(id uint) (release func(), ok bool) {
	if !l.Begin() {
		return nil, false
	}
	if l.guard == nil {
		return l.Done, true
	}
	done, ok := l.guard.Claim(l.table, id)
	if !ok {
		l.Done()
		return nil, false
	}
	return func() {
		done()
		l.Done()
	}, true
}

// Filter keeps rows whose field contains q, ignoring case. An empty q keeps
// everything.
func Filter[T any](rows []T, q string, field func(T) string) []T {
	if q == "" {
		return rows
	}
	needle := strings.ToLower(q)
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strings.ToLower(field(r)), needle) {
			out = append(out, r)
		}
	}
	return out
}

// Package storetest provides a store.Store wrapper that records calls and
// can inject failures, for view and handler tests.
package storetest

import (
	"context"
	"sync"

	"rental-backoffice/internal/store"
)

// Call is one recorded store invocation.
type Call struct {
	Op     string // select, insert, update, delete
	Table  store.Table
	ID     uint
	Filter *store.Filter
	Fields map[string]any
}

// Recorder forwards to Inner unless a failure is queued for the op.
type Recorder struct {
	Inner store.Store

	mu    sync.Mutex
	calls []Call
	fail  map[string]error
}

func New(inner store.Store) *Recorder {
	return &Recorder{Inner: inner, fail: map[string]error{}}
}

// FailNext makes every following call of op return err (wrapped like the
// real store) until Reset.
func (r *Recorder) FailNext(op string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail[op] = err
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
	r.fail = map[string]error{}
}

// Calls returns the recorded calls, optionally only those for op.
func (r *Recorder) Calls(op string) []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Call
	for _, c := range r.calls {
		if op == "" || c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) record(c Call) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
	if err, ok := r.fail[c.Op]; ok {
		return &store.Error{Op: c.Op, Table: c.Table, Err: err}
	}
	return nil
}

func (r *Recorder) FetchAll(ctx context.Context, table store.Table, dest any) error {
	if err := r.record(Call{Op: "select", Table: table}); err != nil {
		return err
	}
	return r.Inner.FetchAll(ctx, table, dest)
}

func (r *Recorder) FetchWhere(ctx context.Context, table store.Table, f store.Filter, dest any) error {
	if err := r.record(Call{Op: "select", Table: table, Filter: &f}); err != nil {
		return err
	}
	return r.Inner.FetchWhere(ctx, table, f, dest)
}

func (r *Recorder) Insert(ctx context.Context, table store.Table, row any) error {
	if err := r.record(Call{Op: "insert", Table: table}); err != nil {
		return err
	}
	return r.Inner.Insert(ctx, table, row)
}

func (r *Recorder) UpdateByID(ctx context.Context, table store.Table, id uint, fields map[string]any) error {
	if err := r.record(Call{Op: "update", Table: table, ID: id, Fields: fields}); err != nil {
		return err
	}
	return r.Inner.UpdateByID(ctx, table, id, fields)
}

func (r *Recorder) DeleteByID(ctx context.Context, table store.Table, id uint) error {
	if err := r.record(Call{Op: "delete", Table: table, ID: id}); err != nil {
		return err
	}
	return r.Inner.DeleteByID(ctx, table, id)
}

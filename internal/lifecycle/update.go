package lifecycle

import (
	"context"

	"rental-backoffice/internal/store"
)

// Change describes one status update of one row.
type Change[S ~string] struct {
	Table store.Table
	ID    uint
	From  S
	To    S
	// Extra columns written in the same call, e.g. date_paid.
	Extra map[string]any
}

// Apply checks the change against rule, then issues exactly one
// UpdateByID. onSuccess runs only after the store confirms the write, so
// callers patch their in-memory row there and nothing changes on failure.
func Apply[S ~string](ctx context.Context, st store.Store, rule Rule[S], c Change[S], onSuccess func()) error {
	if err := rule(c.From, c.To); err != nil {
		return err
	}

	fields := map[string]any{"status": string(c.To)}
	for k, v := range c.Extra {
		fields[k] = v
	}
	if err := st.UpdateByID(ctx, c.Table, c.ID, fields); err != nil {
		return err
	}
	if onSuccess != nil {
		onSuccess()
	}
	return nil
}

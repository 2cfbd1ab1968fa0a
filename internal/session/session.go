// Package session tracks which issued tokens are still valid so sign-out
// can revoke a token before it expires.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrInactive covers unknown, revoked and expired sessions alike.
var ErrInactive = errors.New("session is not active")

type Store interface {
	// Create opens a session for the admin and returns its id.
	Create(ctx context.Context, adminID uint, ttl time.Duration) (string, error)
	// Active returns the admin id of a live session or ErrInactive.
	Active(ctx context.Context, id string) (uint, error)
	Revoke(ctx context.Context, id string) error
}

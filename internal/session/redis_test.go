package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-backoffice/internal/config"

	"github.com/alicebob/miniredis/v2"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	m := miniredis.RunT(t)
	client, err := NewRedisClient(context.Background(), config.RedisConfig{Addr: m.Addr()})
	if err != nil {
		t.Fatalf("NewRedisClient() error = %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client), m
}

func TestRedisStore_Lifecycle(t *testing.T) {
	s, m := newRedisStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx, 7, time.Hour)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !m.Exists(key(id)) {
		t.Fatalf("key %q not stored", key(id))
	}
	if ttl := m.TTL(key(id)); ttl != time.Hour {
		t.Errorf("TTL = %v, want 1h", ttl)
	}

	got, err := s.Active(ctx, id)
	if err != nil || got != 7 {
		t.Fatalf("Active() = %d, %v, want 7", got, err)
	}

	if err := s.Revoke(ctx, id); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}
	if _, err := s.Active(ctx, id); !errors.Is(err, ErrInactive) {
		t.Errorf("Active() after revoke error = %v, want ErrInactive", err)
	}
	if err := s.Revoke(ctx, id); err != nil {
		t.Errorf("second Revoke() error = %v, want nil", err)
	}
}

func TestRedisStore_Expired(t *testing.T) {
	s, m := newRedisStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx, 7, time.Minute)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	m.FastForward(2 * time.Minute)

	if _, err := s.Active(ctx, id); !errors.Is(err, ErrInactive) {
		t.Errorf("Active(expired) error = %v, want ErrInactive", err)
	}
	if _, err := s.Active(ctx, "no-such-session"); !errors.Is(err, ErrInactive) {
		t.Errorf("Active(unknown) error = %v, want ErrInactive", err)
	}
}

func TestRedisStore_BadValue(t *testing.T) {
	s, m := newRedisStore(t)
	m.Set(key("broken"), "not-a-number")

	_, err := s.Active(context.Background(), "broken")
	if err == nil || errors.Is(err, ErrInactive) {
		t.Errorf("Active(bad value) error = %v, want a decode error", err)
	}
}

func TestRedisStore_ServerDown(t *testing.T) {
	s, m := newRedisStore(t)
	m.Close()

	if _, err := s.Create(context.Background(), 7, time.Hour); err == nil {
		t.Error("Create() with the server down error = nil")
	}
}

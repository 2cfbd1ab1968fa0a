package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-backoffice/internal/config"
	"rental-backoffice/internal/models"
	"rental-backoffice/internal/store/storetest"
)

func newDBStore(t *testing.T) (*DBStore, uint) {
	t.Helper()
	db := storetest.OpenDB(t)
	admin := models.Admin{Username: "admin", PasswordHash: "x"}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("create admin: %v", err)
	}
	return NewDBStore(db), admin.ID
}

func TestDBStore_Lifecycle(t *testing.T) {
	s, adminID := newDBStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx, adminID, time.Hour)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id == "" {
		t.Fatal("Create() returned an empty id")
	}

	got, err := s.Active(ctx, id)
	if err != nil || got != adminID {
		t.Fatalf("Active() = %d, %v, want %d", got, err, adminID)
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

func TestDBStore_Expired(t *testing.T) {
	s, adminID := newDBStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx, adminID, -time.Minute)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := s.Active(ctx, id); !errors.Is(err, ErrInactive) {
		t.Errorf("Active(expired) error = %v, want ErrInactive", err)
	}
	if _, err := s.Active(ctx, "no-such-session"); !errors.Is(err, ErrInactive) {
		t.Errorf("Active(unknown) error = %v, want ErrInactive", err)
	}
}

func TestDBStore_Purge(t *testing.T) {
	s, adminID := newDBStore(t)
	ctx := context.Background()

	live, _ := s.Create(ctx, adminID, time.Hour)
	s.Create(ctx, adminID, -time.Minute)
	revoked, _ := s.Create(ctx, adminID, time.Hour)
	s.Revoke(ctx, revoked)

	n, err := s.Purge(ctx)
	if err != nil {
		t.Fatalf("Purge() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Purge() = %d, want 2", n)
	}
	if _, err := s.Active(ctx, live); err != nil {
		t.Errorf("live session purged: %v", err)
	}
}

func TestKey(t *testing.T) {
	if got := key("abc"); got != "rb:session:abc" {
		t.Errorf("key() = %q", got)
	}
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := NewRedisClient(ctx, config.RedisConfig{Addr: "127.0.0.1:1"}); err == nil {
		t.Error("NewRedisClient() error = nil for an unreachable server")
	}
}

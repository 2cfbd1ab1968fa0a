package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rental-backoffice/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ Store = (*DBStore)(nil)

// DBStore keeps sessions in the Session table.
type DBStore struct {
	DB *gorm.DB
}

func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{DB: db}
}

func (s *DBStore) Create(ctx context.Context, adminID uint, ttl time.Duration) (string, error) {
	sess := models.Session{
		ID:        uuid.NewString(),
		AdminID:   adminID,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Create(&sess).Error; err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return sess.ID, nil
}

func (s *DBStore) Active(ctx context.Context, id string) (uint, error) {
	var sess models.Session
	err := s.DB.WithContext(ctx).
		Where("id = ? AND revoked = ? AND expires_at > ?", id, false, time.Now()).
		First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrInactive
	}
	if err != nil {
		return 0, fmt.Errorf("load session: %w", err)
	}
	return sess.AdminID, nil
}

// Revoke is idempotent; revoking an unknown id is not an error.
func (s *DBStore) Revoke(ctx context.Context, id string) error {
	err := s.DB.WithContext(ctx).Model(&models.Session{}).
		Where("id = ?", id).
		Update("revoked", true).Error
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// Purge deletes expired and revoked rows.
func (s *DBStore) Purge(ctx context.Context) (int64, error) {
	res := s.DB.WithContext(ctx).
		Where("revoked = ? OR expires_at <= ?", true, time.Now()).
		Delete(&models.Session{})
	if res.Error != nil {
		return 0, fmt.Errorf("purge sessions: %w", res.Error)
	}
	return res.RowsAffected, nil
}

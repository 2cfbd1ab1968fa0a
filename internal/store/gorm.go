package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements Store on a gorm connection (PostgreSQL or SQLite).
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) FetchAll(ctx context.Context, table Table, dest any) error {
	if _, err := lookup(table); err != nil {
		return wrap("select", table, err)
	}
	err := s.DB.WithContext(ctx).Table(string(table)).Order("id ASC").Find(dest).Error
	return wrap("select", table, err)
}

func (s *GormStore) FetchWhere(ctx context.Context, table Table, f Filter, dest any) error {
	spec, err := lookup(table)
	if err != nil {
		return wrap("select", table, err)
	}
	if err := spec.check(f.Field); err != nil {
		return wrap("select", table, err)
	}

	var cond clause.Expression = clause.Eq{Column: clause.Column{Name: f.Field}, Value: f.Value}
	if f.Op == NotEquals {
		cond = clause.Neq{Column: clause.Column{Name: f.Field}, Value: f.Value}
	}
	err = s.DB.WithContext(ctx).Table(string(table)).Where(cond).Order("id ASC").Find(dest).Error
	return wrap("select", table, err)
}

func (s *GormStore) Insert(ctx context.Context, table Table, row any) error {
	if _, err := lookup(table); err != nil {
		return wrap("insert", table, err)
	}
	err := s.DB.WithContext(ctx).Table(string(table)).Create(row).Error
	return wrap("insert", table, err)
}

func (s *GormStore) UpdateByID(ctx context.Context, table Table, id uint, fields map[string]any) error {
	spec, err := lookup(table)
	if err != nil {
		return wrap("update", table, err)
	}
	for f := range fields {
		if f == "id" {
			return wrap("update", table, ErrUnknownColumn)
		}
		if err := spec.check(f); err != nil {
			return wrap("update", table, err)
		}
	}

	res := s.DB.WithContext(ctx).Model(spec.model()).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return wrap("update", table, res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("update", table, ErrNotFound)
	}
	return nil
}

func (s *GormStore) DeleteByID(ctx context.Context, table Table, id uint) error {
	spec, err := lookup(table)
	if err != nil {
		return wrap("delete", table, err)
	}
	res := s.DB.WithContext(ctx).Delete(spec.model(), id)
	if res.Error != nil {
		return wrap("delete", table, res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("delete", table, ErrNotFound)
	}
	return nil
}

// Package repository implements the single CRUD engine shared by every
// resource controller. Per-entity behavior (columns, uniqueness, foreign
// keys) comes from the GORM model tags, not from duplicated handler code.
package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository[T any] struct{}

func New[T any]() *Repository[T] { return &Repository[T]{} }

// List returns all rows in natural order. An empty slice is a valid result.
func (r *Repository[T]) List(ctx context.Context, db *gorm.DB) ([]T, error) {
	rows := make([]T, 0)
	if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// ListWhere returns the rows matching a condition, e.g. all courses linked
// to one formation.
func (r *Repository[T]) ListWhere(ctx context.Context, db *gorm.DB, query string, args ...interface{}) ([]T, error) {
	rows := make([]T, 0)
	if err := db.WithContext(ctx).Where(query, args...).Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (r *Repository[T]) GetByID(ctx context.Context, db *gorm.DB, id uint) (*T, error) {
	var row T
	if err := db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

func (r *Repository[T]) Create(ctx context.Context, db *gorm.DB, m *T) error {
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return translate(err)
	}
	return nil
}

// Updates applies a sparse patch: only the supplied columns are written,
// and updated_at is always stamped. The refreshed row is returned.
func (r *Repository[T]) Updates(ctx context.Context, db *gorm.DB, id uint, updates map[string]interface{}) (*T, error) {
	row, err := r.GetByID(ctx, db, id)
	if err != nil {
		return nil, err
	}

	patch := make(map[string]interface{}, len(updates)+1)
	for k, v := range updates {
		patch[k] = v
	}
	patch["updated_at"] = time.Now()

	if err := db.WithContext(ctx).Model(row).Updates(patch).Error; err != nil {
		return nil, translate(err)
	}
	return r.GetByID(ctx, db, id)
}

// Delete removes one row. No cascade: dependent rows and stored media files
// are left in place.
func (r *Repository[T]) Delete(ctx context.Context, db *gorm.DB, id uint) (*T, error) {
	row, err := r.GetByID(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Delete(row).Error; err != nil {
		return nil, translate(err)
	}
	return row, nil
}

// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Ong
// (shelter) model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/miaudote/go-adopt-backend/internal/domain"
)

// CreateOng inserts a shelter row. ID and CreatedAt are assigned here.
func CreateOng(ctx context.Context, db *gorm.DB, o *domain.Ong) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	return db.WithContext(ctx).Create(o).Error
}

// GetOng fetches a shelter by ID, or ErrNotFound. includeInactive also
// matches soft-deleted rows.
func GetOng(ctx context.Context, db *gorm.DB, id string, includeInactive bool) (*domain.Ong, error) {
	q := db.WithContext(ctx)
	if includeInactive {
		q = q.Unscoped()
	}
	var o domain.Ong
	if err := q.Where("id = ?", id).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOngs returns shelters ordered by ID. uf, when non-empty, narrows the
// result to shelters registered in that state.
func ListOngs(ctx context.Context, db *gorm.DB, uf string, includeInactive bool) ([]domain.Ong, error) {
	q := db.WithContext(ctx)
	if includeInactive {
		q = q.Unscoped()
	}
	if uf != "" {
		q = q.Where("uf = ?", uf)
	}
	var out []domain.Ong
	err := q.Order("id asc").Find(&out).Error
	return out, err
}

// UpdateOng applies column updates to a shelter row. Returns ErrNotFound
// when no row matches.
func UpdateOng(ctx context.Context, db *gorm.DB, id string, updates map[string]any) error {
	res := db.WithContext(ctx).
		Model(&domain.Ong{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SoftDeleteOng marks the shelter inactive.
func SoftDeleteOng(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Delete(&domain.Ong{}, "id = ?", id).Error
}

// RestoreOng clears the shelter's soft-delete marker.
func RestoreOng(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Unscoped().
		Model(&domain.Ong{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}

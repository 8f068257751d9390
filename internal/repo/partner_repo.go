// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Partner
// model (plain CRUD, no interaction with the matching engine).
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/miaudote/go-adopt-backend/internal/domain"
)

// CreatePartner inserts a partner row. ID and CreatedAt are assigned here.
func CreatePartner(ctx context.Context, db *gorm.DB, p *domain.Partner) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return db.WithContext(ctx).Create(p).Error
}

// GetPartner fetches a partner by ID, or ErrNotFound. includeInactive also
// matches soft-deleted rows.
func GetPartner(ctx context.Context, db *gorm.DB, id string, includeInactive bool) (*domain.Partner, error) {
	q := db.WithContext(ctx)
	if includeInactive {
		q = q.Unscoped()
	}
	var p domain.Partner
	if err := q.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPartners returns partners ordered by ID. namePrefix filters on the
// fantasy name, uf on the registered state; empty values mean no constraint.
func ListPartners(ctx context.Context, db *gorm.DB, namePrefix, uf string, includeInactive bool) ([]domain.Partner, error) {
	q := db.WithContext(ctx)
	if includeInactive {
		q = q.Unscoped()
	}
	if namePrefix != "" {
		q = q.Where("fantasy_name LIKE ?", namePrefix+"%")
	}
	if uf != "" {
		q = q.Where("uf = ?", uf)
	}
	var out []domain.Partner
	err := q.Order("id asc").Find(&out).Error
	return out, err
}

// UpdatePartner applies column updates to a partner row. Returns ErrNotFound
// when no row matches.
func UpdatePartner(ctx context.Context, db *gorm.DB, id string, updates map[string]any) error {
	res := db.WithContext(ctx).
		Model(&domain.Partner{}).
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

// SoftDeletePartner marks the partner inactive.
func SoftDeletePartner(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Delete(&domain.Partner{}, "id = ?", id).Error
}

// RestorePartner clears the partner's soft-delete marker.
func RestorePartner(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Unscoped().
		Model(&domain.Partner{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}

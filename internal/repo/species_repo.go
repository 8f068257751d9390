// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Species
// model. GetSpecies doubles as the existence check the pet filter engine and
// pet creation run before touching the pets table.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/miaudote/go-adopt-backend/internal/domain"
)

// CreateSpecies inserts a species row.
func CreateSpecies(ctx context.Context, db *gorm.DB, name, image string) (*domain.Species, error) {
	s := &domain.Species{
		ID:        uuid.NewString(),
		Name:      name,
		Image:     image,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// GetSpecies fetches a species by ID, or ErrNotFound. includeInactive also
// matches soft-deleted rows.
func GetSpecies(ctx context.Context, db *gorm.DB, id string, includeInactive bool) (*domain.Species, error) {
	q := db.WithContext(ctx)
	if includeInactive {
		q = q.Unscoped()
	}
	var s domain.Species
	if err := q.Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSpecies returns species ordered by ID, optionally including inactive
// rows.
func ListSpecies(ctx context.Context, db *gorm.DB, includeInactive bool) ([]domain.Species, error) {
	q := db.WithContext(ctx)
	if includeInactive {
		q = q.Unscoped()
	}
	var out []domain.Species
	err := q.Order("id asc").Find(&out).Error
	return out, err
}

// UpdateSpecies applies column updates to a species row. Returns ErrNotFound
// when no row matches.
func UpdateSpecies(ctx context.Context, db *gorm.DB, id string, updates map[string]any) error {
	res := db.WithContext(ctx).
		Model(&domain.Species{}).
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

// SoftDeleteSpecies marks the species inactive.
func SoftDeleteSpecies(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Delete(&domain.Species{}, "id = ?", id).Error
}

// RestoreSpecies clears the species' soft-delete marker.
func RestoreSpecies(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Unscoped().
		Model(&domain.Species{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}

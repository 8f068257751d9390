// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Gift
// model. GetGift doubles as the existence check gift assignment performs
// before attaching a gift to an adopted pet.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/miaudote/go-adopt-backend/internal/domain"
)

// CreateGift inserts a gift row.
func CreateGift(ctx context.Context, db *gorm.DB, name, description, image string) (*domain.Gift, error) {
	g := &domain.Gift{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Image:       image,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(g).Error; err != nil {
		return nil, err
	}
	return g, nil
}

// GetGift fetches a gift by ID, or ErrNotFound. includeInactive also matches
// soft-deleted rows.
func GetGift(ctx context.Context, db *gorm.DB, id string, includeInactive bool) (*domain.Gift, error) {
	q := db.WithContext(ctx)
	if includeInactive {
		q = q.Unscoped()
	}
	var g domain.Gift
	if err := q.Where("id = ?", id).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// ListGifts returns gifts ordered by ID. namePrefix, when non-empty, narrows
// the result to names starting with it.
func ListGifts(ctx context.Context, db *gorm.DB, namePrefix string, includeInactive bool) ([]domain.Gift, error) {
	q := db.WithContext(ctx)
	if includeInactive {
		q = q.Unscoped()
	}
	if namePrefix != "" {
		q = q.Where("name LIKE ?", namePrefix+"%")
	}
	var out []domain.Gift
	err := q.Order("id asc").Find(&out).Error
	return out, err
}

// UpdateGift applies column updates to a gift row. Returns ErrNotFound when
// no row matches.
func UpdateGift(ctx context.Context, db *gorm.DB, id string, updates map[string]any) error {
	res := db.WithContext(ctx).
		Model(&domain.Gift{}).
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

// SoftDeleteGift marks the gift inactive.
func SoftDeleteGift(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Delete(&domain.Gift{}, "id = ?", id).Error
}

// RestoreGift clears the gift's soft-delete marker.
func RestoreGift(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Unscoped().
		Model(&domain.Gift{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}

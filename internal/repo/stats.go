// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate/statistics queries used
// by the public stats endpoints and for conditional responses in the HTTP
// layer. Each function is context-aware and safe to call from services or
// handlers.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/miaudote/go-adopt-backend/internal/domain"
)

// GenderCount is one row of the pets-by-gender breakdown.
type GenderCount struct {
	Gender string `json:"gender"`
	Count  int64  `json:"count"`
}

// PetsByGender returns the number of active pets per gender value.
// Adopted pets are included: the breakdown describes the whole registry,
// not the browsing pool.
func PetsByGender(ctx context.Context, db *gorm.DB) ([]GenderCount, error) {
	var out []GenderCount
	err := db.WithContext(ctx).
		Model(&domain.Pet{}).
		Select("gender", "COUNT(*) as count").
		Group("gender").
		Order("gender asc").
		Scan(&out).Error
	return out, err
}

// AdoptionStats returns aggregate metadata about adoptions: the number of
// adopted pets and the most recent adoption timestamp. When nothing has been
// adopted yet, the returned count is 0 and latest is nil.
//
// Return values:
//   - count:  total adopted pets
//   - latest: pointer to the greatest AdoptedAt, or nil if no rows
//   - err:    database error, if any
func AdoptionStats(ctx context.Context, db *gorm.DB) (count int64, latest *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Pet{}).Where("owner_id IS NOT NULL")

	// Count
	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest adopted_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		AdoptedAt time.Time
	}
	if err = q.Select("adopted_at").Order("adopted_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.AdoptedAt, nil
}

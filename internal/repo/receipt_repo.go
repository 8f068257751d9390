// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository helpers for the
// AdoptionReceipt model used to implement safe-retry semantics for the
// adoption endpoint.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/miaudote/go-adopt-backend/internal/domain"
)

// ErrDuplicate indicates that a receipt already exists for the given
// (user_id, pet_id, key) tuple.
var ErrDuplicate = errors.New("duplicate")

// GetReceipt returns a non-expired adoption receipt or ErrNotFound.
func GetReceipt(ctx context.Context, db *gorm.DB, userID, petID, key string, now time.Time) (*domain.AdoptionReceipt, error) {
	if strings.TrimSpace(petID) == "" {
		return nil, ErrNotFound
	}
	var rec domain.AdoptionReceipt
	err := db.WithContext(ctx).
		Where("user_id = ? AND pet_id = ? AND key = ? AND expires_at > ?", userID, petID, key, now).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &rec, err
}

// CreateReceipt inserts a receipt and returns ErrDuplicate on unique violation.
func CreateReceipt(ctx context.Context, db *gorm.DB, userID, petID, key string, status int, ttl time.Duration) (*domain.AdoptionReceipt, error) {
	now := time.Now().UTC()
	rec := &domain.AdoptionReceipt{
		ID:        uuid.NewString(),
		UserID:    userID,
		PetID:     petID,
		Key:       key,
		Status:    status,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		// glebarez/sqlite often returns plain-text errors for UNIQUE violations.
		low := strings.ToLower(err.Error())
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(low, "unique constraint failed") ||
			strings.Contains(low, "constraint failed: unique") {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return rec, nil
}

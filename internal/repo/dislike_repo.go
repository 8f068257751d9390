// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Dislike
// model, which backs the per-user exclusion set.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/miaudote/go-adopt-backend/internal/domain"
)

// DislikedPetIDs returns the IDs of every pet userID has disliked.
// Pure read; the order is unspecified. An empty slice means no exclusions.
func DislikedPetIDs(ctx context.Context, db *gorm.DB, userID string) ([]string, error) {
	var ids []string
	err := db.WithContext(ctx).
		Model(&domain.Dislike{}).
		Where("user_id = ? AND pet_id IS NOT NULL", userID).
		Pluck("pet_id", &ids).Error
	return ids, err
}

// CreateDislike inserts a (user, pet) rejection pair. The pair is unique;
// re-disliking the same pet surfaces the unique-constraint error to the
// caller for translation.
func CreateDislike(ctx context.Context, db *gorm.DB, userID, petID string) (*domain.Dislike, error) {
	d := &domain.Dislike{
		ID:        uuid.NewString(),
		UserID:    userID,
		PetID:     petID,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(d).Error; err != nil {
		return nil, err
	}
	return d, nil
}

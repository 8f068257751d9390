// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Favorite
// model, including the two cascades the pet lifecycle needs: the permanent
// hard delete used by adoption and the reversible soft-delete/restore pair
// used by deactivation.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/miaudote/go-adopt-backend/internal/domain"
)

// CreateFavorite inserts a (user, pet) interest pair. The pair is unique;
// re-favoriting surfaces the unique-constraint error to the caller.
func CreateFavorite(ctx context.Context, db *gorm.DB, userID, petID string) (*domain.Favorite, error) {
	f := &domain.Favorite{
		ID:        uuid.NewString(),
		UserID:    userID,
		PetID:     petID,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

// DeleteFavorite removes a user's favorite of a pet (the "unfavorite"
// action). The row is removed for good, not soft-deleted. Returns
// ErrNotFound when the pair does not exist.
func DeleteFavorite(ctx context.Context, db *gorm.DB, userID, petID string) error {
	res := db.WithContext(ctx).Unscoped().
		Where("user_id = ? AND pet_id = ?", userID, petID).
		Delete(&domain.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListFavoritesByUser returns the user's active favorites with their pet
// rows preloaded, newest first.
func ListFavoritesByUser(ctx context.Context, db *gorm.DB, userID string) ([]domain.Favorite, error) {
	var out []domain.Favorite
	err := db.WithContext(ctx).
		Preload("Pet").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// ListFavoritesByPet returns every favorite referencing petID across all
// users. includeInactive pulls soft-deleted rows in, which the restore
// cascade needs.
func ListFavoritesByPet(ctx context.Context, db *gorm.DB, petID string, includeInactive bool) ([]domain.Favorite, error) {
	q := db.WithContext(ctx)
	if includeInactive {
		q = q.Unscoped()
	}
	var out []domain.Favorite
	err := q.Where("pet_id = ?", petID).Find(&out).Error
	return out, err
}

// HardDeleteFavoritesByPet permanently removes every favorite referencing
// petID, across all users and regardless of soft-delete state. This is the
// adoption cascade: favorites of an adopted pet must not linger.
func HardDeleteFavoritesByPet(ctx context.Context, db *gorm.DB, petID string) error {
	return db.WithContext(ctx).Unscoped().
		Where("pet_id = ?", petID).
		Delete(&domain.Favorite{}).Error
}

// SoftDeleteFavoritesByPet marks every active favorite of petID inactive.
// Reversible via RestoreFavoritesByPet.
func SoftDeleteFavoritesByPet(ctx context.Context, db *gorm.DB, petID string) error {
	return db.WithContext(ctx).
		Where("pet_id = ?", petID).
		Delete(&domain.Favorite{}).Error
}

// RestoreFavoritesByPet clears the soft-delete marker of every favorite
// referencing petID.
func RestoreFavoritesByPet(ctx context.Context, db *gorm.DB, petID string) error {
	return db.WithContext(ctx).Unscoped().
		Model(&domain.Favorite{}).
		Where("pet_id = ?", petID).
		Update("deleted_at", nil).Error
}

// CountFavoritesByPet returns how many active favorites reference petID.
func CountFavoritesByPet(ctx context.Context, db *gorm.DB, petID string) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("pet_id = ?", petID).
		Count(&n).Error
	return n, err
}

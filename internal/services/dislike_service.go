// Package services – DislikeService
//
// Dislikes form the per-user exclusion set: once a user rejects a pet it
// disappears from their browsing pool and from their user-scoped lookups.
// Rows are append-only; nothing in the engine ever mutates or removes them.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/miaudote/go-adopt-backend/internal/domain"
	"github.com/miaudote/go-adopt-backend/internal/repo"
)

// DislikeService implements the use-cases around pet rejection.
type DislikeService struct {
	// DB is the database handle used for all dislike operations.
	DB *gorm.DB

	// Pets resolves the pet visibility check before a dislike is recorded.
	Pets *PetService
}

// ExcludedPetIDs returns the set of pet IDs userID has disliked. Pure read.
func (s *DislikeService) ExcludedPetIDs(ctx context.Context, userID string) ([]string, error) {
	return repo.DislikedPetIDs(ctx, s.DB, userID)
}

// Dislike records that userID rejected petID. The pet must currently be
// visible to the user (active, unowned, not already excluded); otherwise
// ErrPetNotFound. Re-disliking yields ErrAlreadyDisliked.
func (s *DislikeService) Dislike(ctx context.Context, userID, petID string) (*domain.Dislike, error) {
	if _, err := s.Pets.FindToFavorite(ctx, userID, petID); err != nil {
		return nil, err
	}
	d, err := repo.CreateDislike(ctx, s.DB, userID, petID)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicate(err) {
			return nil, ErrAlreadyDisliked
		}
		return nil, err
	}
	return d, nil
}

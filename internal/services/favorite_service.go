// Package services – FavoriteService
//
// Favorites record a user's interest in a pet. Their lifecycle is owned
// elsewhere once expressed: adoption hard-deletes every favorite of the pet,
// and the pet lifecycle toggle soft-deletes/restores them in lockstep with
// the pet. This service covers the user-facing create/remove/list surface.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/miaudote/go-adopt-backend/internal/domain"
	"github.com/miaudote/go-adopt-backend/internal/repo"
)

// FavoriteService implements the use-cases around favorites.
type FavoriteService struct {
	// DB is the database handle used for all favorite operations.
	DB *gorm.DB

	// Pets resolves the pet visibility check before a favorite is recorded.
	Pets *PetService
}

// Favorite records userID's interest in petID. The pet must currently be
// visible to the user (active, unowned, not disliked); otherwise
// ErrPetNotFound. Re-favoriting yields ErrAlreadyFavorited.
func (s *FavoriteService) Favorite(ctx context.Context, userID, petID string) (*domain.Favorite, error) {
	if _, err := s.Pets.FindToFavorite(ctx, userID, petID); err != nil {
		return nil, err
	}
	f, err := repo.CreateFavorite(ctx, s.DB, userID, petID)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicate(err) {
			return nil, ErrAlreadyFavorited
		}
		return nil, err
	}
	return f, nil
}

// Unfavorite removes userID's favorite of petID for good. Returns
// ErrFavoriteNotFound when the pair does not exist.
func (s *FavoriteService) Unfavorite(ctx context.Context, userID, petID string) error {
	if err := repo.DeleteFavorite(ctx, s.DB, userID, petID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrFavoriteNotFound
		}
		return err
	}
	return nil
}

// ListMine returns the user's active favorites with their pets attached.
func (s *FavoriteService) ListMine(ctx context.Context, userID string) ([]domain.Favorite, error) {
	return repo.ListFavoritesByUser(ctx, s.DB, userID)
}

// isDuplicate attempts to detect unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}

// Package services – SpeciesService
//
// Species are reference entities owned by their own CRUD surface; the
// matching engine only consults them for existence. Names are unique and
// normalized with an upper-cased first letter before persisting.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/miaudote/go-adopt-backend/internal/domain"
	"github.com/miaudote/go-adopt-backend/internal/repo"
	"github.com/miaudote/go-adopt-backend/internal/utils"
)

// SpeciesService implements the species CRUD surface.
type SpeciesService struct {
	DB *gorm.DB
}

// List returns all species, optionally including inactive rows.
func (s *SpeciesService) List(ctx context.Context, includeInactive bool) ([]domain.Species, error) {
	return repo.ListSpecies(ctx, s.DB, includeInactive)
}

// Get fetches a species by ID, or ErrSpeciesNotFound.
func (s *SpeciesService) Get(ctx context.Context, id string, includeInactive bool) (*domain.Species, error) {
	sp, err := repo.GetSpecies(ctx, s.DB, id, includeInactive)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrSpeciesNotFound
		}
		return nil, err
	}
	return sp, nil
}

// Create registers a species with a normalized name. A colliding name yields
// ErrDuplicateName.
func (s *SpeciesService) Create(ctx context.Context, name, image string) (*domain.Species, error) {
	var sp *domain.Species
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		sp, err = repo.CreateSpecies(ctx, tx, utils.CapitalizeFirst(name), image)
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicate(err) {
				return ErrDuplicateName
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sp, nil
}

// Update edits a species. An empty field is left untouched.
func (s *SpeciesService) Update(ctx context.Context, id, name, image string) error {
	updates := map[string]any{}
	if name != "" {
		updates["name"] = utils.CapitalizeFirst(name)
	}
	if image != "" {
		updates["image"] = image
	}
	if len(updates) == 0 {
		return nil
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.UpdateSpecies(ctx, tx, id, updates); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrSpeciesNotFound
			}
			if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicate(err) {
				return ErrDuplicateName
			}
			return err
		}
		return nil
	})
}

// SetActive soft-deletes or restores a species. The lookup spans inactive
// rows so a deactivated species can be brought back.
func (s *SpeciesService) SetActive(ctx context.Context, id string, active bool) error {
	if _, err := s.Get(ctx, id, true); err != nil {
		return err
	}
	if active {
		return repo.RestoreSpecies(ctx, s.DB, id)
	}
	return repo.SoftDeleteSpecies(ctx, s.DB, id)
}

// Package services – GiftService
//
// Gifts are reference entities attached to adopted pets by gift assignment.
// The service owns their CRUD surface; existence checks for the assignment
// path go through Get.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/miaudote/go-adopt-backend/internal/domain"
	"github.com/miaudote/go-adopt-backend/internal/repo"
	"github.com/miaudote/go-adopt-backend/internal/utils"
)

// GiftService implements the gift CRUD surface.
type GiftService struct {
	DB *gorm.DB
}

// List returns gifts, optionally filtered by a normalized name prefix and
// optionally including inactive rows.
func (s *GiftService) List(ctx context.Context, name string, includeInactive bool) ([]domain.Gift, error) {
	prefix := ""
	if name != "" {
		prefix = utils.CapitalizeFirst(name)
	}
	return repo.ListGifts(ctx, s.DB, prefix, includeInactive)
}

// Get fetches a gift by ID, or ErrGiftNotFound.
func (s *GiftService) Get(ctx context.Context, id string, includeInactive bool) (*domain.Gift, error) {
	g, err := repo.GetGift(ctx, s.DB, id, includeInactive)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrGiftNotFound
		}
		return nil, err
	}
	return g, nil
}

// Create registers a gift with a normalized name.
func (s *GiftService) Create(ctx context.Context, name, description, image string) (*domain.Gift, error) {
	var g *domain.Gift
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		g, err = repo.CreateGift(ctx, tx, utils.CapitalizeFirst(name), description, image)
		return err
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Update edits a gift. An empty field is left untouched.
func (s *GiftService) Update(ctx context.Context, id, name, description, image string) error {
	updates := map[string]any{}
	if name != "" {
		updates["name"] = utils.CapitalizeFirst(name)
	}
	if description != "" {
		updates["description"] = description
	}
	if image != "" {
		updates["image"] = image
	}
	if len(updates) == 0 {
		return nil
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.UpdateGift(ctx, tx, id, updates); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrGiftNotFound
			}
			return err
		}
		return nil
	})
}

// SetActive soft-deletes or restores a gift. Gifts have no dependent rows,
// so there is no cascade here.
func (s *GiftService) SetActive(ctx context.Context, id string, active bool) error {
	if _, err := s.Get(ctx, id, true); err != nil {
		return err
	}
	if active {
		return repo.RestoreGift(ctx, s.DB, id)
	}
	return repo.SoftDeleteGift(ctx, s.DB, id)
}

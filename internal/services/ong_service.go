// Package services – OngService
//
// Shelters (ONGs) register pets and carry the coverage text the browsing
// coverage filter matches against. Coverage is stored upper-cased so the
// filter's substring match stays case-insensitive.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/miaudote/go-adopt-backend/internal/domain"
	"github.com/miaudote/go-adopt-backend/internal/repo"
)

// CreateOngInput is the payload for registering a shelter.
type CreateOngInput struct {
	Name     string
	Email    string
	Phone    string
	Cep      string
	Address  string
	District string
	City     string
	UF       string
	Coverage string
	Image    string
}

// OngService implements the shelter CRUD surface.
type OngService struct {
	DB *gorm.DB
}

// List returns shelters, optionally narrowed to one UF and optionally
// including inactive rows.
func (s *OngService) List(ctx context.Context, uf string, includeInactive bool) ([]domain.Ong, error) {
	return repo.ListOngs(ctx, s.DB, strings.ToUpper(strings.TrimSpace(uf)), includeInactive)
}

// Get fetches a shelter by ID, or ErrOngNotFound.
func (s *OngService) Get(ctx context.Context, id string, includeInactive bool) (*domain.Ong, error) {
	o, err := repo.GetOng(ctx, s.DB, id, includeInactive)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrOngNotFound
		}
		return nil, err
	}
	return o, nil
}

// Create registers a shelter. UF and coverage are upper-cased on the way in.
func (s *OngService) Create(ctx context.Context, in CreateOngInput) (*domain.Ong, error) {
	o := &domain.Ong{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		Cep:      strings.TrimSpace(in.Cep),
		Address:  strings.TrimSpace(in.Address),
		District: strings.TrimSpace(in.District),
		City:     strings.TrimSpace(in.City),
		UF:       strings.ToUpper(strings.TrimSpace(in.UF)),
		Coverage: strings.ToUpper(strings.TrimSpace(in.Coverage)),
		Image:    strings.TrimSpace(in.Image),
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repo.CreateOng(ctx, tx, o)
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Update edits a shelter. Empty fields are left untouched.
func (s *OngService) Update(ctx context.Context, id string, in CreateOngInput) error {
	updates := map[string]any{}
	set := func(col, v string) {
		if v = strings.TrimSpace(v); v != "" {
			updates[col] = v
		}
	}
	set("name", in.Name)
	set("email", in.Email)
	set("phone", in.Phone)
	set("cep", in.Cep)
	set("address", in.Address)
	set("district", in.District)
	set("city", in.City)
	set("uf", strings.ToUpper(in.UF))
	set("coverage", strings.ToUpper(in.Coverage))
	set("image", in.Image)
	if len(updates) == 0 {
		return nil
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.UpdateOng(ctx, tx, id, updates); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrOngNotFound
			}
			return err
		}
		return nil
	})
}

// SetActive soft-deletes or restores a shelter.
func (s *OngService) SetActive(ctx context.Context, id string, active bool) error {
	if _, err := s.Get(ctx, id, true); err != nil {
		return err
	}
	if active {
		return repo.RestoreOng(ctx, s.DB, id)
	}
	return repo.SoftDeleteOng(ctx, s.DB, id)
}

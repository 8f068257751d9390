// Package services – PartnerService
//
// Partners are sponsoring companies. Plain CRUD; nothing in the matching
// engine references them.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/miaudote/go-adopt-backend/internal/domain"
	"github.com/miaudote/go-adopt-backend/internal/repo"
)

// CreatePartnerInput is the payload for registering a partner.
type CreatePartnerInput struct {
	FantasyName string
	CompanyName string
	Cnpj        string
	Email       string
	Phone1      string
	Cep         string
	Address     string
	District    string
	City        string
	UF          string
	Image       string
}

// PartnerService implements the partner CRUD surface.
type PartnerService struct {
	DB *gorm.DB
}

// List returns partners, optionally filtered by fantasy-name prefix and UF,
// optionally including inactive rows.
func (s *PartnerService) List(ctx context.Context, fantasyName, uf string, includeInactive bool) ([]domain.Partner, error) {
	return repo.ListPartners(ctx, s.DB,
		strings.TrimSpace(fantasyName),
		strings.ToUpper(strings.TrimSpace(uf)),
		includeInactive)
}

// Get fetches a partner by ID, or ErrPartnerNotFound.
func (s *PartnerService) Get(ctx context.Context, id string, includeInactive bool) (*domain.Partner, error) {
	p, err := repo.GetPartner(ctx, s.DB, id, includeInactive)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create registers a partner.
func (s *PartnerService) Create(ctx context.Context, in CreatePartnerInput) (*domain.Partner, error) {
	p := &domain.Partner{
		FantasyName: strings.TrimSpace(in.FantasyName),
		CompanyName: strings.TrimSpace(in.CompanyName),
		Cnpj:        strings.TrimSpace(in.Cnpj),
		Email:       strings.TrimSpace(in.Email),
		Phone1:      strings.TrimSpace(in.Phone1),
		Cep:         strings.TrimSpace(in.Cep),
		Address:     strings.TrimSpace(in.Address),
		District:    strings.TrimSpace(in.District),
		City:        strings.TrimSpace(in.City),
		UF:          strings.ToUpper(strings.TrimSpace(in.UF)),
		Image:       strings.TrimSpace(in.Image),
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repo.CreatePartner(ctx, tx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Update edits a partner. Empty fields are left untouched.
func (s *PartnerService) Update(ctx context.Context, id string, in CreatePartnerInput) error {
	updates := map[string]any{}
	set := func(col, v string) {
		if v = strings.TrimSpace(v); v != "" {
			updates[col] = v
		}
	}
	set("fantasy_name", in.FantasyName)
	set("company_name", in.CompanyName)
	set("cnpj", in.Cnpj)
	set("email", in.Email)
	set("phone1", in.Phone1)
	set("cep", in.Cep)
	set("address", in.Address)
	set("district", in.District)
	set("city", in.City)
	set("uf", strings.ToUpper(in.UF))
	set("image", in.Image)
	if len(updates) == 0 {
		return nil
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.UpdatePartner(ctx, tx, id, updates); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrPartnerNotFound
			}
			return err
		}
		return nil
	})
}

// SetActive soft-deletes or restores a partner.
func (s *PartnerService) SetActive(ctx context.Context, id string, active bool) error {
	if _, err := s.Get(ctx, id, true); err != nil {
		return err
	}
	if active {
		return repo.RestorePartner(ctx, s.DB, id)
	}
	return repo.SoftDeletePartner(ctx, s.DB, id)
}

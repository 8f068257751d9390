// Package services – PetService
//
// This file implements the PetService, the core of the adoption platform:
// the randomized, dislike-excluded browsing pool, the transactional adoption
// state machine with its favorite cascade, gift assignment, and the
// activate/deactivate lifecycle guard. Service-level errors
// (e.g. ErrPetNotFound, ErrInvalidAge, ErrPetAdopted) are returned for
// predictable cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/miaudote/go-adopt-backend/internal/domain"
	"github.com/miaudote/go-adopt-backend/internal/repo"
	"github.com/miaudote/go-adopt-backend/internal/utils"
)

// PetFilter carries the raw browsing filters as supplied by the caller.
// All fields are optional free text; parsing and validation happen in
// ListEligible.
type PetFilter struct {
	Age       string
	Weight    string
	Cut       string
	Gender    string
	SpeciesID string
	UF        string
}

// AdoptionResult is the caller-facing outcome of a successful adoption.
type AdoptionResult struct {
	Message    string `json:"message"`
	Background string `json:"background"`
}

// CreatePetInput is the payload for registering a pet.
type CreatePetInput struct {
	Name        string
	Description string
	Age         string
	Weight      string
	Gender      string
	Cut         bool
	Image       string
	SpeciesID   string
	OngID       string
}

// UpdatePetInput carries the optional fields of a pet edit. Nil/empty fields
// are left untouched.
type UpdatePetInput struct {
	Name        string
	Description string
	Age         string
	Weight      string
	Gender      string
	Cut         *bool
	Image       string
	SpeciesID   string
	OngID       string
}

// PetService implements the use-cases around pets: eligibility matching,
// adoption, gift assignment, lifecycle toggling, and registration. All
// multi-step mutations run inside a transaction on the provided GORM handle.
type PetService struct {
	// DB is the database handle used for all pet operations.
	// The handle may be a plain *gorm.DB or a transaction-bound handle.
	DB *gorm.DB
}

// ListEligible returns the randomized pool of pets userID may adopt: active,
// unowned, outside the user's dislike set, and matching every supplied filter.
//
// Semantics and validation:
//   - age/weight must contain at least one digit; otherwise ErrInvalidAge /
//     ErrInvalidWeight. The match itself is a prefix match against the stored
//     free text ("2" matches "2 anos"), not a numeric range.
//   - speciesID must reference an existing species; otherwise
//     ErrSpeciesNotFound, and the query never runs.
//   - uf is upper-cased and matched by substring containment against the
//     shelter's coverage text.
//   - cut ("true"/"false") and gender are exact-match filters.
//
// Ordering is randomized per invocation at the store; callers must not rely
// on any stable order between calls.
func (s *PetService) ListEligible(ctx context.Context, userID string, f PetFilter) ([]domain.Pet, error) {
	excluded, err := repo.DislikedPetIDs(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}

	search := repo.PetSearch{ExcludeIDs: excluded}

	if age := strings.TrimSpace(f.Age); age != "" {
		if _, err := utils.ExtractNumber(age); err != nil {
			return nil, ErrInvalidAge
		}
		search.AgePrefix = age
	}
	if weight := strings.TrimSpace(f.Weight); weight != "" {
		if _, err := utils.ExtractNumber(weight); err != nil {
			return nil, ErrInvalidWeight
		}
		search.WeightPrefix = weight
	}
	if cut := utils.ParseOptionalBool(f.Cut); cut != nil {
		search.Cut = cut
	}
	if gender := strings.TrimSpace(f.Gender); gender != "" {
		search.Gender = gender
	}
	if speciesID := strings.TrimSpace(f.SpeciesID); speciesID != "" {
		if _, err := repo.GetSpecies(ctx, s.DB, speciesID, false); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, ErrSpeciesNotFound
			}
			return nil, err
		}
		search.SpeciesID = speciesID
	}
	if uf := strings.TrimSpace(f.UF); uf != "" {
		search.Coverage = strings.ToUpper(uf)
	}

	return repo.ListEligiblePets(ctx, s.DB, search)
}

// Adopt atomically transitions the pet to adopted by userID and removes every
// favorite referencing it, across all users. The unowned precondition and the
// ownership write are a single UPDATE inside the transaction, so of two
// concurrent adopters at most one succeeds; the other gets ErrPetNotFound,
// indistinguishable from a missing pet.
//
// Any failure rolls the whole transaction back; no intermediate state is
// observable and retrying after a storage failure is safe.
func (s *PetService) Adopt(ctx context.Context, userID, petID string) (*AdoptionResult, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.ClaimPet(ctx, tx, petID, userID, time.Now().UTC()); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrPetNotFound
			}
			return err
		}
		// Favorites of an adopted pet are meaningless; remove them for good.
		return repo.HardDeleteFavoritesByPet(ctx, tx, petID)
	})
	if err != nil {
		return nil, err
	}
	return &AdoptionResult{Message: "pet adopted successfully", Background: "success"}, nil
}

// ChooseGift attaches giftID to a pet already adopted by userID. The pet must
// resolve through the (pet, owner) pairing — a missing pet and a pet owned by
// someone else both yield ErrPetNotFound — and the gift must exist. The write
// runs inside a transaction like every other mutation.
func (s *PetService) ChooseGift(ctx context.Context, userID, petID, giftID string) error {
	if _, err := repo.GetPetOwnedBy(ctx, s.DB, petID, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPetNotFound
		}
		return err
	}
	if _, err := repo.GetGift(ctx, s.DB, giftID, false); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrGiftNotFound
		}
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.SetPetGift(ctx, tx, petID, userID, giftID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrPetNotFound
			}
			return err
		}
		return nil
	})
}

// SetActive toggles the pet's soft-delete state and cascades the same status
// to every favorite referencing it.
//
// Rules:
//   - The pet lookup spans active and inactive rows.
//   - Deactivating an adopted pet is rejected with ErrPetAdopted before any
//     state changes.
//   - Deactivation soft-deletes pet and favorites (reversible); reactivation
//     restores both.
//
// The favorite cascade is a separate write from the pet toggle; each write is
// individually atomic.
func (s *PetService) SetActive(ctx context.Context, petID string, active bool) error {
	pet, err := repo.GetPetAnyStatus(ctx, s.DB, petID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPetNotFound
		}
		return err
	}

	if !active {
		if pet.Adopted() {
			return ErrPetAdopted
		}
		if err := repo.SoftDeletePet(ctx, s.DB, petID); err != nil {
			return err
		}
		return repo.SoftDeleteFavoritesByPet(ctx, s.DB, petID)
	}

	if err := repo.RestorePet(ctx, s.DB, petID); err != nil {
		return err
	}
	return repo.RestoreFavoritesByPet(ctx, s.DB, petID)
}

// FindToFavorite resolves a single pet for a user-scoped action (favorite,
// dislike). The pet must be active, unowned, and not in the user's dislike
// set; anything else is ErrPetNotFound.
func (s *PetService) FindToFavorite(ctx context.Context, userID, petID string) (*domain.Pet, error) {
	excluded, err := repo.DislikedPetIDs(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}
	pet, err := repo.GetVisiblePet(ctx, s.DB, petID, excluded)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	return pet, nil
}

// FindAvailable fetches an unowned pet by ID without user scoping
// (administrative lookup). includeInactive also matches soft-deleted rows.
func (s *PetService) FindAvailable(ctx context.Context, petID string, includeInactive bool) (*domain.Pet, error) {
	pet, err := repo.GetAvailablePet(ctx, s.DB, petID, includeInactive)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	return pet, nil
}

// Create registers a pet. Age and weight must carry a numeric magnitude, the
// image URL is required, and the shelter and species references must exist
// before anything is written.
func (s *PetService) Create(ctx context.Context, in CreatePetInput) (*domain.Pet, error) {
	if _, err := utils.ExtractNumber(in.Age); err != nil {
		return nil, ErrInvalidAge
	}
	if _, err := utils.ExtractNumber(in.Weight); err != nil {
		return nil, ErrInvalidWeight
	}
	if strings.TrimSpace(in.Image) == "" {
		return nil, ErrImageRequired
	}
	if _, err := repo.GetOng(ctx, s.DB, in.OngID, false); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrOngNotFound
		}
		return nil, err
	}
	if _, err := repo.GetSpecies(ctx, s.DB, in.SpeciesID, false); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrSpeciesNotFound
		}
		return nil, err
	}

	pet := &domain.Pet{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Age:         strings.TrimSpace(in.Age),
		Weight:      strings.TrimSpace(in.Weight),
		Gender:      strings.TrimSpace(in.Gender),
		Cut:         in.Cut,
		Image:       strings.TrimSpace(in.Image),
		SpeciesID:   in.SpeciesID,
		OngID:       in.OngID,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repo.CreatePet(ctx, tx, pet)
	})
	if err != nil {
		return nil, err
	}
	return pet, nil
}

// Update edits an unadopted pet. Optional age/weight values are digit-checked
// the same way Create checks them; changed references are existence-checked.
func (s *PetService) Update(ctx context.Context, petID string, in UpdatePetInput) error {
	if _, err := s.FindAvailable(ctx, petID, false); err != nil {
		return err
	}

	updates := map[string]any{}
	if v := strings.TrimSpace(in.Name); v != "" {
		updates["name"] = v
	}
	if v := strings.TrimSpace(in.Description); v != "" {
		updates["description"] = v
	}
	if v := strings.TrimSpace(in.Age); v != "" {
		if _, err := utils.ExtractNumber(v); err != nil {
			return ErrInvalidAge
		}
		updates["age"] = v
	}
	if v := strings.TrimSpace(in.Weight); v != "" {
		if _, err := utils.ExtractNumber(v); err != nil {
			return ErrInvalidWeight
		}
		updates["weight"] = v
	}
	if v := strings.TrimSpace(in.Gender); v != "" {
		updates["gender"] = v
	}
	if in.Cut != nil {
		updates["cut"] = *in.Cut
	}
	if v := strings.TrimSpace(in.Image); v != "" {
		updates["image"] = v
	}
	if v := strings.TrimSpace(in.OngID); v != "" {
		if _, err := repo.GetOng(ctx, s.DB, v, false); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrOngNotFound
			}
			return err
		}
		updates["ong_id"] = v
	}
	if v := strings.TrimSpace(in.SpeciesID); v != "" {
		if _, err := repo.GetSpecies(ctx, s.DB, v, false); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrSpeciesNotFound
			}
			return err
		}
		updates["species_id"] = v
	}
	if len(updates) == 0 {
		return nil
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.UpdatePet(ctx, tx, petID, updates); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrPetNotFound
			}
			return err
		}
		return nil
	})
}

// MyPets returns every pet adopted by userID.
func (s *PetService) MyPets(ctx context.Context, userID string) ([]domain.Pet, error) {
	return repo.ListPetsByOwner(ctx, s.DB, userID)
}

// Summaries returns the admin projection of the pet registry, optionally
// including inactive rows.
func (s *PetService) Summaries(ctx context.Context, includeInactive bool) ([]repo.PetSummary, error) {
	return repo.ListPetSummaries(ctx, s.DB, includeInactive)
}

// GenderStats returns the pets-by-gender breakdown.
func (s *PetService) GenderStats(ctx context.Context) ([]repo.GenderCount, error) {
	return repo.PetsByGender(ctx, s.DB)
}

// AdoptionTotals reports how many pets have been adopted and when the most
// recent adoption happened (nil when none).
func (s *PetService) AdoptionTotals(ctx context.Context) (int64, *time.Time, error) {
	return repo.AdoptionStats(ctx, s.DB)
}

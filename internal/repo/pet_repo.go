// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Pet model,
// including the adoption claim and the randomized eligible-pool query.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a pet is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// Soft-delete handling: default reads exclude soft-deleted rows. Inclusion of
// inactive rows is always an explicit parameter (includeInactive) or an
// explicitly unscoped function, never an ambient default.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/miaudote/go-adopt-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// PetSearch is the query shape for the eligible-pool read. Zero values mean
// "no constraint". Prefix fields match with LIKE 'value%' against the stored
// free-text column; Coverage matches with substring containment against the
// shelter's coverage column.
type PetSearch struct {
	ExcludeIDs   []string
	AgePrefix    string
	WeightPrefix string
	Cut          *bool
	Gender       string
	SpeciesID    string
	Coverage     string
}

// ListEligiblePets returns active, unowned pets matching the search, in
// random per-call order. Dislike exclusion is applied via search.ExcludeIDs.
func ListEligiblePets(ctx context.Context, db *gorm.DB, search PetSearch) ([]domain.Pet, error) {
	q := db.WithContext(ctx).
		Model(&domain.Pet{}).
		Where("pets.owner_id IS NULL")

	if len(search.ExcludeIDs) > 0 {
		q = q.Where("pets.id NOT IN ?", search.ExcludeIDs)
	}
	if search.AgePrefix != "" {
		q = q.Where("pets.age LIKE ?", search.AgePrefix+"%")
	}
	if search.WeightPrefix != "" {
		q = q.Where("pets.weight LIKE ?", search.WeightPrefix+"%")
	}
	if search.Cut != nil {
		q = q.Where("pets.cut = ?", *search.Cut)
	}
	if search.Gender != "" {
		q = q.Where("pets.gender = ?", search.Gender)
	}
	if search.SpeciesID != "" {
		q = q.Where("pets.species_id = ?", search.SpeciesID)
	}
	if search.Coverage != "" {
		q = q.Joins("JOIN ongs ON ongs.id = pets.ong_id").
			Where("ongs.coverage LIKE ?", "%"+search.Coverage+"%")
	}

	var out []domain.Pet
	err := q.Preload("Species").Preload("Ong").
		Order("RANDOM()").
		Find(&out).Error
	return out, err
}

// CreatePet inserts a pet row. ID and CreatedAt are assigned here when unset.
func CreatePet(ctx context.Context, db *gorm.DB, p *domain.Pet) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return db.WithContext(ctx).Create(p).Error
}

// GetAvailablePet fetches a single unowned pet by ID. When includeInactive is
// true, soft-deleted rows are considered as well. Returns ErrNotFound when no
// such pet exists (or it has an owner).
func GetAvailablePet(ctx context.Context, db *gorm.DB, id string, includeInactive bool) (*domain.Pet, error) {
	q := db.WithContext(ctx)
	if includeInactive {
		q = q.Unscoped()
	}
	var p domain.Pet
	err := q.Preload("Species").Preload("Ong").
		Where("id = ? AND owner_id IS NULL", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetVisiblePet fetches an active, unowned pet by ID, additionally hiding any
// ID in excludeIDs (the caller's dislike set). A pet filtered out this way is
// indistinguishable from a missing one: both return ErrNotFound.
func GetVisiblePet(ctx context.Context, db *gorm.DB, id string, excludeIDs []string) (*domain.Pet, error) {
	q := db.WithContext(ctx).
		Where("id = ? AND owner_id IS NULL", id)
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}
	var p domain.Pet
	if err := q.First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPetAnyStatus fetches a pet by ID regardless of its soft-delete state.
// Used by the lifecycle toggle, which operates on both active and inactive
// rows. Returns ErrNotFound when the row does not exist at all.
func GetPetAnyStatus(ctx context.Context, db *gorm.DB, id string) (*domain.Pet, error) {
	var p domain.Pet
	err := db.WithContext(ctx).Unscoped().Where("id = ?", id).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPetOwnedBy fetches the pet only when it is owned by userID. Missing pet
// and wrong owner both surface as ErrNotFound.
func GetPetOwnedBy(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Pet, error) {
	var p domain.Pet
	err := db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, userID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ClaimPet performs the atomic adoption write: it sets owner_id and
// adopted_at only when the pet is still unowned. The unowned predicate is
// part of the UPDATE itself, so two concurrent claimers cannot both succeed;
// the loser sees zero affected rows and gets ErrNotFound.
func ClaimPet(ctx context.Context, db *gorm.DB, id, userID string, now time.Time) error {
	res := db.WithContext(ctx).
		Model(&domain.Pet{}).
		Where("id = ? AND owner_id IS NULL", id).
		Updates(map[string]any{
			"owner_id":   userID,
			"adopted_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetPetGift updates the gift reference of a pet owned by userID. Returns
// ErrNotFound when the pet/owner pairing does not resolve.
func SetPetGift(ctx context.Context, db *gorm.DB, id, userID, giftID string) error {
	res := db.WithContext(ctx).
		Model(&domain.Pet{}).
		Where("id = ? AND owner_id = ?", id, userID).
		Update("gift_id", giftID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdatePet applies the given column updates to an active, unowned pet.
// Returns ErrNotFound when no row matches.
func UpdatePet(ctx context.Context, db *gorm.DB, id string, updates map[string]any) error {
	res := db.WithContext(ctx).
		Model(&domain.Pet{}).
		Where("id = ? AND owner_id IS NULL", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SoftDeletePet marks the pet inactive (sets deleted_at).
func SoftDeletePet(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Delete(&domain.Pet{}, "id = ?", id).Error
}

// RestorePet clears the pet's soft-delete marker.
func RestorePet(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).Unscoped().
		Model(&domain.Pet{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}

// ListPetsByOwner returns every pet adopted by userID.
func ListPetsByOwner(ctx context.Context, db *gorm.DB, userID string) ([]domain.Pet, error) {
	var out []domain.Pet
	err := db.WithContext(ctx).
		Preload("Species").Preload("Gift").
		Where("owner_id = ?", userID).
		Order("adopted_at desc").
		Find(&out).Error
	return out, err
}

// PetSummary is the admin-list projection of a pet row.
type PetSummary struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Image     string         `json:"image"`
	Gender    string         `json:"gender"`
	Age       string         `json:"age"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty"`
}

// ListPetSummaries returns a stable id-ordered projection of pets for admin
// listings. includeInactive pulls soft-deleted rows in as well.
func ListPetSummaries(ctx context.Context, db *gorm.DB, includeInactive bool) ([]PetSummary, error) {
	q := db.WithContext(ctx).Model(&domain.Pet{})
	if includeInactive {
		q = q.Unscoped()
	}
	var out []PetSummary
	err := q.Select("id", "name", "image", "gender", "age", "deleted_at").
		Order("id asc").
		Scan(&out).Error
	return out, err
}

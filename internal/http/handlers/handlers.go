// Package handlers provides HTTP handler implementations for the public API.
//
// This file declares the service contracts the handlers consume and the
// Handlers aggregate that groups every endpoint. Handlers are
// transport-thin: they validate input, call application services, and
// translate results (including service sentinel errors) into HTTP responses.
package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/miaudote/go-adopt-backend/internal/domain"
	"github.com/miaudote/go-adopt-backend/internal/repo"
	"github.com/miaudote/go-adopt-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// PetService defines the matching and lifecycle operations consumed by the
// pet endpoints. Implementations must honor the provided context.
type PetService interface {
	// ListEligible returns the randomized adoption pool for userID.
	ListEligible(ctx context.Context, userID string, f services.PetFilter) ([]domain.Pet, error)
	// Adopt transitions the pet to adopted by userID, atomically.
	Adopt(ctx context.Context, userID, petID string) (*services.AdoptionResult, error)
	// ChooseGift attaches a gift to a pet owned by userID.
	ChooseGift(ctx context.Context, userID, petID, giftID string) error
	// SetActive toggles the pet's soft-delete state, cascading to favorites.
	SetActive(ctx context.Context, petID string, active bool) error
	// FindAvailable fetches an unowned pet without user scoping.
	FindAvailable(ctx context.Context, petID string, includeInactive bool) (*domain.Pet, error)
	// Create registers a pet.
	Create(ctx context.Context, in services.CreatePetInput) (*domain.Pet, error)
	// Update edits an unadopted pet.
	Update(ctx context.Context, petID string, in services.UpdatePetInput) error
	// MyPets returns pets adopted by userID.
	MyPets(ctx context.Context, userID string) ([]domain.Pet, error)
	// Summaries returns the admin projection of the registry.
	Summaries(ctx context.Context, includeInactive bool) ([]repo.PetSummary, error)
	// GenderStats returns the pets-by-gender breakdown.
	GenderStats(ctx context.Context) ([]repo.GenderCount, error)
	// AdoptionTotals returns the adopted-pet count and the latest adoption time.
	AdoptionTotals(ctx context.Context) (int64, *time.Time, error)
}

// FavoriteService defines the favorite operations consumed by HTTP handlers.
type FavoriteService interface {
	Favorite(ctx context.Context, userID, petID string) (*domain.Favorite, error)
	Unfavorite(ctx context.Context, userID, petID string) error
	ListMine(ctx context.Context, userID string) ([]domain.Favorite, error)
}

// DislikeService defines the exclusion operations consumed by HTTP handlers.
type DislikeService interface {
	Dislike(ctx context.Context, userID, petID string) (*domain.Dislike, error)
}

// SpeciesService defines the species CRUD surface.
type SpeciesService interface {
	List(ctx context.Context, includeInactive bool) ([]domain.Species, error)
	Get(ctx context.Context, id string, includeInactive bool) (*domain.Species, error)
	Create(ctx context.Context, name, image string) (*domain.Species, error)
	Update(ctx context.Context, id, name, image string) error
	SetActive(ctx context.Context, id string, active bool) error
}

// GiftService defines the gift CRUD surface.
type GiftService interface {
	List(ctx context.Context, name string, includeInactive bool) ([]domain.Gift, error)
	Get(ctx context.Context, id string, includeInactive bool) (*domain.Gift, error)
	Create(ctx context.Context, name, description, image string) (*domain.Gift, error)
	Update(ctx context.Context, id, name, description, image string) error
	SetActive(ctx context.Context, id string, active bool) error
}

// OngService defines the shelter CRUD surface.
type OngService interface {
	List(ctx context.Context, uf string, includeInactive bool) ([]domain.Ong, error)
	Get(ctx context.Context, id string, includeInactive bool) (*domain.Ong, error)
	Create(ctx context.Context, in services.CreateOngInput) (*domain.Ong, error)
	Update(ctx context.Context, id string, in services.CreateOngInput) error
	SetActive(ctx context.Context, id string, active bool) error
}

// PartnerService defines the partner CRUD surface.
type PartnerService interface {
	List(ctx context.Context, fantasyName, uf string, includeInactive bool) ([]domain.Partner, error)
	Get(ctx context.Context, id string, includeInactive bool) (*domain.Partner, error)
	Create(ctx context.Context, in services.CreatePartnerInput) (*domain.Partner, error)
	Update(ctx context.Context, id string, in services.CreatePartnerInput) error
	SetActive(ctx context.Context, id string, active bool) error
}

// ReceiptRecorder persists an adoption receipt after a successful adoption so
// a retried request carrying the same Idempotency-Key can be replayed without
// re-running the transaction. Failures are swallowed by the caller.
type ReceiptRecorder func(ctx context.Context, userID, petID, key string, status int)

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for pets, favorites, dislikes, and the
// reference-entity CRUD. It depends on abstract service interfaces to keep
// transport concerns separate from business logic.
type Handlers struct {
	petSvc     PetService
	favSvc     FavoriteService
	dislikeSvc DislikeService
	speciesSvc SpeciesService
	giftSvc    GiftService
	ongSvc     OngService
	partnerSvc PartnerService

	recordReceipt ReceiptRecorder
}

// SetReceiptRecorder installs the adoption receipt hook. Optional; without it
// Idempotency-Key headers are validated but replays are never detected.
func (h *Handlers) SetReceiptRecorder(fn ReceiptRecorder) { h.recordReceipt = fn }

// New constructs a Handlers instance bound to the given services.
func New(
	petSvc PetService,
	favSvc FavoriteService,
	dislikeSvc DislikeService,
	speciesSvc SpeciesService,
	giftSvc GiftService,
	ongSvc OngService,
	partnerSvc PartnerService,
) *Handlers {
	return &Handlers{
		petSvc:     petSvc,
		favSvc:     favSvc,
		dislikeSvc: dislikeSvc,
		speciesSvc: speciesSvc,
		giftSvc:    giftSvc,
		ongSvc:     ongSvc,
		partnerSvc: partnerSvc,
	}
}

// userID extracts the authenticated user id from the Gin context (set by
// upstream middleware). If absent, it falls back to the X-User-ID header
// (tests use it), then to a demo fallback so local runs work unauthenticated.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			return h
		}
	}
	return "demo-user"
}

// Pet HTTP handlers.
//
// This file exposes the REST endpoints for pet resources:
//   - GET    /pets                 (randomized eligible pool, filtered)
//   - GET    /pets/summary         (admin registry projection)
//   - GET    /pets/stats/gender    (pets-by-gender breakdown)
//   - GET    /pets/stats/adoptions (adoption totals)
//   - GET    /pets/mine            (pets adopted by the caller)
//   - GET    /pets/:id             (administrative lookup)
//   - POST   /pets                 (register)
//   - PUT    /pets/:id             (edit, unadopted only)
//   - POST   /pets/:id/adopt       (adoption transaction, idempotency-aware)
//   - POST   /pets/:id/gift        (gift assignment)
//   - PATCH  /pets/:id/active      (lifecycle toggle)
//
// Handlers are transport-thin: they validate input, delegate to application
// services, and translate domain/service errors into HTTP results.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/miaudote/go-adopt-backend/internal/http/middleware"
	"github.com/miaudote/go-adopt-backend/internal/services"
	"github.com/miaudote/go-adopt-backend/internal/utils"
)

// CreatePetRequest is the JSON payload for registering a pet. Age and weight
// are free text carrying a numeric magnitude ("3 anos", "12 kg"); the image
// is a URL produced by the upload pipeline, which lives outside this API.
type CreatePetRequest struct {
	Name        string `json:"name" binding:"required" example:"Luna"`
	Description string `json:"description" example:"Very calm, good with kids"`
	Age         string `json:"age" binding:"required" example:"3 anos"`
	Weight      string `json:"weight" binding:"required" example:"12 kg"`
	Gender      string `json:"gender" binding:"required,oneof=female male" example:"female"`
	Cut         bool   `json:"cut" example:"true"`
	Image       string `json:"image" binding:"required" example:"https://cdn.example.com/pets/luna.jpg"`
	SpeciesID   string `json:"species_id" binding:"required" format:"uuid"`
	OngID       string `json:"ong_id" binding:"required" format:"uuid"`
}

// UpdatePetRequest is the JSON payload for editing a pet. All fields are
// optional; empty values leave the stored column untouched.
type UpdatePetRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Age         string `json:"age,omitempty"`
	Weight      string `json:"weight,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Cut         *bool  `json:"cut,omitempty"`
	Image       string `json:"image,omitempty"`
	SpeciesID   string `json:"species_id,omitempty"`
	OngID       string `json:"ong_id,omitempty"`
}

// ChooseGiftRequest is the JSON payload for attaching a gift to an adopted pet.
type ChooseGiftRequest struct {
	GiftID string `json:"gift_id" binding:"required" format:"uuid"`
}

// SetActiveRequest is the JSON payload for the lifecycle toggle.
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required" example:"false"`
}

// ListEligiblePets godoc
// @ID          listEligiblePets
// @Summary     List pets eligible for adoption
// @Description Randomized pool of active, unowned pets matching the supplied
// @Description filters, with the caller's disliked pets excluded. Order
// @Description changes on every call.
// @Tags        Pets
// @Produce     json
// @Param       X-User-ID header string false "User ID (demo header)"
// @Param       age       query  string false "Age prefix, must contain a digit" example(2 anos)
// @Param       weight    query  string false "Weight prefix, must contain a digit"
// @Param       cut       query  string false "true/false"
// @Param       gender    query  string false "Exact gender match"
// @Param       speciesId query  string false "Species ID (must exist)"
// @Param       uf        query  string false "Coverage region, matched case-insensitively"
// @Success     200 {array}  domain.Pet
// @Failure     400 {object} handlers.ErrorResponse "Invalid age/weight filter"
// @Failure     404 {object} handlers.ErrorResponse "Species not found"
// @Router      /pets [get]
func (h *Handlers) ListEligiblePets(c *gin.Context) {
	f := services.PetFilter{
		Age:       c.Query("age"),
		Weight:    c.Query("weight"),
		Cut:       c.Query("cut"),
		Gender:    c.Query("gender"),
		SpeciesID: c.Query("speciesId"),
		UF:        c.Query("uf"),
	}

	pets, err := h.petSvc.ListEligible(c.Request.Context(), userID(c), f)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAge):
			fail(c, http.StatusBadRequest, ErrCodeInvalidFilter, "invalid age filter")
		case errors.Is(err, services.ErrInvalidWeight):
			fail(c, http.StatusBadRequest, ErrCodeInvalidFilter, "invalid weight filter")
		case errors.Is(err, services.ErrSpeciesNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "species not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, pets)
}

// GetPet godoc
// @ID          getPet
// @Summary     Get an available pet by ID
// @Tags        Pets
// @Produce     json
// @Param       id        path  string true  "Pet ID" format(uuid)
// @Param       inactives query string false "true to include deactivated pets"
// @Success     200 {object} domain.Pet
// @Failure     404 {object} handlers.ErrorResponse "Pet not found"
// @Router      /pets/{id} [get]
func (h *Handlers) GetPet(c *gin.Context) {
	pet, err := h.petSvc.FindAvailable(c.Request.Context(), c.Param("id"), utils.Truthy(c.Query("inactives")))
	if err != nil {
		if errors.Is(err, services.ErrPetNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "pet not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, pet)
}

// ListPetSummaries godoc
// @ID          listPetSummaries
// @Summary     Admin projection of the pet registry
// @Tags        Pets
// @Produce     json
// @Param       inactives query string false "true to include deactivated pets"
// @Success     200 {array} repo.PetSummary
// @Router      /pets/summary [get]
func (h *Handlers) ListPetSummaries(c *gin.Context) {
	out, err := h.petSvc.Summaries(c.Request.Context(), utils.Truthy(c.Query("inactives")))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}

// PetGenderStats godoc
// @ID          petGenderStats
// @Summary     Pets-by-gender breakdown
// @Tags        Pets
// @Produce     json
// @Success     200 {array} repo.GenderCount
// @Router      /pets/stats/gender [get]
func (h *Handlers) PetGenderStats(c *gin.Context) {
	out, err := h.petSvc.GenderStats(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}

// AdoptionStatsResponse is the payload of the adoption totals endpoint.
type AdoptionStatsResponse struct {
	Adopted         int64      `json:"adopted"`
	LatestAdoptedAt *time.Time `json:"latestAdoptedAt,omitempty"`
}

// PetAdoptionStats godoc
// @ID          petAdoptionStats
// @Summary     Adoption totals
// @Tags        Pets
// @Produce     json
// @Success     200 {object} handlers.AdoptionStatsResponse
// @Router      /pets/stats/adoptions [get]
func (h *Handlers) PetAdoptionStats(c *gin.Context) {
	count, latest, err := h.petSvc.AdoptionTotals(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, AdoptionStatsResponse{Adopted: count, LatestAdoptedAt: latest})
}

// MyPets godoc
// @ID          myPets
// @Summary     Pets adopted by the caller
// @Tags        Pets
// @Produce     json
// @Param       X-User-ID header string false "User ID (demo header)"
// @Success     200 {array} domain.Pet
// @Router      /pets/mine [get]
func (h *Handlers) MyPets(c *gin.Context) {
	out, err := h.petSvc.MyPets(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}

// CreatePet godoc
// @ID          createPet
// @Summary     Register a pet
// @Tags        Pets
// @Accept      json
// @Produce     json
// @Param       body body handlers.CreatePetRequest true "Pet payload"
// @Success     201 {object} domain.Pet
// @Failure     400 {object} handlers.ErrorResponse "Invalid payload or age/weight"
// @Failure     404 {object} handlers.ErrorResponse "Species or shelter not found"
// @Router      /pets [post]
func (h *Handlers) CreatePet(c *gin.Context) {
	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid pet payload")
		return
	}

	pet, err := h.petSvc.Create(c.Request.Context(), services.CreatePetInput{
		Name:        req.Name,
		Description: req.Description,
		Age:         req.Age,
		Weight:      req.Weight,
		Gender:      req.Gender,
		Cut:         req.Cut,
		Image:       req.Image,
		SpeciesID:   req.SpeciesID,
		OngID:       req.OngID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAge):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid age")
		case errors.Is(err, services.ErrInvalidWeight):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid weight")
		case errors.Is(err, services.ErrImageRequired):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "image is required")
		case errors.Is(err, services.ErrSpeciesNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "species not found")
		case errors.Is(err, services.ErrOngNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "ong not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, pet)
}

// UpdatePet godoc
// @ID          updatePet
// @Summary     Edit an unadopted pet
// @Tags        Pets
// @Accept      json
// @Produce     json
// @Param       id   path string true "Pet ID" format(uuid)
// @Param       body body handlers.UpdatePetRequest true "Fields to change"
// @Success     204 {string} string "No Content"
// @Failure     400 {object} handlers.ErrorResponse "Invalid age/weight"
// @Failure     404 {object} handlers.ErrorResponse "Pet/species/shelter not found"
// @Router      /pets/{id} [put]
func (h *Handlers) UpdatePet(c *gin.Context) {
	var req UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid pet payload")
		return
	}

	err := h.petSvc.Update(c.Request.Context(), c.Param("id"), services.UpdatePetInput{
		Name:        req.Name,
		Description: req.Description,
		Age:         req.Age,
		Weight:      req.Weight,
		Gender:      req.Gender,
		Cut:         req.Cut,
		Image:       req.Image,
		SpeciesID:   req.SpeciesID,
		OngID:       req.OngID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAge):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid age")
		case errors.Is(err, services.ErrInvalidWeight):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid weight")
		case errors.Is(err, services.ErrPetNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "pet not found")
		case errors.Is(err, services.ErrSpeciesNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "species not found")
		case errors.Is(err, services.ErrOngNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "ong not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}

// AdoptPet godoc
// @ID          adoptPet
// @Summary     Adopt a pet
// @Description Atomically claims the pet for the caller and removes every
// @Description favorite referencing it. A pet that is missing, inactive, or
// @Description already adopted yields the same 404. Supports Idempotency-Key
// @Description for safe retries.
// @Tags        Pets
// @Produce     json
// @Param       X-User-ID       header string false "User ID (demo header)"
// @Param       Idempotency-Key header string false "Retry-safe request key"
// @Param       id              path   string true  "Pet ID" format(uuid)
// @Success     200 {object} services.AdoptionResult
// @Failure     404 {object} handlers.ErrorResponse "Pet not found"
// @Router      /pets/{id}/adopt [post]
func (h *Handlers) AdoptPet(c *gin.Context) {
	uid := userID(c)
	petID := c.Param("id")

	// A replay of an already-processed adoption is served from its receipt:
	// the pet is necessarily owned by this caller, so re-running the
	// transaction would only produce a misleading 404.
	if middleware.IsReplay(c) {
		ok(c, http.StatusOK, services.AdoptionResult{
			Message:    "pet adopted successfully",
			Background: "success",
		})
		return
	}

	res, err := h.petSvc.Adopt(c.Request.Context(), uid, petID)
	if err != nil {
		if errors.Is(err, services.ErrPetNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "pet not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	if key, present := middleware.GetIdempotencyKey(c); present && h.recordReceipt != nil {
		// Best effort: a failed receipt write must not undo a committed adoption.
		h.recordReceipt(c.Request.Context(), uid, petID, key, http.StatusOK)
	}
	ok(c, http.StatusOK, res)
}

// ChooseGift godoc
// @ID          chooseGift
// @Summary     Attach a gift to an adopted pet
// @Tags        Pets
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "User ID (demo header)"
// @Param       id        path   string true  "Pet ID" format(uuid)
// @Param       body      body   handlers.ChooseGiftRequest true "Gift selection"
// @Success     204 {string} string "No Content"
// @Failure     404 {object} handlers.ErrorResponse "Pet or gift not found"
// @Router      /pets/{id}/gift [post]
func (h *Handlers) ChooseGift(c *gin.Context) {
	var req ChooseGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "gift_id is required")
		return
	}

	err := h.petSvc.ChooseGift(c.Request.Context(), userID(c), c.Param("id"), req.GiftID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPetNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "pet not found")
		case errors.Is(err, services.ErrGiftNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "gift not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}

// SetPetActive godoc
// @ID          setPetActive
// @Summary     Activate or deactivate a pet
// @Description Toggles the pet's soft-delete state and cascades the same
// @Description status to its favorites. Adopted pets cannot be deactivated.
// @Tags        Pets
// @Accept      json
// @Produce     json
// @Param       id   path string true "Pet ID" format(uuid)
// @Param       body body handlers.SetActiveRequest true "Desired status"
// @Success     204 {string} string "No Content"
// @Failure     404 {object} handlers.ErrorResponse "Pet not found"
// @Failure     422 {object} handlers.ErrorResponse "Adopted pets cannot be deactivated"
// @Router      /pets/{id}/active [patch]
func (h *Handlers) SetPetActive(c *gin.Context) {
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "active must be true or false")
		return
	}

	err := h.petSvc.SetActive(c.Request.Context(), c.Param("id"), *req.Active)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPetNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "pet not found")
		case errors.Is(err, services.ErrPetAdopted):
			fail(c, http.StatusUnprocessableEntity, ErrCodeBusinessRule, "adopted pets cannot be deactivated")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}

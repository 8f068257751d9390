// Species HTTP handlers. Plain CRUD over the species reference entity.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/miaudote/go-adopt-backend/internal/services"
	"github.com/miaudote/go-adopt-backend/internal/utils"
)

// SpeciesRequest is the JSON payload for creating or editing a species.
type SpeciesRequest struct {
	Name  string `json:"name" example:"cachorro"`
	Image string `json:"image" example:"https://cdn.example.com/species/dog.png"`
}

// ListSpecies godoc
// @ID      listSpecies
// @Summary List species
// @Tags    Species
// @Produce json
// @Param   inactives query string false "true to include deactivated rows"
// @Success 200 {array} domain.Species
// @Router  /species [get]
func (h *Handlers) ListSpecies(c *gin.Context) {
	out, err := h.speciesSvc.List(c.Request.Context(), utils.Truthy(c.Query("inactives")))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}

// GetSpecies godoc
// @ID      getSpecies
// @Summary Get a species by ID
// @Tags    Species
// @Produce json
// @Param   id path string true "Species ID" format(uuid)
// @Success 200 {object} domain.Species
// @Failure 404 {object} handlers.ErrorResponse
// @Router  /species/{id} [get]
func (h *Handlers) GetSpecies(c *gin.Context) {
	sp, err := h.speciesSvc.Get(c.Request.Context(), c.Param("id"), utils.Truthy(c.Query("inactives")))
	if err != nil {
		if errors.Is(err, services.ErrSpeciesNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "species not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, sp)
}

// CreateSpecies godoc
// @ID      createSpecies
// @Summary Register a species
// @Tags    Species
// @Accept  json
// @Produce json
// @Param   body body handlers.SpeciesRequest true "Species payload"
// @Success 201 {object} domain.Species
// @Failure 409 {object} handlers.ErrorResponse "Name already registered"
// @Router  /species [post]
func (h *Handlers) CreateSpecies(c *gin.Context) {
	var req SpeciesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name is required")
		return
	}
	sp, err := h.speciesSvc.Create(c.Request.Context(), req.Name, req.Image)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateName) {
			fail(c, http.StatusConflict, ErrCodeConflict, "name already registered")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, sp)
}

// UpdateSpecies godoc
// @ID      updateSpecies
// @Summary Edit a species
// @Tags    Species
// @Accept  json
// @Param   id   path string true "Species ID" format(uuid)
// @Param   body body handlers.SpeciesRequest true "Fields to change"
// @Success 204 {string} string "No Content"
// @Failure 404 {object} handlers.ErrorResponse
// @Router  /species/{id} [put]
func (h *Handlers) UpdateSpecies(c *gin.Context) {
	var req SpeciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid species payload")
		return
	}
	if err := h.speciesSvc.Update(c.Request.Context(), c.Param("id"), req.Name, req.Image); err != nil {
		switch {
		case errors.Is(err, services.ErrSpeciesNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "species not found")
		case errors.Is(err, services.ErrDuplicateName):
			fail(c, http.StatusConflict, ErrCodeConflict, "name already registered")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}

// SetSpeciesActive godoc
// @ID      setSpeciesActive
// @Summary Activate or deactivate a species
// @Tags    Species
// @Accept  json
// @Param   id   path string true "Species ID" format(uuid)
// @Param   body body handlers.SetActiveRequest true "Desired status"
// @Success 204 {string} string "No Content"
// @Failure 404 {object} handlers.ErrorResponse
// @Router  /species/{id}/active [patch]
func (h *Handlers) SetSpeciesActive(c *gin.Context) {
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "active must be true or false")
		return
	}
	if err := h.speciesSvc.SetActive(c.Request.Context(), c.Param("id"), *req.Active); err != nil {
		if errors.Is(err, services.ErrSpeciesNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "species not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}

// Shelter (ONG) HTTP handlers. Plain CRUD; the coverage text maintained here
// feeds the browsing coverage filter.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/miaudote/go-adopt-backend/internal/services"
	"github.com/miaudote/go-adopt-backend/internal/utils"
)

// OngRequest is the JSON payload for creating or editing a shelter.
type OngRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Cep      string `json:"cep,omitempty"`
	Address  string `json:"address,omitempty"`
	District string `json:"district,omitempty"`
	City     string `json:"city,omitempty"`
	UF       string `json:"uf,omitempty"`
	Coverage string `json:"coverage,omitempty"`
	Image    string `json:"image,omitempty"`
}

func (r OngRequest) input() services.CreateOngInput {
	return services.CreateOngInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Cep:      r.Cep,
		Address:  r.Address,
		District: r.District,
		City:     r.City,
		UF:       r.UF,
		Coverage: r.Coverage,
		Image:    r.Image,
	}
}

// ListOngs godoc
// @ID      listOngs
// @Summary List shelters
// @Tags    Ongs
// @Produce json
// @Param   uf        query string false "State filter"
// @Param   inactives query string false "true to include deactivated rows"
// @Success 200 {array} domain.Ong
// @Router  /ongs [get]
func (h *Handlers) ListOngs(c *gin.Context) {
	out, err := h.ongSvc.List(c.Request.Context(), c.Query("uf"), utils.Truthy(c.Query("inactives")))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}

// GetOng godoc
// @ID      getOng
// @Summary Get a shelter by ID
// @Tags    Ongs
// @Produce json
// @Param   id path string true "Ong ID" format(uuid)
// @Success 200 {object} domain.Ong
// @Failure 404 {object} handlers.ErrorResponse
// @Router  /ongs/{id} [get]
func (h *Handlers) GetOng(c *gin.Context) {
	o, err := h.ongSvc.Get(c.Request.Context(), c.Param("id"), utils.Truthy(c.Query("inactives")))
	if err != nil {
		if errors.Is(err, services.ErrOngNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "ong not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, o)
}

// CreateOng godoc
// @ID      createOng
// @Summary Register a shelter
// @Tags    Ongs
// @Accept  json
// @Produce json
// @Param   body body handlers.OngRequest true "Shelter payload"
// @Success 201 {object} domain.Ong
// @Router  /ongs [post]
func (h *Handlers) CreateOng(c *gin.Context) {
	var req OngRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name and email are required")
		return
	}
	o, err := h.ongSvc.Create(c.Request.Context(), req.input())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, o)
}

// UpdateOng godoc
// @ID      updateOng
// @Summary Edit a shelter
// @Tags    Ongs
// @Accept  json
// @Param   id   path string true "Ong ID" format(uuid)
// @Param   body body handlers.OngRequest true "Fields to change"
// @Success 204 {string} string "No Content"
// @Failure 404 {object} handlers.ErrorResponse
// @Router  /ongs/{id} [put]
func (h *Handlers) UpdateOng(c *gin.Context) {
	var req OngRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid ong payload")
		return
	}
	if err := h.ongSvc.Update(c.Request.Context(), c.Param("id"), req.input()); err != nil {
		if errors.Is(err, services.ErrOngNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "ong not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}

// SetOngActive godoc
// @ID      setOngActive
// @Summary Activate or deactivate a shelter
// @Tags    Ongs
// @Accept  json
// @Param   id   path string true "Ong ID" format(uuid)
// @Param   body body handlers.SetActiveRequest true "Desired status"
// @Success 204 {string} string "No Content"
// @Failure 404 {object} handlers.ErrorResponse
// @Router  /ongs/{id}/active [patch]
func (h *Handlers) SetOngActive(c *gin.Context) {
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "active must be true or false")
		return
	}
	if err := h.ongSvc.SetActive(c.Request.Context(), c.Param("id"), *req.Active); err != nil {
		if errors.Is(err, services.ErrOngNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "ong not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}

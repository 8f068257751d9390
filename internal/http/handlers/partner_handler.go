// Partner HTTP handlers. Plain CRUD over sponsoring companies.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/miaudote/go-adopt-backend/internal/services"
	"github.com/miaudote/go-adopt-backend/internal/utils"
)

// PartnerRequest is the JSON payload for creating or editing a partner.
type PartnerRequest struct {
	FantasyName string `json:"fantasy_name"`
	CompanyName string `json:"company_name"`
	Cnpj        string `json:"cnpj"`
	Email       string `json:"email"`
	Phone1      string `json:"phone1,omitempty"`
	Cep         string `json:"cep,omitempty"`
	Address     string `json:"address,omitempty"`
	District    string `json:"district,omitempty"`
	City        string `json:"city,omitempty"`
	UF          string `json:"uf,omitempty"`
	Image       string `json:"image,omitempty"`
}

func (r PartnerRequest) input() services.CreatePartnerInput {
	return services.CreatePartnerInput{
		FantasyName: r.FantasyName,
		CompanyName: r.CompanyName,
		Cnpj:        r.Cnpj,
		Email:       r.Email,
		Phone1:      r.Phone1,
		Cep:         r.Cep,
		Address:     r.Address,
		District:    r.District,
		City:        r.City,
		UF:          r.UF,
		Image:       r.Image,
	}
}

// ListPartners godoc
// @ID      listPartners
// @Summary List partners
// @Tags    Partners
// @Produce json
// @Param   fantasyName query string false "Fantasy-name prefix filter"
// @Param   uf          query string false "State filter"
// @Param   inactives   query string false "true to include deactivated rows"
// @Success 200 {array} domain.Partner
// @Router  /partners [get]
func (h *Handlers) ListPartners(c *gin.Context) {
	out, err := h.partnerSvc.List(c.Request.Context(), c.Query("fantasyName"), c.Query("uf"), utils.Truthy(c.Query("inactives")))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}

// GetPartner godoc
// @ID      getPartner
// @Summary Get a partner by ID
// @Tags    Partners
// @Produce json
// @Param   id path string true "Partner ID" format(uuid)
// @Success 200 {object} domain.Partner
// @Failure 404 {object} handlers.ErrorResponse
// @Router  /partners/{id} [get]
func (h *Handlers) GetPartner(c *gin.Context) {
	p, err := h.partnerSvc.Get(c.Request.Context(), c.Param("id"), utils.Truthy(c.Query("inactives")))
	if err != nil {
		if errors.Is(err, services.ErrPartnerNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "partner not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, p)
}

// CreatePartner godoc
// @ID      createPartner
// @Summary Register a partner
// @Tags    Partners
// @Accept  json
// @Produce json
// @Param   body body handlers.PartnerRequest true "Partner payload"
// @Success 201 {object} domain.Partner
// @Router  /partners [post]
func (h *Handlers) CreatePartner(c *gin.Context) {
	var req PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FantasyName == "" || req.Cnpj == "" || req.Email == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "fantasy_name, cnpj and email are required")
		return
	}
	p, err := h.partnerSvc.Create(c.Request.Context(), req.input())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, p)
}

// UpdatePartner godoc
// @ID      updatePartner
// @Summary Edit a partner
// @Tags    Partners
// @Accept  json
// @Param   id   path string true "Partner ID" format(uuid)
// @Param   body body handlers.PartnerRequest true "Fields to change"
// @Success 204 {string} string "No Content"
// @Failure 404 {object} handlers.ErrorResponse
// @Router  /partners/{id} [put]
func (h *Handlers) UpdatePartner(c *gin.Context) {
	var req PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid partner payload")
		return
	}
	if err := h.partnerSvc.Update(c.Request.Context(), c.Param("id"), req.input()); err != nil {
		if errors.Is(err, services.ErrPartnerNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "partner not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}

// SetPartnerActive godoc
// @ID      setPartnerActive
// @Summary Activate or deactivate a partner
// @Tags    Partners
// @Accept  json
// @Param   id   path string true "Partner ID" format(uuid)
// @Param   body body handlers.SetActiveRequest true "Desired status"
// @Success 204 {string} string "No Content"
// @Failure 404 {object} handlers.ErrorResponse
// @Router  /partners/{id}/active [patch]
func (h *Handlers) SetPartnerActive(c *gin.Context) {
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "active must be true or false")
		return
	}
	if err := h.partnerSvc.SetActive(c.Request.Context(), c.Param("id"), *req.Active); err != nil {
		if errors.Is(err, services.ErrPartnerNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "partner not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}

// Gift HTTP handlers. Plain CRUD over the gift reference entity; the
// adoption-side gift selection lives in pet_handler.go.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/miaudote/go-adopt-backend/internal/services"
	"github.com/miaudote/go-adopt-backend/internal/utils"
)

// GiftRequest is the JSON payload for creating or editing a gift.
type GiftRequest struct {
	Name        string `json:"name" example:"coleira"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// ListGifts godoc
// @ID      listGifts
// @Summary List gifts
// @Tags    Gifts
// @Produce json
// @Param   name      query string false "Name prefix filter"
// @Param   inactives query string false "true to include deactivated rows"
// @Success 200 {array} domain.Gift
// @Router  /gifts [get]
func (h *Handlers) ListGifts(c *gin.Context) {
	out, err := h.giftSvc.List(c.Request.Context(), c.Query("name"), utils.Truthy(c.Query("inactives")))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}

// GetGift godoc
// @ID      getGift
// @Summary Get a gift by ID
// @Tags    Gifts
// @Produce json
// @Param   id path string true "Gift ID" format(uuid)
// @Success 200 {object} domain.Gift
// @Failure 404 {object} handlers.ErrorResponse
// @Router  /gifts/{id} [get]
func (h *Handlers) GetGift(c *gin.Context) {
	g, err := h.giftSvc.Get(c.Request.Context(), c.Param("id"), utils.Truthy(c.Query("inactives")))
	if err != nil {
		if errors.Is(err, services.ErrGiftNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "gift not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, g)
}

// CreateGift godoc
// @ID      createGift
// @Summary Register a gift
// @Tags    Gifts
// @Accept  json
// @Produce json
// @Param   body body handlers.GiftRequest true "Gift payload"
// @Success 201 {object} domain.Gift
// @Router  /gifts [post]
func (h *Handlers) CreateGift(c *gin.Context) {
	var req GiftRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name is required")
		return
	}
	g, err := h.giftSvc.Create(c.Request.Context(), req.Name, req.Description, req.Image)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, g)
}

// UpdateGift godoc
// @ID      updateGift
// @Summary Edit a gift
// @Tags    Gifts
// @Accept  json
// @Param   id   path string true "Gift ID" format(uuid)
// @Param   body body handlers.GiftRequest true "Fields to change"
// @Success 204 {string} string "No Content"
// @Failure 404 {object} handlers.ErrorResponse
// @Router  /gifts/{id} [put]
func (h *Handlers) UpdateGift(c *gin.Context) {
	var req GiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid gift payload")
		return
	}
	if err := h.giftSvc.Update(c.Request.Context(), c.Param("id"), req.Name, req.Description, req.Image); err != nil {
		if errors.Is(err, services.ErrGiftNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "gift not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}

// SetGiftActive godoc
// @ID      setGiftActive
// @Summary Activate or deactivate a gift
// @Tags    Gifts
// @Accept  json
// @Param   id   path string true "Gift ID" format(uuid)
// @Param   body body handlers.SetActiveRequest true "Desired status"
// @Success 204 {string} string "No Content"
// @Failure 404 {object} handlers.ErrorResponse
// @Router  /gifts/{id}/active [patch]
func (h *Handlers) SetGiftActive(c *gin.Context) {
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "active must be true or false")
		return
	}
	if err := h.giftSvc.SetActive(c.Request.Context(), c.Param("id"), *req.Active); err != nil {
		if errors.Is(err, services.ErrGiftNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "gift not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}

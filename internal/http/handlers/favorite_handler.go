// Favorite and dislike HTTP handlers.
//
// This file exposes the user-scoped reaction endpoints:
//   - GET    /favorites           (the caller's favorites)
//   - POST   /pets/:id/favorite   (favorite a pet)
//   - DELETE /pets/:id/favorite   (unfavorite)
//   - POST   /pets/:id/dislike    (remove a pet from the caller's pool)
//
// A pet that is missing, adopted, inactive, or already excluded surfaces as
// the same 404 on all of these — the API does not reveal which case applies.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/miaudote/go-adopt-backend/internal/services"
)

// ListFavorites godoc
// @ID          listFavorites
// @Summary     List the caller's favorites
// @Tags        Favorites
// @Produce     json
// @Param       X-User-ID header string false "User ID (demo header)"
// @Success     200 {array} domain.Favorite
// @Router      /favorites [get]
func (h *Handlers) ListFavorites(c *gin.Context) {
	out, err := h.favSvc.ListMine(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}

// FavoritePet godoc
// @ID          favoritePet
// @Summary     Favorite a pet
// @Tags        Favorites
// @Produce     json
// @Param       X-User-ID header string false "User ID (demo header)"
// @Param       id        path   string true  "Pet ID" format(uuid)
// @Success     201 {object} domain.Favorite
// @Failure     404 {object} handlers.ErrorResponse "Pet not found"
// @Failure     409 {object} handlers.ErrorResponse "Already favorited"
// @Router      /pets/{id}/favorite [post]
func (h *Handlers) FavoritePet(c *gin.Context) {
	f, err := h.favSvc.Favorite(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPetNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "pet not found")
		case errors.Is(err, services.ErrAlreadyFavorited):
			fail(c, http.StatusConflict, ErrCodeConflict, "pet already favorited")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, f)
}

// UnfavoritePet godoc
// @ID          unfavoritePet
// @Summary     Remove a favorite
// @Tags        Favorites
// @Param       X-User-ID header string false "User ID (demo header)"
// @Param       id        path   string true  "Pet ID" format(uuid)
// @Success     204 {string} string "No Content"
// @Failure     404 {object} handlers.ErrorResponse "Favorite not found"
// @Router      /pets/{id}/favorite [delete]
func (h *Handlers) UnfavoritePet(c *gin.Context) {
	if err := h.favSvc.Unfavorite(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrFavoriteNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "favorite not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}

// DislikePet godoc
// @ID          dislikePet
// @Summary     Exclude a pet from the caller's browsing pool
// @Tags        Dislikes
// @Produce     json
// @Param       X-User-ID header string false "User ID (demo header)"
// @Param       id        path   string true  "Pet ID" format(uuid)
// @Success     201 {object} domain.Dislike
// @Failure     404 {object} handlers.ErrorResponse "Pet not found"
// @Failure     409 {object} handlers.ErrorResponse "Already disliked"
// @Router      /pets/{id}/dislike [post]
func (h *Handlers) DislikePet(c *gin.Context) {
	d, err := h.dislikeSvc.Dislike(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPetNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "pet not found")
		case errors.Is(err, services.ErrAlreadyDisliked):
			fail(c, http.StatusConflict, ErrCodeConflict, "pet already disliked")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, d)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/server/http/dto"
)

// WishlistHandler manages the authenticated user's wishlist.
type WishlistHandler struct {
	facade WishlistFacade
}

// NewWishlistHandler constructs WishlistHandler.
func NewWishlistHandler(facade WishlistFacade) *WishlistHandler {
	return &WishlistHandler{facade: facade}
}

// List handles GET /api/wishlist.
func (h *WishlistHandler) List(c *gin.Context) {
	entries, err := h.facade.Wishlist(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.WishlistItemResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, dto.WishlistItemResponse{
			ProductID: entry.ProductID,
			AddedAt:   entry.AddedAt,
		})
	}

	c.JSON(http.StatusOK, response)
}

// Add handles POST /api/wishlist/:productID.
func (h *WishlistHandler) Add(c *gin.Context) {
	productID, ok := pathID(c, "productID")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.AddToWishlist(c.Request.Context(), CurrentUserID(c), productID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusCreated)
}

// Remove handles DELETE /api/wishlist/:productID.
func (h *WishlistHandler) Remove(c *gin.Context) {
	productID, ok := pathID(c, "productID")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.RemoveFromWishlist(c.Request.Context(), CurrentUserID(c), productID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

// Clear handles DELETE /api/wishlist.
func (h *WishlistHandler) Clear(c *gin.Context) {
	if err := h.facade.ClearWishlist(c.Request.Context(), CurrentUserID(c)); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

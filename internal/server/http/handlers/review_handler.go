package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/domain/model"
	"github.com/tradewind/storefront/internal/server/http/dto"
)

// ReviewHandler manages product reviews.
type ReviewHandler struct {
	facade ReviewFacade
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(facade ReviewFacade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// List handles GET /api/products/:productID/reviews.
func (h *ReviewHandler) List(c *gin.Context) {
	productID, ok := pathID(c, "productID")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}
	page, limit := pageParams(c)

	reviews, total, err := h.facade.ProductReviews(c.Request.Context(), productID, page, limit)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	items := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		items = append(items, toReviewResponse(&reviews[i]))
	}

	c.JSON(http.StatusOK, dto.ReviewListResponse{Items: items, Total: total, Page: page, Limit: limit})
}

// Create handles POST /api/products/:productID/reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	productID, ok := pathID(c, "productID")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	review, err := h.facade.CreateReview(c.Request.Context(), productID, CurrentUserID(c), req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidRating):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrDuplicateReview):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toReviewResponse(review))
}

// Update handles PUT /api/products/:productID/reviews/:reviewID.
func (h *ReviewHandler) Update(c *gin.Context) {
	productID, ok := pathID(c, "productID")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}
	reviewID, ok := pathID(c, "reviewID")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	review, err := h.facade.UpdateReview(c.Request.Context(), productID, reviewID, CurrentUserID(c), req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidRating):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrAuthorMismatch):
			c.Status(http.StatusForbidden)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toReviewResponse(review))
}

// Delete handles DELETE /api/products/:productID/reviews/:reviewID.
func (h *ReviewHandler) Delete(c *gin.Context) {
	productID, ok := pathID(c, "productID")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}
	reviewID, ok := pathID(c, "reviewID")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.DeleteReview(c.Request.Context(), productID, reviewID, CurrentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrAuthorMismatch):
			c.Status(http.StatusForbidden)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func toReviewResponse(r *model.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

package usecase

import (
	"context"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/domain/model"
	"github.com/tradewind/storefront/internal/domain/repository"
)

// ReviewUseCase manages product reviews. The repository keeps the product
// rating aggregate consistent with every mutation.
type ReviewUseCase struct {
	reviews repository.ReviewRepository
}

// NewReviewUseCase constructs ReviewUseCase.
func NewReviewUseCase(reviews repository.ReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews}
}

func validRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

// Create adds a review; one review per user per product.
func (u *ReviewUseCase) Create(ctx context.Context, productID, userID int64, rating int, comment string) (*model.Review, error) {
	if !validRating(rating) {
		return nil, domainErrors.ErrInvalidRating
	}
	review := &model.Review{ProductID: productID, UserID: userID, Rating: rating, Comment: comment}
	return u.reviews.Create(ctx, review)
}

// Update changes rating/comment of the caller's own review.
func (u *ReviewUseCase) Update(ctx context.Context, productID, reviewID, userID int64, rating int, comment string) (*model.Review, error) {
	if !validRating(rating) {
		return nil, domainErrors.ErrInvalidRating
	}
	review := &model.Review{ID: reviewID, ProductID: productID, UserID: userID, Rating: rating, Comment: comment}
	return u.reviews.Update(ctx, review)
}

// Delete removes the caller's own review.
func (u *ReviewUseCase) Delete(ctx context.Context, productID, reviewID, userID int64) error {
	return u.reviews.Delete(ctx, productID, reviewID, userID)
}

// ListByProduct returns reviews with total count for pagination.
func (u *ReviewUseCase) ListByProduct(ctx context.Context, productID int64, page, limit int) ([]model.Review, int64, error) {
	return u.reviews.ListByProduct(ctx, productID, page, limit)
}

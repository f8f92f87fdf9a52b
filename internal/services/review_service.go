// internal/services/review_service.go
package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/atjshop/storefront/internal/models"
	"github.com/atjshop/storefront/internal/store"
	"github.com/atjshop/storefront/internal/utils"
)

type ReviewService struct {
	store store.Store
}

func NewReviewService(st store.Store) *ReviewService {
	return &ReviewService{store: st}
}

type CreateReviewRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment" validate:"required,min=3"`
}

func (s *ReviewService) GetProductReviews(ctx context.Context, productID string) ([]models.Review, error) {
	return s.store.Reviews().ListByProduct(ctx, productID)
}

func (s *ReviewService) ListReviews(ctx context.Context, params utils.PaginationParams) ([]models.Review, int64, error) {
	reviews, err := s.store.Reviews().List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	total := int64(len(reviews))
	return utils.Paginate(reviews, params), total, nil
}

// AddReview stores the review and folds its rating into the product's
// running aggregate. Reviews are immutable once created.
func (s *ReviewService) AddReview(ctx context.Context, user *models.User, req *CreateReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.store.Products().Get(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		ID:        uuid.NewString(),
		ProductID: req.ProductID,
		UserID:    user.ID,
		UserName:  user.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Date:      time.Now().UTC(),
	}

	if err := s.store.Reviews().Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	updated := *product
	updated.Rating = roundRating((product.Rating*float64(product.ReviewCount) + float64(req.Rating)) / float64(product.ReviewCount+1))
	updated.ReviewCount = product.ReviewCount + 1
	if err := s.store.Products().Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update product rating: %w", err)
	}

	return review, nil
}

// DeleteReview removes a review (admin action) and backs its rating out of
// the product aggregate.
func (s *ReviewService) DeleteReview(ctx context.Context, id string) error {
	reviews, err := s.store.Reviews().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch reviews: %w", err)
	}

	var target *models.Review
	for i := range reviews {
		if reviews[i].ID == id {
			target = &reviews[i]
			break
		}
	}
	if target == nil {
		return store.ErrNotFound
	}

	if err := s.store.Reviews().Delete(ctx, id); err != nil {
		return err
	}

	product, err := s.store.Products().Get(ctx, target.ProductID)
	if err != nil {
		// The product may have been deleted; the review removal stands.
		return nil
	}

	updated := *product
	if product.ReviewCount <= 1 {
		updated.Rating = 0
		updated.ReviewCount = 0
	} else {
		updated.Rating = roundRating((product.Rating*float64(product.ReviewCount) - float64(target.Rating)) / float64(product.ReviewCount-1))
		updated.ReviewCount = product.ReviewCount - 1
	}
	if err := s.store.Products().Update(ctx, &updated); err != nil {
		return fmt.Errorf("failed to update product rating: %w", err)
	}

	return nil
}

// Ratings are displayed with one decimal, so the aggregate is kept at that
// precision.
func roundRating(r float64) float64 {
	return math.Round(r*10) / 10
}

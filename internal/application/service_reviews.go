package application

import (
	"context"
	"strings"

	"github.com/horu2day/saleslicense/internal/domain"
)

// CreateReview posts a rating for a product. The verified-purchase flag is
// derived from the caller's completed orders and can never be asserted by the
// client.
func (s *Service) CreateReview(ctx context.Context, actor Actor, input CreateReviewInput) (domain.Review, error) {
	if !actor.authenticated() {
		return domain.Review{}, domain.ErrUnauthorized
	}
	if err := domain.ValidateNewReview(input.Rating, input.Title, input.Content); err != nil {
		return domain.Review{}, err
	}
	if _, err := s.products.GetByID(ctx, input.ProductID); err != nil {
		return domain.Review{}, err
	}
	verified, err := s.orders.HasCompletedPurchase(ctx, actor.UserID, input.ProductID)
	if err != nil {
		return domain.Review{}, err
	}
	now := s.nowFn()
	return s.reviews.Create(ctx, domain.Review{
		ProductID:          input.ProductID,
		BuyerID:            actor.UserID,
		Rating:             input.Rating,
		Title:              strings.TrimSpace(input.Title),
		Content:            input.Content,
		IsVerifiedPurchase: verified,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
}

func (s *Service) UpdateReview(ctx context.Context, actor Actor, input UpdateReviewInput) (domain.Review, error) {
	review, err := s.ownedReview(ctx, actor, input.ReviewID)
	if err != nil {
		return domain.Review{}, err
	}
	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	if input.Title != nil {
		review.Title = strings.TrimSpace(*input.Title)
	}
	if input.Content != nil {
		review.Content = *input.Content
	}
	if err := domain.ValidateNewReview(review.Rating, review.Title, review.Content); err != nil {
		return domain.Review{}, err
	}
	review.UpdatedAt = s.nowFn()
	if err := s.reviews.Update(ctx, review); err != nil {
		return domain.Review{}, err
	}
	return review, nil
}

func (s *Service) DeleteReview(ctx context.Context, actor Actor, reviewID int64) error {
	if _, err := s.ownedReview(ctx, actor, reviewID); err != nil {
		return err
	}
	return s.reviews.Delete(ctx, reviewID)
}

func (s *Service) ProductReviews(ctx context.Context, productID int64) ([]domain.Review, error) {
	return s.reviews.ListByProduct(ctx, productID)
}

func (s *Service) ReviewSummary(ctx context.Context, productID int64) (domain.RatingSummary, error) {
	return s.reviews.Summary(ctx, productID)
}

func (s *Service) ownedReview(ctx context.Context, actor Actor, reviewID int64) (domain.Review, error) {
	if !actor.authenticated() {
		return domain.Review{}, domain.ErrUnauthorized
	}
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return domain.Review{}, err
	}
	if review.BuyerID != actor.UserID {
		return domain.Review{}, domain.ErrUnauthorized
	}
	return review, nil
}

package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/horu2day/saleslicense/internal/domain"
)

type reviewRepository struct {
	db *gorm.DB
}

func (r *reviewRepository) Create(ctx context.Context, review domain.Review) (domain.Review, error) {
	rec := toReviewModel(review)
	rec.ID = 0
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Review{}, err
	}
	return toDomainReview(rec), nil
}

func (r *reviewRepository) GetByID(ctx context.Context, reviewID int64) (domain.Review, error) {
	var rec reviewModel
	if err := r.db.WithContext(ctx).Where("id = ?", reviewID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Review{}, domain.ErrNotFound
		}
		return domain.Review{}, err
	}
	return toDomainReview(rec), nil
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error) {
	var recs []reviewModel
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC, id DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	items := make([]domain.Review, 0, len(recs))
	for _, rec := range recs {
		items = append(items, toDomainReview(rec))
	}
	return items, nil
}

func (r *reviewRepository) Update(ctx context.Context, review domain.Review) error {
	rec := toReviewModel(review)
	res := r.db.WithContext(ctx).Model(&reviewModel{}).Where("id = ?", rec.ID).Updates(map[string]any{
		"rating":     rec.Rating,
		"title":      rec.Title,
		"content":    rec.Content,
		"updated_at": rec.UpdatedAt,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, reviewID int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", reviewID).Delete(&reviewModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *reviewRepository) Summary(ctx context.Context, productID int64) (domain.RatingSummary, error) {
	var row struct {
		Average float64
		Count   int64
	}
	err := r.db.WithContext(ctx).Model(&reviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&row).Error
	if err != nil {
		return domain.RatingSummary{}, err
	}
	return domain.RatingSummary{ProductID: productID, Average: row.Average, Count: row.Count}, nil
}

package postgres

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/horu2day/saleslicense/internal/domain"
)

type sellerProfileRepository struct {
	db *gorm.DB
}

func (r *sellerProfileRepository) GetByUser(ctx context.Context, userID int64) (domain.SellerProfile, error) {
	var rec sellerProfileModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SellerProfile{}, domain.ErrNotFound
		}
		return domain.SellerProfile{}, err
	}
	return toDomainSellerProfile(rec), nil
}

func (r *sellerProfileRepository) Create(ctx context.Context, profile domain.SellerProfile) (domain.SellerProfile, error) {
	rec := toSellerProfileModel(profile)
	rec.ID = 0
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.SellerProfile{}, domain.ErrConflict
		}
		return domain.SellerProfile{}, err
	}
	return toDomainSellerProfile(rec), nil
}

func (r *sellerProfileRepository) Update(ctx context.Context, profile domain.SellerProfile) error {
	rec := toSellerProfileModel(profile)
	res := r.db.WithContext(ctx).Model(&sellerProfileModel{}).Where("id = ?", rec.ID).Updates(map[string]any{
		"company_name": rec.CompanyName,
		"bio":          rec.Bio,
		"website":      rec.Website,
		"updated_at":   rec.UpdatedAt,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddSale bumps the running counters with a relative update so concurrent
// completions never lose increments. A seller without a profile row is not an
// error; the counters simply start once a profile exists.
func (r *sellerProfileRepository) AddSale(ctx context.Context, userID int64, amount decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&sellerProfileModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"total_earnings": gorm.Expr("total_earnings + ?", amount),
			"total_sales":    gorm.Expr("total_sales + 1"),
			"updated_at":     gorm.Expr("now()"),
		}).Error
}

package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/horu2day/saleslicense/internal/domain"
)

type licenseRepository struct {
	db *gorm.DB
}

func (r *licenseRepository) Create(ctx context.Context, key domain.LicenseKey) (domain.LicenseKey, error) {
	rec := toLicenseModel(key)
	rec.ID = 0
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.LicenseKey{}, domain.ErrDuplicateKey
		}
		return domain.LicenseKey{}, err
	}
	return toDomainLicense(rec), nil
}

func (r *licenseRepository) CreateBatch(ctx context.Context, keys []domain.LicenseKey) ([]domain.LicenseKey, error) {
	recs := make([]licenseKeyModel, 0, len(keys))
	for _, key := range keys {
		rec := toLicenseModel(key)
		rec.ID = 0
		recs = append(recs, rec)
	}
	if err := r.db.WithContext(ctx).Create(&recs).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateKey
		}
		return nil, err
	}
	out := make([]domain.LicenseKey, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomainLicense(rec))
	}
	return out, nil
}

func (r *licenseRepository) GetByID(ctx context.Context, licenseID int64) (domain.LicenseKey, error) {
	var rec licenseKeyModel
	if err := r.db.WithContext(ctx).Where("id = ?", licenseID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LicenseKey{}, domain.ErrNotFound
		}
		return domain.LicenseKey{}, err
	}
	return toDomainLicense(rec), nil
}

func (r *licenseRepository) GetByKey(ctx context.Context, key string) (domain.LicenseKey, error) {
	var rec licenseKeyModel
	if err := r.db.WithContext(ctx).Where("license_key = ?", key).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LicenseKey{}, domain.ErrNotFound
		}
		return domain.LicenseKey{}, err
	}
	return toDomainLicense(rec), nil
}

func (r *licenseRepository) ListByBuyer(ctx context.Context, buyerID int64) ([]domain.LicenseKey, error) {
	return r.list(ctx, "buyer_id = ?", buyerID)
}

func (r *licenseRepository) ListByProduct(ctx context.Context, productID int64) ([]domain.LicenseKey, error) {
	return r.list(ctx, "product_id = ?", productID)
}

func (r *licenseRepository) list(ctx context.Context, cond string, arg int64) ([]domain.LicenseKey, error) {
	var recs []licenseKeyModel
	if err := r.db.WithContext(ctx).
		Where(cond, arg).
		Order("id ASC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	items := make([]domain.LicenseKey, 0, len(recs))
	for _, rec := range recs {
		items = append(items, toDomainLicense(rec))
	}
	return items, nil
}

func (r *licenseRepository) FindActiveForUserProduct(ctx context.Context, userID, productID int64) (domain.LicenseKey, error) {
	var rec licenseKeyModel
	err := r.db.WithContext(ctx).
		Where("buyer_id = ? AND product_id = ? AND status = ?", userID, productID, string(domain.LicenseActive)).
		Order("id ASC").
		Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LicenseKey{}, domain.ErrNotFound
		}
		return domain.LicenseKey{}, err
	}
	return toDomainLicense(rec), nil
}

func (r *licenseRepository) UpdateStatus(ctx context.Context, licenseID int64, status domain.LicenseStatus) error {
	res := r.db.WithContext(ctx).Model(&licenseKeyModel{}).
		Where("id = ?", licenseID).
		Updates(map[string]any{"status": string(status), "updated_at": gorm.Expr("now()")})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *licenseRepository) RevokeByOrder(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).Model(&licenseKeyModel{}).
		Where("order_id = ?", orderID).
		Updates(map[string]any{"status": string(domain.LicenseRevoked), "updated_at": gorm.Expr("now()")}).Error
}

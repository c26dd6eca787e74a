package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/horu2day/saleslicense/internal/domain"
	"github.com/horu2day/saleslicense/internal/ports"
)

type productRepository struct {
	db *gorm.DB
}

func (r *productRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	rec := toProductModel(product)
	rec.ID = 0
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Product{}, err
	}
	return toDomainProduct(rec), nil
}

func (r *productRepository) GetByID(ctx context.Context, productID int64) (domain.Product, error) {
	var rec productModel
	if err := r.db.WithContext(ctx).Where("id = ?", productID).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, domain.ErrNotFound
		}
		return domain.Product{}, err
	}
	return toDomainProduct(rec), nil
}

func (r *productRepository) ListActive(ctx context.Context, query ports.ProductQuery) ([]domain.Product, error) {
	q := r.db.WithContext(ctx).Where("active = ?", true)
	if query.Category != "" {
		q = q.Where("category = ?", query.Category)
	}
	var recs []productModel
	if err := q.Order("created_at DESC, id DESC").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	items := make([]domain.Product, 0, len(recs))
	for _, rec := range recs {
		items = append(items, toDomainProduct(rec))
	}
	return items, nil
}

func (r *productRepository) ListBySeller(ctx context.Context, sellerID int64) ([]domain.Product, error) {
	var recs []productModel
	if err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC, id DESC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	items := make([]domain.Product, 0, len(recs))
	for _, rec := range recs {
		items = append(items, toDomainProduct(rec))
	}
	return items, nil
}

func (r *productRepository) Update(ctx context.Context, product domain.Product) error {
	rec := toProductModel(product)
	res := r.db.WithContext(ctx).Model(&productModel{}).Where("id = ?", rec.ID).Updates(map[string]any{
		"title":         rec.Title,
		"description":   rec.Description,
		"category":      rec.Category,
		"price":         rec.Price,
		"currency":      rec.Currency,
		"version":       rec.Version,
		"download_url":  rec.DownloadURL,
		"license_type":  rec.LicenseType,
		"max_downloads": rec.MaxDownloads,
		"expiry_days":   rec.ExpiryDays,
		"active":        rec.Active,
		"updated_at":    rec.UpdatedAt,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, productID int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", productID).Delete(&productModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

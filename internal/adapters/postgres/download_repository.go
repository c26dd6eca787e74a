package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/horu2day/saleslicense/internal/domain"
)

type downloadRepository struct {
	db *gorm.DB
}

func (r *downloadRepository) Record(ctx context.Context, download domain.Download) (domain.Download, error) {
	rec := downloadModel{
		UserID:       download.UserID,
		ProductID:    download.ProductID,
		LicenseKeyID: download.LicenseKeyID,
		IPAddress:    download.IPAddress,
		UserAgent:    download.UserAgent,
		DownloadedAt: download.DownloadedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Download{}, err
	}
	return toDomainDownload(rec), nil
}

func (r *downloadRepository) ListByProduct(ctx context.Context, productID int64) ([]domain.Download, error) {
	var recs []downloadModel
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id ASC").
		Find(&recs).Error; err != nil {
		return nil, err
	}
	items := make([]domain.Download, 0, len(recs))
	for _, rec := range recs {
		items = append(items, toDomainDownload(rec))
	}
	return items, nil
}

package application

import (
	"context"
	"errors"

	"github.com/horu2day/saleslicense/internal/domain"
)

// RecordDownload writes the audit trail for one fulfilment. The caller must
// hold an active key for the product; when no specific key id is supplied the
// registry picks one.
func (s *Service) RecordDownload(ctx context.Context, actor Actor, input RecordDownloadInput) (domain.Download, error) {
	if !actor.authenticated() {
		return domain.Download{}, domain.ErrUnauthorized
	}
	licenseKeyID := input.LicenseKeyID
	if licenseKeyID != nil {
		license, err := s.licenses.GetByID(ctx, *licenseKeyID)
		if err != nil {
			return domain.Download{}, err
		}
		if license.ProductID != input.ProductID || license.BuyerID == nil || *license.BuyerID != actor.UserID {
			return domain.Download{}, domain.ErrUnauthorized
		}
		if license.Status != domain.LicenseActive {
			return domain.Download{}, domain.ErrUnauthorized
		}
	} else {
		license, err := s.licenses.FindActiveForUserProduct(ctx, actor.UserID, input.ProductID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Download{}, domain.ErrUnauthorized
		}
		if err != nil {
			return domain.Download{}, err
		}
		licenseKeyID = &license.ID
	}
	return s.download.Record(ctx, domain.Download{
		UserID:       actor.UserID,
		ProductID:    input.ProductID,
		LicenseKeyID: licenseKeyID,
		IPAddress:    actor.ClientIP,
		UserAgent:    actor.UserAgent,
		DownloadedAt: s.nowFn(),
	})
}

// ProductDownloads lists the download trail for a product the caller owns.
func (s *Service) ProductDownloads(ctx context.Context, actor Actor, productID int64) ([]domain.Download, error) {
	if _, err := s.ownedProduct(ctx, actor, productID); err != nil {
		return nil, err
	}
	return s.download.ListByProduct(ctx, productID)
}

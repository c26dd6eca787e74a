package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/horu2day/saleslicense/internal/domain"
)

const maxBatchSize = 1000

// IssueBatch pre-generates inactive keys for a product the caller owns. Keys
// carry no buyer or order until redeemed through a sale.
func (s *Service) IssueBatch(ctx context.Context, actor Actor, input IssueBatchInput) ([]domain.LicenseKey, error) {
	if input.Count < 1 || input.Count > maxBatchSize {
		return nil, domain.ErrInvalidInput
	}
	product, err := s.ownedProduct(ctx, actor, input.ProductID)
	if err != nil {
		return nil, err
	}
	now := s.nowFn()
	keys := make([]domain.LicenseKey, 0, input.Count)
	for i := 0; i < input.Count; i++ {
		keys = append(keys, domain.LicenseKey{
			ProductID:      product.ID,
			Key:            domain.NewKeyString(product.ID),
			Status:         domain.LicenseInactive,
			MaxActivations: 1,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	issued, err := s.licenses.CreateBatch(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("issue key batch: %w", err)
	}
	s.log().InfoContext(ctx, "key batch issued",
		"operation", "issue_batch",
		"outcome", "success",
		"product_id", product.ID,
		"count", len(issued),
	)
	return issued, nil
}

// ValidateKey checks a key string against the registry. Lookup misses and
// non-active keys both come back as a valid=false result rather than an error:
// validation is a public read, not a mutation that can be rejected.
func (s *Service) ValidateKey(ctx context.Context, key string) (ValidationResult, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return ValidationResult{}, domain.ErrInvalidInput
	}
	license, err := s.licenses.GetByKey(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return ValidationResult{Valid: false, Message: "License key not found"}, nil
	}
	if err != nil {
		return ValidationResult{}, err
	}
	if license.Status != domain.LicenseActive {
		return ValidationResult{Valid: false, Message: "License is " + string(license.Status)}, nil
	}
	return ValidationResult{Valid: true, Message: "License is valid", License: &license}, nil
}

// MyLicenses lists the keys the caller has purchased.
func (s *Service) MyLicenses(ctx context.Context, actor Actor) ([]domain.LicenseKey, error) {
	if !actor.authenticated() {
		return nil, domain.ErrUnauthorized
	}
	return s.licenses.ListByBuyer(ctx, actor.UserID)
}

// ProductLicenses lists every key minted for a product the caller owns.
func (s *Service) ProductLicenses(ctx context.Context, actor Actor, productID int64) ([]domain.LicenseKey, error) {
	if _, err := s.ownedProduct(ctx, actor, productID); err != nil {
		return nil, err
	}
	return s.licenses.ListByProduct(ctx, productID)
}

// SetLicenseStatus lets the owning seller toggle a key between active,
// inactive and revoked. Expiry is driven by timestamps, not set by hand.
func (s *Service) SetLicenseStatus(ctx context.Context, actor Actor, input SetLicenseStatusInput) (domain.LicenseKey, error) {
	if !actor.authenticated() {
		return domain.LicenseKey{}, domain.ErrUnauthorized
	}
	switch input.Status {
	case domain.LicenseActive, domain.LicenseInactive, domain.LicenseRevoked:
	default:
		return domain.LicenseKey{}, domain.ErrInvalidInput
	}
	license, err := s.licenses.GetByID(ctx, input.LicenseID)
	if err != nil {
		return domain.LicenseKey{}, err
	}
	if _, err := s.ownedProduct(ctx, actor, license.ProductID); err != nil {
		return domain.LicenseKey{}, err
	}
	if err := s.licenses.UpdateStatus(ctx, license.ID, input.Status); err != nil {
		return domain.LicenseKey{}, err
	}
	license.Status = input.Status
	license.UpdatedAt = s.nowFn()
	return license, nil
}

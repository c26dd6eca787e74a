package application

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/horu2day/saleslicense/internal/domain"
)

func (s *Service) MyProfile(ctx context.Context, actor Actor) (domain.SellerProfile, error) {
	if !actor.authenticated() {
		return domain.SellerProfile{}, domain.ErrUnauthorized
	}
	return s.sellers.GetByUser(ctx, actor.UserID)
}

func (s *Service) CreateProfile(ctx context.Context, actor Actor, input SellerProfileInput) (domain.SellerProfile, error) {
	if !actor.authenticated() {
		return domain.SellerProfile{}, domain.ErrUnauthorized
	}
	if _, err := s.sellers.GetByUser(ctx, actor.UserID); err == nil {
		return domain.SellerProfile{}, domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.SellerProfile{}, err
	}
	now := s.nowFn()
	profile := domain.SellerProfile{
		UserID:        actor.UserID,
		TotalEarnings: decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	applyProfileInput(&profile, input)
	return s.sellers.Create(ctx, profile)
}

func (s *Service) UpdateProfile(ctx context.Context, actor Actor, input SellerProfileInput) (domain.SellerProfile, error) {
	if !actor.authenticated() {
		return domain.SellerProfile{}, domain.ErrUnauthorized
	}
	profile, err := s.sellers.GetByUser(ctx, actor.UserID)
	if err != nil {
		return domain.SellerProfile{}, err
	}
	applyProfileInput(&profile, input)
	profile.UpdatedAt = s.nowFn()
	if err := s.sellers.Update(ctx, profile); err != nil {
		return domain.SellerProfile{}, err
	}
	return profile, nil
}

// applyProfileInput copies only the fields the caller supplied, so a partial
// update never clears the ones it omitted.
func applyProfileInput(profile *domain.SellerProfile, input SellerProfileInput) {
	if input.CompanyName != nil {
		profile.CompanyName = strings.TrimSpace(*input.CompanyName)
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.Website != nil {
		profile.Website = strings.TrimSpace(*input.Website)
	}
}

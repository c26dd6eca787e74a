package application

import (
	"context"
	"strings"

	"github.com/horu2day/saleslicense/internal/domain"
	"github.com/horu2day/saleslicense/internal/ports"
)

func (s *Service) CreateProduct(ctx context.Context, actor Actor, input CreateProductInput) (domain.Product, error) {
	if !actor.authenticated() {
		return domain.Product{}, domain.ErrUnauthorized
	}
	if err := domain.ValidateNewProduct(input.Title, input.Price, input.LicenseType); err != nil {
		return domain.Product{}, err
	}
	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = s.cfg.DefaultCurrency
	}
	now := s.nowFn()
	product, err := s.products.Create(ctx, domain.Product{
		SellerID:    actor.UserID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Category:    strings.TrimSpace(input.Category),
		Price:       input.Price,
		Currency:    currency,
		Version:     input.Version,
		DownloadURL: input.DownloadURL,
		LicenseType: input.LicenseType,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return domain.Product{}, err
	}
	s.log().InfoContext(ctx, "product listed",
		"operation", "create_product",
		"outcome", "success",
		"product_id", product.ID,
		"seller_id", actor.UserID,
	)
	return product, nil
}

// GetProduct is public: buyers browse without an account.
func (s *Service) GetProduct(ctx context.Context, productID int64) (domain.Product, error) {
	return s.products.GetByID(ctx, productID)
}

func (s *Service) ListProducts(ctx context.Context, query ListProductsQuery) ([]domain.Product, error) {
	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}
	return s.products.ListActive(ctx, ports.ProductQuery{
		Category: strings.TrimSpace(query.Category),
		Limit:    limit,
		Offset:   offset,
	})
}

// MyProducts lists everything the caller sells, active or not.
func (s *Service) MyProducts(ctx context.Context, actor Actor) ([]domain.Product, error) {
	if !actor.authenticated() {
		return nil, domain.ErrUnauthorized
	}
	return s.products.ListBySeller(ctx, actor.UserID)
}

func (s *Service) UpdateProduct(ctx context.Context, actor Actor, input UpdateProductInput) (domain.Product, error) {
	product, err := s.ownedProduct(ctx, actor, input.ProductID)
	if err != nil {
		return domain.Product{}, err
	}
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return domain.Product{}, domain.ErrInvalidInput
		}
		product.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Category != nil {
		product.Category = strings.TrimSpace(*input.Category)
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return domain.Product{}, domain.ErrInvalidInput
		}
		product.Price = *input.Price
	}
	if input.Version != nil {
		product.Version = *input.Version
	}
	if input.DownloadURL != nil {
		product.DownloadURL = *input.DownloadURL
	}
	if input.Active != nil {
		product.Active = *input.Active
	}
	product.UpdatedAt = s.nowFn()
	if err := s.products.Update(ctx, product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, actor Actor, productID int64) error {
	if _, err := s.ownedProduct(ctx, actor, productID); err != nil {
		return err
	}
	return s.products.Delete(ctx, productID)
}

// ownedProduct loads a product and enforces the seller ownership guard applied
// to every product mutation.
func (s *Service) ownedProduct(ctx context.Context, actor Actor, productID int64) (domain.Product, error) {
	if !actor.authenticated() {
		return domain.Product{}, domain.ErrUnauthorized
	}
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}
	if product.SellerID != actor.UserID {
		return domain.Product{}, domain.ErrUnauthorized
	}
	return product, nil
}

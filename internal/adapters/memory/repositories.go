package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/horu2day/saleslicense/internal/domain"
	"github.com/horu2day/saleslicense/internal/ports"
)

type productRepo struct{ store *Store }

func (r *productRepo) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	product.ID = r.store.nextSequence()
	r.store.products[product.ID] = product
	return product, nil
}

func (r *productRepo) GetByID(ctx context.Context, productID int64) (domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	product, ok := r.store.products[productID]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return product, nil
}

func (r *productRepo) ListActive(ctx context.Context, query ports.ProductQuery) ([]domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	items := make([]domain.Product, 0)
	for _, product := range r.store.products {
		if !product.Active {
			continue
		}
		if query.Category != "" && product.Category != query.Category {
			continue
		}
		items = append(items, product)
	}
	sortNewestProducts(items)
	if query.Offset >= len(items) {
		return []domain.Product{}, nil
	}
	items = items[query.Offset:]
	if query.Limit > 0 && query.Limit < len(items) {
		items = items[:query.Limit]
	}
	return items, nil
}

func (r *productRepo) ListBySeller(ctx context.Context, sellerID int64) ([]domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	items := make([]domain.Product, 0)
	for _, product := range r.store.products {
		if product.SellerID == sellerID {
			items = append(items, product)
		}
	}
	sortNewestProducts(items)
	return items, nil
}

func (r *productRepo) Update(ctx context.Context, product domain.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.products[product.ID] = product
	return nil
}

func (r *productRepo) Delete(ctx context.Context, productID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.products[productID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.products, productID)
	return nil
}

type orderRepo struct{ store *Store }

func (r *orderRepo) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	order.ID = r.store.nextSequence()
	r.store.orders[order.ID] = order
	return order, nil
}

func (r *orderRepo) GetByID(ctx context.Context, orderID int64) (domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	order, ok := r.store.orders[orderID]
	if !ok {
		return domain.Order{}, domain.ErrNotFound
	}
	return order, nil
}

func (r *orderRepo) ListByBuyer(ctx context.Context, buyerID int64) ([]domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	items := make([]domain.Order, 0)
	for _, order := range r.store.orders {
		if order.BuyerID == buyerID {
			items = append(items, order)
		}
	}
	sortNewestOrders(items)
	return items, nil
}

func (r *orderRepo) ListBySeller(ctx context.Context, sellerID int64) ([]domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	items := make([]domain.Order, 0)
	for _, order := range r.store.orders {
		if order.SellerID == sellerID {
			items = append(items, order)
		}
	}
	sortNewestOrders(items)
	return items, nil
}

func (r *orderRepo) CompleteWithLicense(ctx context.Context, orderID int64, transactionID string, key domain.LicenseKey) (domain.LicenseKey, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	order, ok := r.store.orders[orderID]
	if !ok {
		return domain.LicenseKey{}, domain.ErrNotFound
	}
	if order.Status != domain.OrderPending {
		return domain.LicenseKey{}, domain.ErrConflict
	}
	inserted, err := r.store.insertLicense(key)
	if err != nil {
		return domain.LicenseKey{}, err
	}
	order.Status = domain.OrderCompleted
	order.TransactionID = transactionID
	order.UpdatedAt = key.CreatedAt
	r.store.orders[orderID] = order
	return inserted, nil
}

func (r *orderRepo) MarkFailed(ctx context.Context, orderID int64) error {
	return r.store.swapOrderStatus(orderID, domain.OrderPending, domain.OrderFailed)
}

func (r *orderRepo) MarkRefunded(ctx context.Context, orderID int64) error {
	return r.store.swapOrderStatus(orderID, domain.OrderCompleted, domain.OrderRefunded)
}

func (r *orderRepo) HasCompletedPurchase(ctx context.Context, buyerID, productID int64) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, order := range r.store.orders {
		if order.BuyerID == buyerID && order.ProductID == productID && order.Status == domain.OrderCompleted {
			return true, nil
		}
	}
	return false, nil
}

type licenseRepo struct{ store *Store }

func (r *licenseRepo) Create(ctx context.Context, key domain.LicenseKey) (domain.LicenseKey, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.insertLicense(key)
}

func (r *licenseRepo) CreateBatch(ctx context.Context, keys []domain.LicenseKey) ([]domain.LicenseKey, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, key := range keys {
		if _, exists := r.store.keyIndex[key.Key]; exists {
			return nil, domain.ErrDuplicateKey
		}
	}
	out := make([]domain.LicenseKey, 0, len(keys))
	for _, key := range keys {
		inserted, err := r.store.insertLicense(key)
		if err != nil {
			return nil, err
		}
		out = append(out, inserted)
	}
	return out, nil
}

func (r *licenseRepo) GetByID(ctx context.Context, licenseID int64) (domain.LicenseKey, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	license, ok := r.store.licenses[licenseID]
	if !ok {
		return domain.LicenseKey{}, domain.ErrNotFound
	}
	return license, nil
}

func (r *licenseRepo) GetByKey(ctx context.Context, key string) (domain.LicenseKey, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	id, ok := r.store.keyIndex[key]
	if !ok {
		return domain.LicenseKey{}, domain.ErrNotFound
	}
	return r.store.licenses[id], nil
}

func (r *licenseRepo) ListByBuyer(ctx context.Context, buyerID int64) ([]domain.LicenseKey, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	items := make([]domain.LicenseKey, 0)
	for _, license := range r.store.licenses {
		if license.BuyerID != nil && *license.BuyerID == buyerID {
			items = append(items, license)
		}
	}
	sortLicenses(items)
	return items, nil
}

func (r *licenseRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.LicenseKey, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	items := make([]domain.LicenseKey, 0)
	for _, license := range r.store.licenses {
		if license.ProductID == productID {
			items = append(items, license)
		}
	}
	sortLicenses(items)
	return items, nil
}

func (r *licenseRepo) FindActiveForUserProduct(ctx context.Context, userID, productID int64) (domain.LicenseKey, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, license := range r.store.licenses {
		if license.ProductID == productID && license.Status == domain.LicenseActive &&
			license.BuyerID != nil && *license.BuyerID == userID {
			return license, nil
		}
	}
	return domain.LicenseKey{}, domain.ErrNotFound
}

func (r *licenseRepo) UpdateStatus(ctx context.Context, licenseID int64, status domain.LicenseStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	license, ok := r.store.licenses[licenseID]
	if !ok {
		return domain.ErrNotFound
	}
	license.Status = status
	r.store.licenses[licenseID] = license
	return nil
}

func (r *licenseRepo) RevokeByOrder(ctx context.Context, orderID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, license := range r.store.licenses {
		if license.OrderID != nil && *license.OrderID == orderID {
			license.Status = domain.LicenseRevoked
			r.store.licenses[id] = license
		}
	}
	return nil
}

type reviewRepo struct{ store *Store }

func (r *reviewRepo) Create(ctx context.Context, review domain.Review) (domain.Review, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	review.ID = r.store.nextSequence()
	r.store.reviews[review.ID] = review
	return review, nil
}

func (r *reviewRepo) GetByID(ctx context.Context, reviewID int64) (domain.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	review, ok := r.store.reviews[reviewID]
	if !ok {
		return domain.Review{}, domain.ErrNotFound
	}
	return review, nil
}

func (r *reviewRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	items := make([]domain.Review, 0)
	for _, review := range r.store.reviews {
		if review.ProductID == productID {
			items = append(items, review)
		}
	}
	sortNewestReviews(items)
	return items, nil
}

func (r *reviewRepo) Update(ctx context.Context, review domain.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.reviews[review.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.reviews[review.ID] = review
	return nil
}

func (r *reviewRepo) Delete(ctx context.Context, reviewID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.reviews[reviewID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.reviews, reviewID)
	return nil
}

func (r *reviewRepo) Summary(ctx context.Context, productID int64) (domain.RatingSummary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	summary := domain.RatingSummary{ProductID: productID}
	total := 0
	for _, review := range r.store.reviews {
		if review.ProductID == productID {
			summary.Count++
			total += review.Rating
		}
	}
	if summary.Count > 0 {
		summary.Average = float64(total) / float64(summary.Count)
	}
	return summary, nil
}

type downloadRepo struct{ store *Store }

func (r *downloadRepo) Record(ctx context.Context, download domain.Download) (domain.Download, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	download.ID = r.store.nextSequence()
	r.store.download[download.ID] = download
	return download, nil
}

func (r *downloadRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.Download, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	items := make([]domain.Download, 0)
	for _, download := range r.store.download {
		if download.ProductID == productID {
			items = append(items, download)
		}
	}
	sortDownloads(items)
	return items, nil
}

type sellerRepo struct{ store *Store }

func (r *sellerRepo) GetByUser(ctx context.Context, userID int64) (domain.SellerProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, profile := range r.store.sellers {
		if profile.UserID == userID {
			return profile, nil
		}
	}
	return domain.SellerProfile{}, domain.ErrNotFound
}

func (r *sellerRepo) Create(ctx context.Context, profile domain.SellerProfile) (domain.SellerProfile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.sellers {
		if existing.UserID == profile.UserID {
			return domain.SellerProfile{}, domain.ErrConflict
		}
	}
	profile.ID = r.store.nextSequence()
	r.store.sellers[profile.ID] = profile
	return profile, nil
}

func (r *sellerRepo) Update(ctx context.Context, profile domain.SellerProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.sellers[profile.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.sellers[profile.ID] = profile
	return nil
}

func (r *sellerRepo) AddSale(ctx context.Context, userID int64, amount decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, profile := range r.store.sellers {
		if profile.UserID == userID {
			profile.TotalEarnings = profile.TotalEarnings.Add(amount)
			profile.TotalSales++
			r.store.sellers[id] = profile
			return nil
		}
	}
	// Sellers without a profile still sell; counters start once one exists.
	return nil
}

package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/horu2day/saleslicense/internal/domain"
)

type ProductQuery struct {
	Category string
	Limit    int
	Offset   int
}

type ProductRepository interface {
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	GetByID(ctx context.Context, productID int64) (domain.Product, error)
	// ListActive returns active products, newest first.
	ListActive(ctx context.Context, query ProductQuery) ([]domain.Product, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]domain.Product, error)
	Update(ctx context.Context, product domain.Product) error
	Delete(ctx context.Context, productID int64) error
}

type OrderRepository interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	GetByID(ctx context.Context, orderID int64) (domain.Order, error)
	ListByBuyer(ctx context.Context, buyerID int64) ([]domain.Order, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]domain.Order, error)

	// CompleteWithLicense performs the settlement transaction: a conditional
	// pending→completed update recording the gateway transaction id, plus the
	// license insert, atomically. A CAS miss (order not pending) returns
	// domain.ErrConflict before any write; a license key uniqueness violation
	// returns domain.ErrDuplicateKey with the whole transaction rolled back.
	CompleteWithLicense(ctx context.Context, orderID int64, transactionID string, key domain.LicenseKey) (domain.LicenseKey, error)

	// MarkFailed moves a pending order to failed. Returns domain.ErrConflict
	// when the order is no longer pending.
	MarkFailed(ctx context.Context, orderID int64) error

	// MarkRefunded moves a completed order to refunded (terminal). Returns
	// domain.ErrConflict when the order is not completed.
	MarkRefunded(ctx context.Context, orderID int64) error

	// HasCompletedPurchase reports whether the buyer has a completed order for
	// the product. Used to stamp verified-purchase reviews.
	HasCompletedPurchase(ctx context.Context, buyerID, productID int64) (bool, error)
}

type LicenseRepository interface {
	Create(ctx context.Context, key domain.LicenseKey) (domain.LicenseKey, error)
	CreateBatch(ctx context.Context, keys []domain.LicenseKey) ([]domain.LicenseKey, error)
	GetByID(ctx context.Context, licenseID int64) (domain.LicenseKey, error)
	GetByKey(ctx context.Context, key string) (domain.LicenseKey, error)
	ListByBuyer(ctx context.Context, buyerID int64) ([]domain.LicenseKey, error)
	ListByProduct(ctx context.Context, productID int64) ([]domain.LicenseKey, error)
	// FindActiveForUserProduct locates a usable key backing a download request.
	FindActiveForUserProduct(ctx context.Context, userID, productID int64) (domain.LicenseKey, error)
	UpdateStatus(ctx context.Context, licenseID int64, status domain.LicenseStatus) error
	// RevokeByOrder revokes the key minted for an order, if any. Missing key is
	// not an error: batch-redeemed orders may have none.
	RevokeByOrder(ctx context.Context, orderID int64) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review domain.Review) (domain.Review, error)
	GetByID(ctx context.Context, reviewID int64) (domain.Review, error)
	ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error)
	Update(ctx context.Context, review domain.Review) error
	Delete(ctx context.Context, reviewID int64) error
	Summary(ctx context.Context, productID int64) (domain.RatingSummary, error)
}

type DownloadRepository interface {
	Record(ctx context.Context, download domain.Download) (domain.Download, error)
	ListByProduct(ctx context.Context, productID int64) ([]domain.Download, error)
}

type SellerProfileRepository interface {
	GetByUser(ctx context.Context, userID int64) (domain.SellerProfile, error)
	Create(ctx context.Context, profile domain.SellerProfile) (domain.SellerProfile, error)
	Update(ctx context.Context, profile domain.SellerProfile) error
	// AddSale bumps the earnings/sales counters after a completed order.
	AddSale(ctx context.Context, userID int64, amount decimal.Decimal) error
}

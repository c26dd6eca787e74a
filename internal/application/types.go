package application

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/horu2day/saleslicense/internal/domain"
)

type Config struct {
	ServiceName string
	// LicenseValidity is how long a purchase-issued key stays valid.
	LicenseValidity time.Duration
	DefaultCurrency string
}

// Actor identifies the authenticated caller. Token verification happens
// upstream at the identity provider; by the time a request reaches the
// application layer only the resolved subject matters.
type Actor struct {
	UserID    int64
	Role      string
	RequestID string
	ClientIP  string
	UserAgent string
}

func (a Actor) authenticated() bool { return a.UserID > 0 }

type CreateOrderInput struct {
	ProductID int64
	Quantity  int
}

// CheckoutSession is what the client needs to open the gateway's hosted
// payment widget.
type CheckoutSession struct {
	OrderRef    string `json:"order_id"`
	Amount      int64  `json:"amount"`
	ProductName string `json:"product_name"`
}

type ConfirmPaymentInput struct {
	PaymentKey string
	OrderRef   string
	Amount     int64
}

type ConfirmPaymentResult struct {
	ProductName string `json:"product_name"`
	LicenseKey  string `json:"license_key"`
}

type FailPaymentInput struct {
	OrderRef string
	Code     string
	Message  string
}

type RefundInput struct {
	OrderID int64
	Reason  string
}

type CreateProductInput struct {
	Title       string
	Description string
	Category    string
	Price       decimal.Decimal
	Currency    string
	Version     string
	DownloadURL string
	LicenseType domain.LicenseType
}

type UpdateProductInput struct {
	ProductID   int64
	Title       *string
	Description *string
	Category    *string
	Price       *decimal.Decimal
	Version     *string
	DownloadURL *string
	Active      *bool
}

type ListProductsQuery struct {
	Category string
	Limit    int
	Offset   int
}

type IssueBatchInput struct {
	ProductID int64
	Count     int
}

// ValidationResult mirrors the licenses.validateKey RPC shape.
type ValidationResult struct {
	Valid   bool               `json:"valid"`
	Message string             `json:"message"`
	License *domain.LicenseKey `json:"license,omitempty"`
}

type SetLicenseStatusInput struct {
	LicenseID int64
	Status    domain.LicenseStatus
}

type CreateReviewInput struct {
	ProductID int64
	Rating    int
	Title     string
	Content   string
}

type UpdateReviewInput struct {
	ReviewID int64
	Rating   *int
	Title    *string
	Content  *string
}

// SellerProfileInput carries partial profile fields; nil means "leave as is"
// on update and "empty" on create.
type SellerProfileInput struct {
	CompanyName *string
	Bio         *string
	Website     *string
}

type RecordDownloadInput struct {
	ProductID    int64
	LicenseKeyID *int64
}

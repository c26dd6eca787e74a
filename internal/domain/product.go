package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type LicenseType string

const (
	LicensePerpetual    LicenseType = "perpetual"
	LicenseSubscription LicenseType = "subscription"
	LicenseTrial        LicenseType = "trial"
)

func (t LicenseType) Valid() bool {
	switch t {
	case LicensePerpetual, LicenseSubscription, LicenseTrial:
		return true
	}
	return false
}

// Product is a digital good listed by a seller. Price is a fixed-point decimal
// so totals never accumulate floating-point drift.
type Product struct {
	ID           int64           `json:"id"`
	SellerID     int64           `json:"seller_id"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Category     string          `json:"category,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Currency     string          `json:"currency"`
	Version      string          `json:"version,omitempty"`
	DownloadURL  string          `json:"download_url,omitempty"`
	LicenseType  LicenseType     `json:"license_type"`
	MaxDownloads *int            `json:"max_downloads,omitempty"`
	ExpiryDays   *int            `json:"expiry_days,omitempty"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func ValidateNewProduct(title string, price decimal.Decimal, licenseType LicenseType) error {
	if strings.TrimSpace(title) == "" {
		return ErrInvalidInput
	}
	if price.IsNegative() {
		return ErrInvalidInput
	}
	if !licenseType.Valid() {
		return ErrInvalidInput
	}
	return nil
}

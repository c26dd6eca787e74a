package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SellerProfile carries the storefront details and running sales counters for
// one seller. TotalEarnings and TotalSales are incremented when an order for
// one of the seller's products completes.
type SellerProfile struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	CompanyName   string          `json:"company_name,omitempty"`
	Bio           string          `json:"bio,omitempty"`
	Website       string          `json:"website,omitempty"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
	TotalSales    int             `json:"total_sales"`
	IsVerified    bool            `json:"is_verified"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Download records one fulfilment of a purchased product. Delivery of the file
// itself happens elsewhere; this is the audit trail.
type Download struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	ProductID    int64     `json:"product_id"`
	LicenseKeyID *int64    `json:"license_key_id,omitempty"`
	IPAddress    string    `json:"ip_address,omitempty"`
	UserAgent    string    `json:"user_agent,omitempty"`
	DownloadedAt time.Time `json:"downloaded_at"`
}

package postgres

import (
	"time"

	"github.com/shopspring/decimal"
)

type productModel struct {
	ID           int64           `gorm:"column:id;primaryKey"`
	SellerID     int64           `gorm:"column:seller_id"`
	Title        string          `gorm:"column:title"`
	Description  string          `gorm:"column:description"`
	Category     string          `gorm:"column:category"`
	Price        decimal.Decimal `gorm:"column:price;type:numeric(12,2)"`
	Currency     string          `gorm:"column:currency"`
	Version      string          `gorm:"column:version"`
	DownloadURL  string          `gorm:"column:download_url"`
	LicenseType  string          `gorm:"column:license_type"`
	MaxDownloads *int            `gorm:"column:max_downloads"`
	ExpiryDays   *int            `gorm:"column:expiry_days"`
	Active       bool            `gorm:"column:active"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at"`
}

func (productModel) TableName() string { return "products" }

type orderModel struct {
	ID            int64           `gorm:"column:id;primaryKey"`
	BuyerID       int64           `gorm:"column:buyer_id"`
	SellerID      int64           `gorm:"column:seller_id"`
	ProductID     int64           `gorm:"column:product_id"`
	Quantity      int             `gorm:"column:quantity"`
	UnitPrice     decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2)"`
	TotalPrice    decimal.Decimal `gorm:"column:total_price;type:numeric(12,2)"`
	Currency      string          `gorm:"column:currency"`
	Status        string          `gorm:"column:status"`
	PaymentMethod string          `gorm:"column:payment_method"`
	TransactionID string          `gorm:"column:transaction_id"`
	Notes         string          `gorm:"column:notes"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (orderModel) TableName() string { return "orders" }

type licenseKeyModel struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	ProductID       int64      `gorm:"column:product_id"`
	Key             string     `gorm:"column:license_key"`
	BuyerID         *int64     `gorm:"column:buyer_id"`
	OrderID         *int64     `gorm:"column:order_id"`
	Status          string     `gorm:"column:status"`
	ActivatedAt     *time.Time `gorm:"column:activated_at"`
	ExpiresAt       *time.Time `gorm:"column:expires_at"`
	ActivationCount int        `gorm:"column:activation_count"`
	MaxActivations  int        `gorm:"column:max_activations"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

func (licenseKeyModel) TableName() string { return "license_keys" }

type reviewModel struct {
	ID                 int64     `gorm:"column:id;primaryKey"`
	ProductID          int64     `gorm:"column:product_id"`
	BuyerID            int64     `gorm:"column:buyer_id"`
	Rating             int       `gorm:"column:rating"`
	Title              string    `gorm:"column:title"`
	Content            string    `gorm:"column:content"`
	Helpful            int       `gorm:"column:helpful"`
	IsVerifiedPurchase bool      `gorm:"column:is_verified_purchase"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (reviewModel) TableName() string { return "reviews" }

type downloadModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	UserID       int64     `gorm:"column:user_id"`
	ProductID    int64     `gorm:"column:product_id"`
	LicenseKeyID *int64    `gorm:"column:license_key_id"`
	IPAddress    string    `gorm:"column:ip_address"`
	UserAgent    string    `gorm:"column:user_agent"`
	DownloadedAt time.Time `gorm:"column:downloaded_at"`
}

func (downloadModel) TableName() string { return "downloads" }

type sellerProfileModel struct {
	ID            int64           `gorm:"column:id;primaryKey"`
	UserID        int64           `gorm:"column:user_id"`
	CompanyName   string          `gorm:"column:company_name"`
	Bio           string          `gorm:"column:bio"`
	Website       string          `gorm:"column:website"`
	TotalEarnings decimal.Decimal `gorm:"column:total_earnings;type:numeric(12,2)"`
	TotalSales    int             `gorm:"column:total_sales"`
	IsVerified    bool            `gorm:"column:is_verified"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (sellerProfileModel) TableName() string { return "seller_profiles" }

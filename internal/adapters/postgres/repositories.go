package postgres

import (
	"gorm.io/gorm"

	"github.com/horu2day/saleslicense/internal/ports"
)

type Repositories struct {
	Products  ports.ProductRepository
	Orders    ports.OrderRepository
	Licenses  ports.LicenseRepository
	Reviews   ports.ReviewRepository
	Downloads ports.DownloadRepository
	Sellers   ports.SellerProfileRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Products:  &productRepository{db: db},
		Orders:    &orderRepository{db: db},
		Licenses:  &licenseRepository{db: db},
		Reviews:   &reviewRepository{db: db},
		Downloads: &downloadRepository{db: db},
		Sellers:   &sellerProfileRepository{db: db},
	}
}

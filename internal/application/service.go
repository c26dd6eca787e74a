package application

import (
	"log/slog"
	"time"

	"github.com/horu2day/saleslicense/internal/ports"
)

// Service holds every marketplace use case. Handlers stay thin; all business
// rules, ownership checks and state transitions live here.
type Service struct {
	cfg      Config
	products ports.ProductRepository
	orders   ports.OrderRepository
	licenses ports.LicenseRepository
	reviews  ports.ReviewRepository
	download ports.DownloadRepository
	sellers  ports.SellerProfileRepository
	gateway  ports.PaymentGateway
	logger   *slog.Logger
	nowFn    func() time.Time
}

type Dependencies struct {
	Config    Config
	Products  ports.ProductRepository
	Orders    ports.OrderRepository
	Licenses  ports.LicenseRepository
	Reviews   ports.ReviewRepository
	Downloads ports.DownloadRepository
	Sellers   ports.SellerProfileRepository
	Gateway   ports.PaymentGateway
	Logger    *slog.Logger
}

func NewService(deps Dependencies) *Service {
	s := &Service{
		cfg:      deps.Config,
		products: deps.Products,
		orders:   deps.Orders,
		licenses: deps.Licenses,
		reviews:  deps.Reviews,
		download: deps.Downloads,
		sellers:  deps.Sellers,
		gateway:  deps.Gateway,
		logger:   deps.Logger,
		nowFn:    func() time.Time { return time.Now().UTC() },
	}
	if s.cfg.LicenseValidity == 0 {
		s.cfg.LicenseValidity = 365 * 24 * time.Hour
	}
	if s.cfg.DefaultCurrency == "" {
		s.cfg.DefaultCurrency = "USD"
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

func (s *Service) log() *slog.Logger {
	return s.logger.With("module", "application", "layer", "service")
}

// Package memory backs every repository port with in-process maps. It keeps
// local runs and tests independent of Postgres while honouring the same
// semantics the SQL adapter provides, including the compare-and-swap order
// transitions and the license key uniqueness constraint.
package memory

import (
	"sort"
	"sync"

	"github.com/horu2day/saleslicense/internal/domain"
	"github.com/horu2day/saleslicense/internal/ports"
)

// Store holds the shared tables. The per-port repositories returned by
// NewRepositories are views over one Store so cross-table operations such as
// order settlement stay atomic under a single lock.
type Store struct {
	mu sync.RWMutex

	products map[int64]domain.Product
	orders   map[int64]domain.Order
	licenses map[int64]domain.LicenseKey
	keyIndex map[string]int64
	reviews  map[int64]domain.Review
	download map[int64]domain.Download
	sellers  map[int64]domain.SellerProfile

	nextID int64
}

// Repositories bundles one implementation of every repository port.
type Repositories struct {
	Products  ports.ProductRepository
	Orders    ports.OrderRepository
	Licenses  ports.LicenseRepository
	Reviews   ports.ReviewRepository
	Downloads ports.DownloadRepository
	Sellers   ports.SellerProfileRepository
}

func NewStore() *Store {
	return &Store{
		products: make(map[int64]domain.Product),
		orders:   make(map[int64]domain.Order),
		licenses: make(map[int64]domain.LicenseKey),
		keyIndex: make(map[string]int64),
		reviews:  make(map[int64]domain.Review),
		download: make(map[int64]domain.Download),
		sellers:  make(map[int64]domain.SellerProfile),
	}
}

func NewRepositories() *Repositories {
	store := NewStore()
	return &Repositories{
		Products:  &productRepo{store},
		Orders:    &orderRepo{store},
		Licenses:  &licenseRepo{store},
		Reviews:   &reviewRepo{store},
		Downloads: &downloadRepo{store},
		Sellers:   &sellerRepo{store},
	}
}

// nextSequence must be called with the write lock held.
func (s *Store) nextSequence() int64 {
	s.nextID++
	return s.nextID
}

// insertLicense must be called with the write lock held.
func (s *Store) insertLicense(key domain.LicenseKey) (domain.LicenseKey, error) {
	if _, exists := s.keyIndex[key.Key]; exists {
		return domain.LicenseKey{}, domain.ErrDuplicateKey
	}
	key.ID = s.nextSequence()
	s.licenses[key.ID] = key
	s.keyIndex[key.Key] = key.ID
	return key, nil
}

func (s *Store) swapOrderStatus(orderID int64, from, to domain.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	if order.Status != from {
		return domain.ErrConflict
	}
	order.Status = to
	s.orders[orderID] = order
	return nil
}

func sortNewestProducts(items []domain.Product) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

func sortNewestOrders(items []domain.Order) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

func sortLicenses(items []domain.LicenseKey) {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
}

func sortNewestReviews(items []domain.Review) {
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
}

func sortDownloads(items []domain.Download) {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
}

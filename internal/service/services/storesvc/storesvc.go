package storesvc

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"

	"github.com/sabordecasa/storefront/internal/dal/interfaces/ioutboxrepo"
	"github.com/sabordecasa/storefront/internal/dal/interfaces/isnapshotrepo"
	"github.com/sabordecasa/storefront/internal/service/models/cartitem"
	"github.com/sabordecasa/storefront/internal/service/models/order"
	"github.com/sabordecasa/storefront/internal/service/models/orderstatus"
	"github.com/sabordecasa/storefront/internal/service/models/product"
	"github.com/sabordecasa/storefront/internal/service/models/view"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// ConnStatus is the store's view of remote connectivity.
type ConnStatus string

const (
	ConnStatusUnknown      ConnStatus = "unknown"
	ConnStatusConnected    ConnStatus = "connected"
	ConnStatusDisconnected ConnStatus = "disconnected"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	// ErrAdminWrite wraps a failed remote write during an admin edit. The
	// local state is left unchanged and the admin has to retry manually.
	ErrAdminWrite = errors.New("admin write rejected by remote store")
	ErrNotAdmin   = errors.New("admin capability required")
)

// remoteGateway is the slice of the persistence gateway the store depends on.
type remoteGateway interface {
	FetchProducts(ctx context.Context) ([]product.Product, error)
	FetchOrders(ctx context.Context) ([]order.Order, error)
	InsertOrder(ctx context.Context, ord order.Order) error
	UpdateProductStock(ctx context.Context, id string, newStock int) error
	InsertProduct(ctx context.Context, draft product.Draft) (product.Product, error)
	UpdateProduct(ctx context.Context, id string, draft product.Draft) error
	UpdateOrderStatus(ctx context.Context, id string, status orderstatus.Status) error
}

// StoreService owns the whole application state: catalog, cart, order
// history, the current view, the admin capability flag and the connectivity
// status. Every mutation goes through a command method on this service;
// nothing else touches the state.
//
// Two write policies coexist on purpose. Checkout is local-first: the order
// is final for the customer no matter what the remote store says. Admin
// edits are remote-gated: local state only changes after the remote write
// is confirmed.
type StoreService struct {
	gw            remoteGateway
	snapshots     isnapshotrepo.ISnapshotRepository
	outbox        ioutboxrepo.IOutboxRepository
	adminPassword string
	deliveryFee   decimal.Decimal

	mu         sync.Mutex
	catalog    []product.Product
	cart       []cartitem.CartItem
	orders     []order.Order
	view       view.View
	connStatus ConnStatus
	isAdmin    bool
}

// option is a function that configures the StoreService.
type option func(*StoreService)

// MustNewStoreService creates a new StoreService seeded with the default
// catalog. Call Init to load state from the remote store or the local
// snapshot.
func MustNewStoreService(opts ...option) *StoreService {
	fee := viper.GetFloat64("store.delivery_fee")
	if fee == 0 {
		fee = 5.00
	}

	s := &StoreService{
		adminPassword: os.Getenv("STOREFRONT_ADMIN_PASSWORD"),
		deliveryFee:   decimal.NewFromFloat(fee),
		catalog:       seedCatalog(),
		view:          view.ViewCatalog,
		connStatus:    ConnStatusUnknown,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithGateway sets the persistence gateway for the StoreService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithGateway(gw remoteGateway) option {
	return func(s *StoreService) {
		s.gw = gw
	}
}

// WithSnapshotRepository sets the local catalog snapshot store.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithSnapshotRepository(repo isnapshotrepo.ISnapshotRepository) option {
	return func(s *StoreService) {
		s.snapshots = repo
	}
}

// WithOutboxRepository sets the local audit outbox.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithOutboxRepository(repo ioutboxrepo.IOutboxRepository) option {
	return func(s *StoreService) {
		s.outbox = repo
	}
}

// Init performs the startup load. Remote products, when present, replace the
// seed catalog; a remote failure degrades to the cached snapshot. The
// snapshot is rewritten afterwards either way, so a reload survives a store
// that went down in the meantime.
func (s *StoreService) Init(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.gw.FetchProducts(ctx)
	if err != nil {
		slog.Error("Initial product fetch failed, falling back to local snapshot", "error", err)
		s.connStatus = ConnStatusDisconnected

		if s.snapshots != nil {
			cached, cacheErr := s.snapshots.Load(ctx)
			if cacheErr != nil {
				slog.Error("Failed to load local catalog snapshot", "error", cacheErr)
			} else if len(cached) > 0 {
				s.catalog = cached
			}
		}
	} else {
		s.connStatus = ConnStatusConnected
		if len(products) > 0 {
			s.catalog = products
		}

		orders, err := s.gw.FetchOrders(ctx)
		if err != nil {
			slog.Error("Initial order fetch failed", "error", err)
		} else {
			s.orders = orders
		}
	}

	s.persistSnapshotLocked(ctx)
}

// ConnectionStatus returns the current connectivity status.
func (s *StoreService) ConnectionStatus() ConnStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.connStatus
}

// Catalog returns a copy of the in-memory product catalog.
func (s *StoreService) Catalog() []product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]product.Product(nil), s.catalog...)
}

// CatalogByCategory filters the catalog with a pure predicate over the
// in-memory list. The tips category holds articles, never products.
func (s *StoreService) CatalogByCategory(cat string) []product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cat == "" {
		return append([]product.Product(nil), s.catalog...)
	}

	var filtered []product.Product
	for _, p := range s.catalog {
		if p.Category.String() == cat {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

// Orders returns a copy of the in-memory order history.
func (s *StoreService) Orders() []order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]order.Order(nil), s.orders...)
}

// persistSnapshotLocked writes the catalog to the local snapshot. It runs
// after every catalog change regardless of connectivity, as a defense
// against data loss on reload. Callers must hold s.mu.
func (s *StoreService) persistSnapshotLocked(ctx context.Context) {
	if s.snapshots == nil {
		return
	}

	if err := s.snapshots.Save(ctx, s.catalog); err != nil {
		slog.Error("Failed to persist catalog snapshot", "error", err)
	}
}

package storesvc

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"

	"github.com/sabordecasa/storefront/internal/service/models/orderstatus"
	"github.com/sabordecasa/storefront/internal/service/models/product"
	"github.com/sabordecasa/storefront/internal/service/models/view"
)

// Login compares the shared admin password and sets the capability flag.
// This is a capability flag, not a security boundary: no sessions, no
// tokens, no hashing.
func (s *StoreService) Login(password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.adminPassword == "" {
		return false
	}

	ok := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	if ok {
		s.isAdmin = true
	}

	return ok
}

// Logout clears the capability flag and leaves the admin view.
func (s *StoreService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isAdmin = false
	if s.view == view.ViewAdmin {
		s.view = view.ViewCatalog
	}
}

// IsAdmin reports whether the admin capability flag is set.
func (s *StoreService) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.isAdmin
}

// CreateProduct adds a product through the remote-gated policy: the remote
// insert must succeed before the catalog changes locally.
func (s *StoreService) CreateProduct(ctx context.Context, draft product.Draft) (product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isAdmin {
		return product.Product{}, ErrNotAdmin
	}

	created, err := s.gw.InsertProduct(ctx, draft)
	if err != nil {
		slog.Error("Remote product insert failed", "error", err)
		return product.Product{}, fmt.Errorf("%w: %v", ErrAdminWrite, err)
	}

	s.catalog = append(s.catalog, created)
	s.persistSnapshotLocked(ctx)

	return created, nil
}

// EditProduct overwrites a product through the remote-gated policy. On
// remote failure the in-memory product keeps its previous values.
func (s *StoreService) EditProduct(ctx context.Context, id string, draft product.Draft) (product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isAdmin {
		return product.Product{}, ErrNotAdmin
	}

	idx := -1
	for i := range s.catalog {
		if s.catalog[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return product.Product{}, ErrProductNotFound
	}

	if err := s.gw.UpdateProduct(ctx, id, draft); err != nil {
		slog.Error("Remote product update failed", "product_id", id, "error", err)
		return product.Product{}, fmt.Errorf("%w: %v", ErrAdminWrite, err)
	}

	s.catalog[idx] = product.Product{
		ID:          id,
		Name:        draft.Name,
		Category:    draft.Category,
		Price:       draft.Price,
		Cost:        draft.Cost,
		Description: draft.Description,
		Stock:       draft.Stock,
		Image:       draft.Image,
	}
	s.persistSnapshotLocked(ctx)

	return s.catalog[idx], nil
}

// SetOrderStatus moves an order to a new status through the remote-gated
// policy. The admin control only offers pending, preparing and shipped;
// that restriction is enforced at the transport layer.
func (s *StoreService) SetOrderStatus(ctx context.Context, id string, status orderstatus.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isAdmin {
		return ErrNotAdmin
	}

	idx := -1
	for i := range s.orders {
		if s.orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrOrderNotFound
	}

	if err := s.gw.UpdateOrderStatus(ctx, id, status); err != nil {
		slog.Error("Remote status update failed", "order_id", id, "error", err)
		return fmt.Errorf("%w: %v", ErrAdminWrite, err)
	}

	s.orders[idx].Status = status

	return nil
}

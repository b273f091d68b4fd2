package gateway

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sabordecasa/storefront/internal/dal/interfaces/iorderrepo"
	"github.com/sabordecasa/storefront/internal/dal/interfaces/iproductrepo"
	"github.com/sabordecasa/storefront/internal/dal/postgres"
	orderrepo "github.com/sabordecasa/storefront/internal/dal/repositories/order/postgres"
	productrepo "github.com/sabordecasa/storefront/internal/dal/repositories/product/postgres"
	"github.com/sabordecasa/storefront/internal/service/models/order"
	"github.com/sabordecasa/storefront/internal/service/models/orderstatus"
	"github.com/sabordecasa/storefront/internal/service/models/product"
)

// ErrConnectionDown signals that the remote store rejected or never received
// an operation. Every repository failure is reported through this sentinel:
// the callers only care that the store is unreachable, not why.
var ErrConnectionDown = errors.New("remote store unreachable")

// Gateway is the single entry point to the remote store. It tracks
// connectivity as a side effect of every call and never panics past its
// boundary.
type Gateway struct {
	productRepo iproductrepo.IProductRepository
	orderRepo   iorderrepo.IOrderRepository

	mu        sync.RWMutex
	connected bool
}

// New creates a gateway over an established Postgres client. A nil client
// yields a permanently disconnected gateway, used when the initial
// connection attempt failed.
func New(client *postgres.Client) *Gateway {
	if client == nil {
		return &Gateway{}
	}

	return &Gateway{
		productRepo: productrepo.NewPostgresProductRepository(client.DB()),
		orderRepo:   orderrepo.NewPostgresOrderRepository(client.DB()),
		connected:   true,
	}
}

// Connected reports the result of the most recent remote operation.
func (g *Gateway) Connected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.connected
}

func (g *Gateway) setConnected(ok bool) {
	g.mu.Lock()
	g.connected = ok
	g.mu.Unlock()
}

func (g *Gateway) observe(err error) error {
	if err != nil {
		g.setConnected(false)
		return fmt.Errorf("%w: %v", ErrConnectionDown, err)
	}

	g.setConnected(true)

	return nil
}

// FetchProducts retrieves the full remote catalog.
func (g *Gateway) FetchProducts(ctx context.Context) ([]product.Product, error) {
	if g.productRepo == nil {
		return nil, ErrConnectionDown
	}

	products, err := g.productRepo.FetchAll(ctx)
	if err := g.observe(err); err != nil {
		return nil, err
	}

	return products, nil
}

// FetchOrders retrieves the remote order history.
func (g *Gateway) FetchOrders(ctx context.Context) ([]order.Order, error) {
	if g.orderRepo == nil {
		return nil, ErrConnectionDown
	}

	orders, err := g.orderRepo.FetchAll(ctx, nil)
	if err := g.observe(err); err != nil {
		return nil, err
	}

	return orders, nil
}

// InsertOrder stores a new order remotely.
func (g *Gateway) InsertOrder(ctx context.Context, ord order.Order) error {
	if g.orderRepo == nil {
		return ErrConnectionDown
	}

	return g.observe(g.orderRepo.Insert(ctx, ord))
}

// UpdateProductStock writes an absolute stock value for a product.
func (g *Gateway) UpdateProductStock(ctx context.Context, id string, newStock int) error {
	if g.productRepo == nil {
		return ErrConnectionDown
	}

	return g.observe(g.productRepo.UpdateStock(ctx, id, newStock))
}

// InsertProduct stores a new product and returns it with its generated id.
func (g *Gateway) InsertProduct(ctx context.Context, draft product.Draft) (product.Product, error) {
	if g.productRepo == nil {
		return product.Product{}, ErrConnectionDown
	}

	created, err := g.productRepo.Insert(ctx, draft)
	if err := g.observe(err); err != nil {
		return product.Product{}, err
	}

	return created, nil
}

// UpdateProduct overwrites an existing product remotely.
func (g *Gateway) UpdateProduct(ctx context.Context, id string, draft product.Draft) error {
	if g.productRepo == nil {
		return ErrConnectionDown
	}

	return g.observe(g.productRepo.Update(ctx, id, draft))
}

// UpdateOrderStatus writes a new status for an existing order.
func (g *Gateway) UpdateOrderStatus(ctx context.Context, id string, status orderstatus.Status) error {
	if g.orderRepo == nil {
		return ErrConnectionDown
	}

	return g.observe(g.orderRepo.UpdateStatus(ctx, id, status))
}

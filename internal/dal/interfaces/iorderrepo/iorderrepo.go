package iorderrepo

import (
	"context"

	"github.com/sabordecasa/storefront/internal/service/models/order"
	"github.com/sabordecasa/storefront/internal/service/models/orderstatus"
)

// IOrderRepository is an interface for the order postgres repository.
type IOrderRepository interface {
	FetchAll(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error)
	Insert(ctx context.Context, ord order.Order) error
	UpdateStatus(ctx context.Context, id string, status orderstatus.Status) error
}

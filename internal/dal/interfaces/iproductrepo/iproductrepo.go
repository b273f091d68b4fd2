package iproductrepo

import (
	"context"

	"github.com/sabordecasa/storefront/internal/service/models/product"
)

// IProductRepository is an interface for the product postgres repository.
type IProductRepository interface {
	FetchAll(ctx context.Context) ([]product.Product, error)
	Insert(ctx context.Context, draft product.Draft) (product.Product, error)
	Update(ctx context.Context, id string, draft product.Draft) error
	UpdateStock(ctx context.Context, id string, newStock int) error
}

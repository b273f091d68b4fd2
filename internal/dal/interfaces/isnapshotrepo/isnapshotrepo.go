package isnapshotrepo

import (
	"context"

	"github.com/sabordecasa/storefront/internal/service/models/product"
)

// ISnapshotRepository is an interface for the local catalog snapshot store.
type ISnapshotRepository interface {
	Save(ctx context.Context, products []product.Product) error
	Load(ctx context.Context) ([]product.Product, error)
}

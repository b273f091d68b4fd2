package product

import (
	"github.com/sabordecasa/storefront/internal/service/models/category"
	"github.com/shopspring/decimal"
)

// Product represents a purchasable catalog entry.
type Product struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    category.Category `json:"category"`
	Price       decimal.Decimal   `json:"price"`
	Cost        decimal.Decimal   `json:"cost"`
	Description string            `json:"description"`
	Stock       int               `json:"stock"`
	Image       string            `json:"image"`
}

// Draft carries the admin-editable fields of a product. The id is assigned
// by the persistence layer on insert.
type Draft struct {
	Name        string            `json:"name"`
	Category    category.Category `json:"category"`
	Price       decimal.Decimal   `json:"price"`
	Cost        decimal.Decimal   `json:"cost"`
	Description string            `json:"description"`
	Stock       int               `json:"stock"`
	Image       string            `json:"image"`
}

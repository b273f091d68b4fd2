package cartitem

import (
	"github.com/sabordecasa/storefront/internal/service/models/product"
	"github.com/shopspring/decimal"
)

// CartItem is a product snapshot plus a quantity. It exists only inside the
// in-memory cart and inside order line-item snapshots; quantity is always
// positive while the item is present.
type CartItem struct {
	product.Product
	Quantity int `json:"quantity"`
}

// LineTotal returns price multiplied by quantity.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Subtotal sums the line totals of the given items.
func Subtotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}

	return total
}

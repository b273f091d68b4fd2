package order

import (
	"time"

	"github.com/sabordecasa/storefront/internal/service/models/cartitem"
	"github.com/sabordecasa/storefront/internal/service/models/customer"
	"github.com/sabordecasa/storefront/internal/service/models/orderstatus"
	"github.com/sabordecasa/storefront/internal/service/models/paymentmethod"
	"github.com/shopspring/decimal"
)

// Order is an immutable record of a completed purchase request. Items and
// customer data are frozen at purchase time; later catalog changes never
// alter a historical order. Total equals Subtotal plus DeliveryFee at
// creation and is never recomputed afterwards.
type Order struct {
	ID            string               `json:"id"`
	CreatedAt     time.Time            `json:"createdAt"`
	Customer      customer.Customer    `json:"customer"`
	Items         []cartitem.CartItem  `json:"items"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	DeliveryFee   decimal.Decimal      `json:"deliveryFee"`
	Total         decimal.Decimal      `json:"total"`
	Status        orderstatus.Status   `json:"status"`
	PaymentMethod paymentmethod.Method `json:"paymentMethod"`
	// PayerName is set for pix payments, ChangeFor for cash payments.
	PayerName string          `json:"payerName,omitempty"`
	ChangeFor decimal.Decimal `json:"changeFor,omitempty"`
	MapLink   string          `json:"mapLink,omitempty"`
}

// Draft carries the checkout input needed to create an order. Line items and
// totals come from the live cart, not from the draft.
type Draft struct {
	Customer      customer.Customer    `json:"customer"`
	PaymentMethod paymentmethod.Method `json:"paymentMethod"`
	PayerName     string               `json:"payerName,omitempty"`
	ChangeFor     decimal.Decimal      `json:"changeFor,omitempty"`
}

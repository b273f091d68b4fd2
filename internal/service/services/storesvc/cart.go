package storesvc

import (
	"github.com/sabordecasa/storefront/internal/service/models/cartitem"
	"github.com/shopspring/decimal"
)

// AddToCart puts one unit of the product into the cart: an existing line is
// incremented, otherwise a new line with quantity 1 is appended. Stock is
// not checked here; the catalog view disables the button at zero stock and
// that advisory check is the only one.
func (s *StoreService) AddToCart(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == productID {
			s.cart[i].Quantity++
			return nil
		}
	}

	for _, p := range s.catalog {
		if p.ID == productID {
			s.cart = append(s.cart, cartitem.CartItem{Product: p, Quantity: 1})
			return nil
		}
	}

	return ErrProductNotFound
}

// UpdateCartQuantity adds delta to the matching line's quantity, clamped at
// zero; a line reaching zero is removed. There is no upper clamp against
// stock (the catalog view stops further increments on its own, nothing
// re-validates that centrally).
func (s *StoreService) UpdateCartQuantity(productID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID != productID {
			continue
		}

		qty := s.cart[i].Quantity + delta
		if qty <= 0 {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
		} else {
			s.cart[i].Quantity = qty
		}

		return nil
	}

	return ErrProductNotFound
}

// Cart returns a copy of the current cart lines.
func (s *StoreService) Cart() []cartitem.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]cartitem.CartItem(nil), s.cart...)
}

// Subtotal recomputes the cart subtotal from scratch on every call.
func (s *StoreService) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cartitem.Subtotal(s.cart)
}

// CartSummary is the cart view's totals: here the delivery fee applies
// whenever the cart is non-empty, while the checkout applies it only for
// delivery orders. The two computations are intentionally independent.
type CartSummary struct {
	Items       []cartitem.CartItem `json:"items"`
	Subtotal    decimal.Decimal     `json:"subtotal"`
	DeliveryFee decimal.Decimal     `json:"deliveryFee"`
	Total       decimal.Decimal     `json:"total"`
}

// Summary returns the cart view totals.
func (s *StoreService) Summary() CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := cartitem.Subtotal(s.cart)
	fee := decimal.Zero
	if len(s.cart) > 0 {
		fee = s.deliveryFee
	}

	return CartSummary{
		Items:       append([]cartitem.CartItem(nil), s.cart...),
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal.Add(fee),
	}
}

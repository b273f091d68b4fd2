package storesvc

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sabordecasa/storefront/internal/dal/repositories/audit"
	"github.com/sabordecasa/storefront/internal/service/models/cartitem"
	"github.com/sabordecasa/storefront/internal/service/models/customer"
	"github.com/sabordecasa/storefront/internal/service/models/order"
	"github.com/sabordecasa/storefront/internal/service/models/orderstatus"
	"github.com/sabordecasa/storefront/internal/service/models/outbox"
	"github.com/sabordecasa/storefront/internal/service/models/view"
	"github.com/shopspring/decimal"
)

// CreateOrder turns the current cart into an order. The write policy is
// local-first: the customer's order is final once this method returns,
// whatever happened on the remote side. A failed remote insert or stock
// decrement is logged and otherwise swallowed; this asymmetry with the
// remote-gated admin path is deliberate.
//
// The local sequence (append order, decrement stock, clear cart, switch to
// the success view) runs under the state lock, so no other command observes
// it half-applied. The remote insert and the per-item stock updates are
// separate network calls with no rollback: a failure partway through leaves
// the remote store partially updated, which is a documented gap.
func (s *StoreService) CreateOrder(ctx context.Context, draft order.Draft) (order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return order.Order{}, ErrEmptyCart
	}

	subtotal := cartitem.Subtotal(s.cart)
	fee := decimal.Zero
	// Checkout charges the fee only for delivery orders, unlike the cart
	// summary which charges it for any non-empty cart.
	if draft.Customer.DeliveryType == customer.DeliveryTypeDelivery {
		fee = s.deliveryFee
	}

	ord := order.Order{
		ID:            uuid.NewString(),
		CreatedAt:     time.Now(),
		Customer:      draft.Customer,
		Items:         append([]cartitem.CartItem(nil), s.cart...),
		Subtotal:      subtotal,
		DeliveryFee:   fee,
		Total:         subtotal.Add(fee),
		Status:        orderstatus.StatusPending,
		PaymentMethod: draft.PaymentMethod,
		PayerName:     draft.PayerName,
		ChangeFor:     draft.ChangeFor,
		MapLink:       order.MapLinkFor(draft.Customer.Address),
	}

	if s.connStatus == ConnStatusConnected {
		s.syncOrderLocked(ctx, ord)
	}

	s.orders = append(s.orders, ord)
	for _, item := range ord.Items {
		for i := range s.catalog {
			if s.catalog[i].ID == item.ID {
				s.catalog[i].Stock -= item.Quantity
			}
		}
	}
	s.cart = nil
	s.view = view.ViewSuccess

	s.persistSnapshotLocked(ctx)
	s.enqueueAuditLocked(ctx, ord)

	return ord, nil
}

// syncOrderLocked mirrors the order to the remote store on a best-effort
// basis. Each affected product's new stock is computed from the locally held
// pre-order value, not re-fetched: two concurrent orders for the same
// product can both read the same stale stock and one decrement gets lost.
// Known consistency gap, kept as is.
func (s *StoreService) syncOrderLocked(ctx context.Context, ord order.Order) {
	if err := s.gw.InsertOrder(ctx, ord); err != nil {
		slog.Error("Remote order insert failed, order kept locally", "order_id", ord.ID, "error", err)
		return
	}

	for _, item := range ord.Items {
		for _, p := range s.catalog {
			if p.ID != item.ID {
				continue
			}

			if err := s.gw.UpdateProductStock(ctx, p.ID, p.Stock-item.Quantity); err != nil {
				slog.Error("Remote stock decrement failed",
					"order_id", ord.ID,
					"product_id", p.ID,
					"error", err,
				)
			}
		}
	}
}

// enqueueAuditLocked buffers an order-created event for the audit pipeline.
// Best effort: a full or broken outbox never fails the checkout.
func (s *StoreService) enqueueAuditLocked(ctx context.Context, ord order.Order) {
	if s.outbox == nil {
		return
	}

	payload, err := json.Marshal(ord)
	if err != nil {
		slog.Error("Failed to encode order audit event", "order_id", ord.ID, "error", err)
		return
	}

	now := time.Now()
	msg := outbox.Message{
		QueueName:   audit.QueueOrderCreated,
		RoutingKey:  audit.QueueOrderCreated,
		Payload:     payload,
		ContentType: "application/json",
		MaxRetries:  5,
		CreatedAt:   now,
		UpdatedAt:   now,
		NextRetryAt: now,
	}
	if err := s.outbox.Insert(ctx, msg); err != nil {
		slog.Error("Failed to enqueue order audit event", "order_id", ord.ID, "error", err)
	}
}

package listorders

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sabordecasa/storefront/internal/service/models/order"
)

// service is an interface for the service layer.
type service interface {
	Orders() []order.Order
	IsAdmin() bool
}

type response struct {
	Orders []order.Order `json:"orders"`
}

// ListOrders returns the order history. Only the admin panel consumes this.
func ListOrders(w http.ResponseWriter, _ *http.Request, service service) {
	if !service.IsAdmin() {
		http.Error(w, "admin capability required", http.StatusForbidden)
		return
	}

	orders := service.Orders()
	if orders == nil {
		orders = []order.Order{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response{Orders: orders}); err != nil {
		slog.Error("Error writing response for list orders", "error", err)
	}
}

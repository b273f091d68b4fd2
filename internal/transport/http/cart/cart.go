package cart

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sabordecasa/storefront/internal/service/services/storesvc"
)

// service is an interface for the service layer.
type service interface {
	AddToCart(productID string) error
	UpdateCartQuantity(productID string, delta int) error
	Summary() storesvc.CartSummary
}

// GetCart returns the cart lines together with the cart view's totals.
func GetCart(w http.ResponseWriter, _ *http.Request, service service) {
	writeSummary(w, service)
}

type addItemRequest struct {
	ProductID string `json:"productId"`
}

// AddItem puts one unit of a product into the cart.
func AddItem(w http.ResponseWriter, r *http.Request, service service) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		slog.Error("Error decoding request body for add cart item", "error", err)

		return
	}
	if req.ProductID == "" {
		http.Error(w, "productId is required", http.StatusBadRequest)
		return
	}

	if err := service.AddToCart(req.ProductID); err != nil {
		if errors.Is(err, storesvc.ErrProductNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	writeSummary(w, service)
}

type updateItemRequest struct {
	Delta int `json:"delta"`
}

// UpdateItem adds a signed delta to a cart line's quantity.
func UpdateItem(w http.ResponseWriter, r *http.Request, service service) {
	id := chi.URLParam(r, "id")

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		slog.Error("Error decoding request body for update cart item", "error", err)

		return
	}

	if err := service.UpdateCartQuantity(id, req.Delta); err != nil {
		if errors.Is(err, storesvc.ErrProductNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	writeSummary(w, service)
}

func writeSummary(w http.ResponseWriter, service service) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(service.Summary()); err != nil {
		slog.Error("Error writing cart summary response", "error", err)
	}
}

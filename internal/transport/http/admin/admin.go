package admin

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sabordecasa/storefront/internal/service/models/category"
	"github.com/sabordecasa/storefront/internal/service/models/orderstatus"
	"github.com/sabordecasa/storefront/internal/service/models/product"
	"github.com/sabordecasa/storefront/internal/service/services/imaging"
	"github.com/sabordecasa/storefront/internal/service/services/storesvc"
	"github.com/shopspring/decimal"
)

// service is an interface for the service layer.
type service interface {
	Login(password string) bool
	Logout()
	CreateProduct(ctx context.Context, draft product.Draft) (product.Product, error)
	EditProduct(ctx context.Context, id string, draft product.Draft) (product.Product, error)
	SetOrderStatus(ctx context.Context, id string, status orderstatus.Status) error
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

// Login checks the shared admin password and sets the capability flag.
func Login(w http.ResponseWriter, r *http.Request, service service) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		slog.Error("Error decoding request body for admin login", "error", err)

		return
	}

	ok := service.Login(req.Password)
	if !ok {
		http.Error(w, "wrong password", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(loginResponse{IsAdmin: true}); err != nil {
		slog.Error("Error writing admin login response", "error", err)
	}
}

// Logout clears the capability flag.
func Logout(w http.ResponseWriter, _ *http.Request, service service) {
	service.Logout()
	w.WriteHeader(http.StatusNoContent)
}

type productRequest struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
	Image       string          `json:"image"`
}

func (req *productRequest) toDraft() (product.Draft, error) {
	if strings.TrimSpace(req.Name) == "" {
		return product.Draft{}, errors.New("name is required")
	}
	if req.Stock < 0 {
		return product.Draft{}, errors.New("stock cannot be negative")
	}

	cat, err := category.ParseCategory(req.Category)
	if err != nil {
		return product.Draft{}, err
	}

	return product.Draft{
		Name:        req.Name,
		Category:    cat,
		Price:       req.Price,
		Cost:        req.Cost,
		Description: req.Description,
		Stock:       req.Stock,
		Image:       downscaleDataURL(req.Image),
	}, nil
}

// downscaleDataURL shrinks an uploaded image before it is stored. Images
// arrive as base64 data URLs; anything else (a plain path, an empty field,
// malformed base64) passes through untouched.
func downscaleDataURL(img string) string {
	const marker = ";base64,"

	idx := strings.Index(img, marker)
	if !strings.HasPrefix(img, "data:") || idx < 0 {
		return img
	}

	raw, err := base64.StdEncoding.DecodeString(img[idx+len(marker):])
	if err != nil {
		slog.Warn("Failed to decode uploaded image, storing as is", "error", err)
		return img
	}

	scaled := imaging.Downscale(raw)

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(scaled)
}

// CreateProduct adds a product to the catalog. Remote-gated: a remote
// failure is surfaced here and nothing changes locally.
func CreateProduct(w http.ResponseWriter, r *http.Request, service service) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		slog.Error("Error decoding request body for create product", "error", err)

		return
	}

	draft, err := req.toDraft()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := service.CreateProduct(r.Context(), draft)
	if err != nil {
		writeAdminError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		slog.Error("Error writing response for create product", "error", err)
	}
}

// UpdateProduct overwrites a product's editable fields. Remote-gated.
func UpdateProduct(w http.ResponseWriter, r *http.Request, service service) {
	id := chi.URLParam(r, "id")

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		slog.Error("Error decoding request body for update product", "error", err)

		return
	}

	draft, err := req.toDraft()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := service.EditProduct(r.Context(), id, draft)
	if err != nil {
		writeAdminError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		slog.Error("Error writing response for update product", "error", err)
	}
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus moves an order to a new status. The control only offers
// pending, preparing and shipped; awaiting-payment and cancelled are
// reachable through other flows only.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request, service service) {
	id := chi.URLParam(r, "id")

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		slog.Error("Error decoding request body for update order status", "error", err)

		return
	}

	status, err := orderstatus.ParseStatus(req.Status)
	if err != nil {
		http.Error(w, "Unknown status", http.StatusBadRequest)
		return
	}
	if !orderstatus.IsAdminAssignable(status) {
		http.Error(w, "Status not assignable from the admin panel", http.StatusBadRequest)
		return
	}

	if err := service.SetOrderStatus(r.Context(), id, status); err != nil {
		writeAdminError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeAdminError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storesvc.ErrNotAdmin):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, storesvc.ErrProductNotFound), errors.Is(err, storesvc.ErrOrderNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, storesvc.ErrAdminWrite):
		// The admin must see the failure and retry manually.
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

package listproducts

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sabordecasa/storefront/internal/service/models/category"
	"github.com/sabordecasa/storefront/internal/service/models/product"
)

// service is an interface for the service layer.
type service interface {
	CatalogByCategory(cat string) []product.Product
}

type response struct {
	Products []product.Product `json:"products"`
}

// ListProducts handles the catalog listing request with an optional
// category filter. The tips category is a valid filter but always yields an
// empty list; its content is served by the articles endpoint instead.
func ListProducts(w http.ResponseWriter, r *http.Request, service service) {
	cat := r.URL.Query().Get("category")
	if cat != "" {
		if _, err := category.ParseCategory(cat); err != nil {
			http.Error(w, "Unknown category", http.StatusBadRequest)
			return
		}
	}

	products := service.CatalogByCategory(cat)
	if products == nil {
		products = []product.Product{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response{Products: products}); err != nil {
		slog.Error("Error writing response for list products", "error", err)
	}
}

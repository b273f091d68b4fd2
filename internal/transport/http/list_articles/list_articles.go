package listarticles

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sabordecasa/storefront/internal/service/models/article"
)

type response struct {
	Articles []article.Article `json:"articles"`
}

// ListArticles serves the static editorial content shown in the tips
// section. No service call: articles are read-only seed data.
func ListArticles(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response{Articles: article.Seed()}); err != nil {
		slog.Error("Error writing response for list articles", "error", err)
	}
}

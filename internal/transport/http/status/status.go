package status

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sabordecasa/storefront/internal/service/models/view"
	"github.com/sabordecasa/storefront/internal/service/services/storesvc"
)

// service is an interface for the service layer.
type service interface {
	ConnectionStatus() storesvc.ConnStatus
	View() view.View
	IsAdmin() bool
	Navigate(target view.View) view.View
}

type statusResponse struct {
	Connection storesvc.ConnStatus `json:"connection"`
	View       string              `json:"view"`
	IsAdmin    bool                `json:"isAdmin"`
}

// GetStatus reports connectivity, the current view and the admin flag.
func GetStatus(w http.ResponseWriter, _ *http.Request, service service) {
	resp := statusResponse{
		Connection: service.ConnectionStatus(),
		View:       service.View().String(),
		IsAdmin:    service.IsAdmin(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Error writing status response", "error", err)
	}
}

type navigateRequest struct {
	View string `json:"view"`
}

type navigateResponse struct {
	View string `json:"view"`
}

// Navigate requests a view transition and returns the view that resulted.
// Disallowed transitions, including admin without the capability flag, keep
// the current view and still answer 200: the state machine treats them as
// silent no-ops, not errors.
func Navigate(w http.ResponseWriter, r *http.Request, service service) {
	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		slog.Error("Error decoding request body for navigate", "error", err)

		return
	}

	target, err := view.ParseView(req.View)
	if err != nil {
		http.Error(w, "Unknown view", http.StatusBadRequest)
		return
	}

	current := service.Navigate(target)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(navigateResponse{View: current.String()}); err != nil {
		slog.Error("Error writing navigate response", "error", err)
	}
}

package createorder

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sabordecasa/storefront/internal/service/models/customer"
	"github.com/sabordecasa/storefront/internal/service/models/order"
	"github.com/sabordecasa/storefront/internal/service/models/paymentmethod"
	"github.com/sabordecasa/storefront/internal/service/services/storesvc"
	"github.com/shopspring/decimal"
)

// service is an interface for the service layer.
type service interface {
	CreateOrder(ctx context.Context, draft order.Draft) (order.Order, error)
}

type request struct {
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	DeliveryType  string          `json:"deliveryType"`
	PaymentMethod string          `json:"paymentMethod"`
	PayerName     string          `json:"payerName"`
	ChangeFor     decimal.Decimal `json:"changeFor"`
}

type validationError struct {
	Error         string   `json:"error"`
	MissingFields []string `json:"missingFields,omitempty"`
}

// CreateOrder handles checkout submission. Required-field validation is the
// only gate; once the draft is accepted, the order is placed locally no
// matter what the remote store does.
func CreateOrder(w http.ResponseWriter, r *http.Request, service service) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		slog.Error("Error decoding request body for create order", "error", err)

		return
	}

	deliveryType, err := customer.ParseDeliveryType(req.DeliveryType)
	if err != nil {
		writeValidationError(w, validationError{Error: "deliveryType must be delivery or pickup"})
		return
	}

	var missing []string
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Phone) == "" {
		missing = append(missing, "phone")
	}
	if deliveryType == customer.DeliveryTypeDelivery && strings.TrimSpace(req.Address) == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		writeValidationError(w, validationError{Error: "missing required fields", MissingFields: missing})
		return
	}

	method, err := paymentmethod.ParseMethod(req.PaymentMethod)
	if err != nil {
		writeValidationError(w, validationError{Error: "unknown payment method"})
		return
	}

	draft := order.Draft{
		Customer: customer.Customer{
			Name:         req.Name,
			Phone:        req.Phone,
			Address:      req.Address,
			DeliveryType: deliveryType,
		},
		PaymentMethod: method,
		PayerName:     req.PayerName,
		ChangeFor:     req.ChangeFor,
	}

	ord, err := service.CreateOrder(r.Context(), draft)
	if err != nil {
		if errors.Is(err, storesvc.ErrEmptyCart) {
			writeValidationError(w, validationError{Error: "cart is empty"})
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			slog.Error("Error creating order", "error", err)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ord); err != nil {
		slog.Error("Error writing response for create order", "error", err)
	}
}

func writeValidationError(w http.ResponseWriter, verr validationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(verr); err != nil {
		slog.Error("Error writing validation error response", "error", err)
	}
}

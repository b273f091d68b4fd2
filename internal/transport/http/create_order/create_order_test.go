package createorder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sabordecasa/storefront/internal/service/models/order"
	"github.com/sabordecasa/storefront/internal/service/models/orderstatus"
	"github.com/sabordecasa/storefront/internal/service/services/storesvc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	err   error
	draft order.Draft
}

func (m *mockService) CreateOrder(_ context.Context, draft order.Draft) (order.Order, error) {
	if m.err != nil {
		return order.Order{}, m.err
	}
	m.draft = draft

	return order.Order{
		ID:       uuid.NewString(),
		Customer: draft.Customer,
		Status:   orderstatus.StatusPending,
	}, nil
}

func post(t *testing.T, svc service, body string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	CreateOrder(rec, req, svc)

	return rec
}

func TestCreateOrder(t *testing.T) {
	valid := `{
		"name": "Ana Souza",
		"phone": "+55 11 91234-5678",
		"address": "Rua das Flores, 123",
		"deliveryType": "delivery",
		"paymentMethod": "pix",
		"payerName": "Ana Souza"
	}`

	t.Run("valid delivery order", func(t *testing.T) {
		svc := &mockService{}
		rec := post(t, svc, valid)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Ana Souza", svc.draft.Customer.Name)

		var resp order.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.ID)
	})

	t.Run("missing fields are listed", func(t *testing.T) {
		rec := post(t, &mockService{}, `{"deliveryType": "delivery", "paymentMethod": "pix"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var verr validationError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verr))
		assert.ElementsMatch(t, []string{"name", "phone", "address"}, verr.MissingFields)
	})

	t.Run("pickup does not require an address", func(t *testing.T) {
		rec := post(t, &mockService{}, `{
			"name": "Ana",
			"phone": "+55 11 91234-5678",
			"deliveryType": "pickup",
			"paymentMethod": "cash"
		}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unknown delivery type", func(t *testing.T) {
		rec := post(t, &mockService{}, `{"deliveryType": "teleport", "paymentMethod": "pix"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown payment method", func(t *testing.T) {
		rec := post(t, &mockService{}, `{
			"name": "Ana",
			"phone": "1",
			"deliveryType": "pickup",
			"paymentMethod": "cheque"
		}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty cart", func(t *testing.T) {
		rec := post(t, &mockService{err: storesvc.ErrEmptyCart}, valid)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var verr validationError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verr))
		assert.Equal(t, "cart is empty", verr.Error)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := post(t, &mockService{}, `{not json`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

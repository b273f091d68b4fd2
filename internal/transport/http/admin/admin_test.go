package admin

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sabordecasa/storefront/internal/service/models/orderstatus"
	"github.com/sabordecasa/storefront/internal/service/models/product"
	"github.com/sabordecasa/storefront/internal/service/services/storesvc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	loginOK    bool
	statusErr  error
	productErr error

	lastStatus orderstatus.Status
	lastDraft  product.Draft
}

func (m *mockService) Login(string) bool { return m.loginOK }
func (m *mockService) Logout()           {}

func (m *mockService) CreateProduct(_ context.Context, draft product.Draft) (product.Product, error) {
	if m.productErr != nil {
		return product.Product{}, m.productErr
	}
	m.lastDraft = draft

	return product.Product{ID: "new-id", Name: draft.Name}, nil
}

func (m *mockService) EditProduct(_ context.Context, id string, draft product.Draft) (product.Product, error) {
	if m.productErr != nil {
		return product.Product{}, m.productErr
	}
	m.lastDraft = draft

	return product.Product{ID: id, Name: draft.Name}, nil
}

func (m *mockService) SetOrderStatus(_ context.Context, _ string, status orderstatus.Status) error {
	if m.statusErr != nil {
		return m.statusErr
	}
	m.lastStatus = status

	return nil
}

func statusRequestFor(t *testing.T, orderID, body string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/"+orderID+"/status", strings.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", orderID)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestLogin(t *testing.T) {
	t.Run("correct password", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"password": "secret"}`))

		Login(rec, req, &mockService{loginOK: true})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"isAdmin": true}`, rec.Body.String())
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"password": "nope"}`))

		Login(rec, req, &mockService{loginOK: false})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Run("assignable status goes through", func(t *testing.T) {
		svc := &mockService{}
		rec := httptest.NewRecorder()

		UpdateOrderStatus(rec, statusRequestFor(t, "ord-1", `{"status": "preparing"}`), svc)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, orderstatus.StatusPreparing, svc.lastStatus)
	})

	t.Run("cancelled is not assignable from the panel", func(t *testing.T) {
		rec := httptest.NewRecorder()

		UpdateOrderStatus(rec, statusRequestFor(t, "ord-1", `{"status": "cancelled"}`), &mockService{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		rec := httptest.NewRecorder()

		UpdateOrderStatus(rec, statusRequestFor(t, "ord-1", `{"status": "delivered"}`), &mockService{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("remote-gated failure maps to bad gateway", func(t *testing.T) {
		svc := &mockService{statusErr: storesvc.ErrAdminWrite}
		rec := httptest.NewRecorder()

		UpdateOrderStatus(rec, statusRequestFor(t, "ord-1", `{"status": "shipped"}`), svc)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("missing capability maps to forbidden", func(t *testing.T) {
		svc := &mockService{statusErr: storesvc.ErrNotAdmin}
		rec := httptest.NewRecorder()

		UpdateOrderStatus(rec, statusRequestFor(t, "ord-1", `{"status": "shipped"}`), svc)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestCreateProductValidation(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/products",
			strings.NewReader(`{"category": "burgers", "price": "10.00"}`))

		CreateProduct(rec, req, &mockService{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("negative stock", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/products",
			strings.NewReader(`{"name": "X", "category": "burgers", "stock": -1}`))

		CreateProduct(rec, req, &mockService{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown category", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/products",
			strings.NewReader(`{"name": "X", "category": "sushi"}`))

		CreateProduct(rec, req, &mockService{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDownscaleDataURL(t *testing.T) {
	t.Run("oversized data url is re-encoded as jpeg", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1200, 900))))
		in := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

		out := downscaleDataURL(in)

		assert.True(t, strings.HasPrefix(out, "data:image/jpeg;base64,"))
		assert.NotEqual(t, in, out)
	})

	t.Run("plain paths pass through", func(t *testing.T) {
		assert.Equal(t, "/img/burger.png", downscaleDataURL("/img/burger.png"))
		assert.Equal(t, "", downscaleDataURL(""))
	})

	t.Run("malformed base64 passes through", func(t *testing.T) {
		in := "data:image/png;base64,@@not-base64@@"

		assert.Equal(t, in, downscaleDataURL(in))
	})
}

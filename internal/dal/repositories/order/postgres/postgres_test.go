package postgresrepo

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sabordecasa/storefront/internal/service/models/cartitem"
	"github.com/sabordecasa/storefront/internal/service/models/category"
	"github.com/sabordecasa/storefront/internal/service/models/customer"
	"github.com/sabordecasa/storefront/internal/service/models/order"
	"github.com/sabordecasa/storefront/internal/service/models/orderstatus"
	"github.com/sabordecasa/storefront/internal/service/models/paymentmethod"
	"github.com/sabordecasa/storefront/internal/service/models/product"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []cartitem.CartItem {
	t.Helper()

	return []cartitem.CartItem{
		{
			Product: product.Product{
				ID:       "1",
				Name:     "Double Smash Combo",
				Category: category.CategoryCombos,
				Price:    decimal.RequireFromString("51.90"),
				Stock:    20,
			},
			Quantity: 2,
		},
		{
			Product: product.Product{
				ID:       "3",
				Name:     "Bacon Lover Combo",
				Category: category.CategoryCombos,
				Price:    decimal.RequireFromString("46.90"),
				Stock:    15,
			},
			Quantity: 1,
		},
	}
}

func TestOrderDalToModel(t *testing.T) {
	t.Run("reconstructs fields the store does not persist", func(t *testing.T) {
		items, err := json.Marshal(testItems(t))
		require.NoError(t, err)

		dal := OrderDal{
			Id:              "ord-1",
			CreatedAt:       time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC),
			CustomerName:    "Ana Souza",
			CustomerPhone:   "+55 11 91234-5678",
			CustomerAddress: "Rua das Flores, 123",
			Items:           items,
			Total:           decimal.RequireFromString("155.70"),
			Status:          "pending",
			PaymentMethod:   "pix",
		}

		model, err := dal.ToModel()
		require.NoError(t, err)

		assert.Equal(t, "ord-1", model.ID)
		assert.Equal(t, customer.DeliveryTypeDelivery, model.Customer.DeliveryType, "address implies delivery")
		assert.True(t, model.Subtotal.Equal(decimal.RequireFromString("150.70")), "subtotal rebuilt from items")
		assert.True(t, model.DeliveryFee.Equal(decimal.RequireFromString("5.00")), "fee is total minus subtotal")
		assert.Equal(t, orderstatus.StatusPending, model.Status)
		assert.Equal(t, paymentmethod.MethodPix, model.PaymentMethod)
		assert.Contains(t, model.MapLink, "Rua+das+Flores")
		require.Len(t, model.Items, 2)
		assert.Equal(t, 2, model.Items[0].Quantity)
	})

	t.Run("no address means pickup with no map link", func(t *testing.T) {
		dal := OrderDal{
			Id:            "ord-2",
			Total:         decimal.Zero,
			Status:        "preparing",
			PaymentMethod: "cash",
		}

		model, err := dal.ToModel()
		require.NoError(t, err)

		assert.Equal(t, customer.DeliveryTypePickup, model.Customer.DeliveryType)
		assert.Empty(t, model.MapLink)
		assert.Empty(t, model.Items)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		dal := OrderDal{Id: "ord-3", Status: "delivered", PaymentMethod: "pix"}

		_, err := dal.ToModel()
		assert.ErrorIs(t, err, orderstatus.ErrInvalidStatus)
	})
}

func TestOrderDalRoundTrip(t *testing.T) {
	original := order.Order{
		ID:        "ord-4",
		CreatedAt: time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC),
		Customer: customer.Customer{
			Name:         "Ana Souza",
			Phone:        "+55 11 91234-5678",
			Address:      "Rua das Flores, 123",
			DeliveryType: customer.DeliveryTypeDelivery,
		},
		Items:         testItems(t),
		Subtotal:      decimal.RequireFromString("150.70"),
		DeliveryFee:   decimal.RequireFromString("5.00"),
		Total:         decimal.RequireFromString("155.70"),
		Status:        orderstatus.StatusPending,
		PaymentMethod: paymentmethod.MethodPix,
		MapLink:       order.MapLinkFor("Rua das Flores, 123"),
	}

	dal, err := OrderDalFromModel(&original)
	require.NoError(t, err)

	assert.Equal(t, "Ana Souza", dal.CustomerName)
	assert.Equal(t, "pending", dal.Status)
	assert.Equal(t, "pix", dal.PaymentMethod)

	back, err := dal.ToModel()
	require.NoError(t, err)

	assert.Equal(t, original.ID, back.ID)
	assert.Equal(t, original.Customer, back.Customer)
	assert.True(t, original.Subtotal.Equal(back.Subtotal))
	assert.True(t, original.DeliveryFee.Equal(back.DeliveryFee))
	assert.True(t, original.Total.Equal(back.Total))
	assert.Equal(t, original.MapLink, back.MapLink)
	require.Len(t, back.Items, len(original.Items))
	for i := range original.Items {
		assert.Equal(t, original.Items[i].ID, back.Items[i].ID)
		assert.Equal(t, original.Items[i].Quantity, back.Items[i].Quantity)
		assert.True(t, original.Items[i].Price.Equal(back.Items[i].Price))
	}
}

package storesvc

import (
	"context"
	"testing"

	"github.com/sabordecasa/storefront/internal/service/models/customer"
	"github.com/sabordecasa/storefront/internal/service/models/order"
	"github.com/sabordecasa/storefront/internal/service/models/paymentmethod"
	"github.com/sabordecasa/storefront/internal/service/models/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigate(t *testing.T) {
	t.Run("walks the happy path", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		assert.Equal(t, view.ViewCatalog, svc.View())
		assert.Equal(t, view.ViewCart, svc.Navigate(view.ViewCart))
		assert.Equal(t, view.ViewCheckout, svc.Navigate(view.ViewCheckout))
		assert.Equal(t, view.ViewCart, svc.Navigate(view.ViewCart))
		assert.Equal(t, view.ViewCatalog, svc.Navigate(view.ViewCatalog))
		assert.Equal(t, view.ViewAbout, svc.Navigate(view.ViewAbout))
		assert.Equal(t, view.ViewCatalog, svc.Navigate(view.ViewCatalog))
	})

	t.Run("ignores disallowed jumps", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		assert.Equal(t, view.ViewCatalog, svc.Navigate(view.ViewCheckout), "catalog cannot skip to checkout")
		assert.Equal(t, view.ViewCatalog, svc.Navigate(view.ViewSuccess))

		svc.Navigate(view.ViewAbout)
		assert.Equal(t, view.ViewAbout, svc.Navigate(view.ViewCart), "about only goes back to catalog")
	})

	t.Run("admin view is gated on the capability flag", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		assert.Equal(t, view.ViewCatalog, svc.Navigate(view.ViewAdmin), "silent no-op without the flag")

		require.True(t, svc.Login("secret"))
		assert.Equal(t, view.ViewAdmin, svc.Navigate(view.ViewAdmin))

		svc.Logout()
		assert.Equal(t, view.ViewCatalog, svc.View(), "logout leaves the admin view")
	})

	t.Run("checkout lands on the success view", func(t *testing.T) {
		svc, _, _, _ := setup(t)
		require.NoError(t, svc.AddToCart("1"))
		svc.Navigate(view.ViewCart)
		svc.Navigate(view.ViewCheckout)

		_, err := svc.CreateOrder(context.Background(), order.Draft{
			Customer:      customer.Customer{Name: "Ana", Phone: "1", DeliveryType: customer.DeliveryTypePickup},
			PaymentMethod: paymentmethod.MethodCash,
		})
		require.NoError(t, err)

		assert.Equal(t, view.ViewSuccess, svc.View())
		assert.Equal(t, view.ViewCatalog, svc.Navigate(view.ViewCatalog))
	})
}

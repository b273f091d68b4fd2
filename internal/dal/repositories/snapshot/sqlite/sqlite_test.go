package sqliterepo

import (
	"context"
	"testing"

	"github.com/sabordecasa/storefront/internal/dal/sqlite"
	"github.com/sabordecasa/storefront/internal/service/models/category"
	"github.com/sabordecasa/storefront/internal/service/models/product"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *sqlite.Client {
	t.Helper()

	viper.Set("sqlite.path", ":memory:")
	t.Cleanup(func() { viper.Set("sqlite.path", "") })

	client := sqlite.MustNewClient()
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestSnapshotRepository(t *testing.T) {
	repo := NewSnapshotRepository(newTestClient(t))
	ctx := context.Background()

	t.Run("load before any save returns nothing", func(t *testing.T) {
		products, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, products)
	})

	t.Run("save and load round trip", func(t *testing.T) {
		catalog := []product.Product{
			{ID: "1", Name: "Double Smash Combo", Category: category.CategoryCombos, Price: decimal.RequireFromString("51.90"), Stock: 20},
			{ID: "2", Name: "Guaraná 2L", Category: category.CategoryDrinks, Price: decimal.RequireFromString("12.00"), Stock: 50},
		}
		require.NoError(t, repo.Save(ctx, catalog))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, loaded, 2)
		assert.Equal(t, "Double Smash Combo", loaded[0].Name)
		assert.True(t, loaded[0].Price.Equal(catalog[0].Price))
	})

	t.Run("save replaces the previous snapshot", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, []product.Product{
			{ID: "9", Name: "Pudim", Category: category.CategoryDesserts, Price: decimal.RequireFromString("14.00"), Stock: 6},
		}))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "9", loaded[0].ID)
	})
}

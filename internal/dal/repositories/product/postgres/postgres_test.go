package postgresrepo

import (
	"testing"

	"github.com/sabordecasa/storefront/internal/service/models/category"
	"github.com/sabordecasa/storefront/internal/service/models/product"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductDalMapping(t *testing.T) {
	t.Run("row to model", func(t *testing.T) {
		dal := ProductDal{
			Id:        "a1b2",
			Nome:      "X-Salada Duplo",
			Categoria: "burgers",
			Preco:     decimal.RequireFromString("34.90"),
			Custo:     decimal.RequireFromString("12.50"),
			Descricao: "Dois hambúrgueres, queijo e salada",
			Estoque:   18,
			Imagem:    "data:image/jpeg;base64,xyz",
		}

		model, err := dal.ToModel()
		require.NoError(t, err)

		assert.Equal(t, "a1b2", model.ID)
		assert.Equal(t, "X-Salada Duplo", model.Name)
		assert.Equal(t, category.CategoryBurgers, model.Category)
		assert.True(t, model.Price.Equal(dal.Preco))
		assert.True(t, model.Cost.Equal(dal.Custo))
		assert.Equal(t, dal.Descricao, model.Description)
		assert.Equal(t, 18, model.Stock)
		assert.Equal(t, dal.Imagem, model.Image)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		dal := ProductDal{Id: "a1b2", Categoria: "sandwiches"}

		_, err := dal.ToModel()
		assert.ErrorIs(t, err, category.ErrInvalidCategory)
	})

	t.Run("round trip preserves every column", func(t *testing.T) {
		original := ProductDal{
			Id:        "a1b2",
			Nome:      "Combo Família",
			Categoria: "combos",
			Preco:     decimal.RequireFromString("99.90"),
			Custo:     decimal.RequireFromString("41.00"),
			Descricao: "Quatro lanches e duas porções",
			Estoque:   0,
			Imagem:    "",
		}

		model, err := original.ToModel()
		require.NoError(t, err)

		assert.Equal(t, &original, ProductDalFromModel(model))
	})
}

func TestProductDalFromModel(t *testing.T) {
	model := product.Product{
		ID:       "p-9",
		Name:     "Suco de Laranja",
		Category: category.CategoryDrinks,
		Price:    decimal.RequireFromString("9.90"),
		Stock:    40,
	}

	dal := ProductDalFromModel(&model)

	assert.Equal(t, "p-9", dal.Id)
	assert.Equal(t, "Suco de Laranja", dal.Nome)
	assert.Equal(t, "drinks", dal.Categoria)
	assert.True(t, dal.Preco.Equal(model.Price))
	assert.Equal(t, 40, dal.Estoque)
}

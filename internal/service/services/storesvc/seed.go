package storesvc

import (
	"github.com/sabordecasa/storefront/internal/service/models/category"
	"github.com/sabordecasa/storefront/internal/service/models/product"
	"github.com/shopspring/decimal"
)

// seedCatalog is the default catalog used until the remote store answers
// with at least one product, and as the last resort when neither the store
// nor a local snapshot is available.
func seedCatalog() []product.Product {
	price := func(s string) decimal.Decimal {
		return decimal.RequireFromString(s)
	}

	return []product.Product{
		{
			ID:          "1",
			Name:        "Double Smash Combo",
			Category:    category.CategoryCombos,
			Price:       price("51.90"),
			Cost:        price("23.50"),
			Description: "Two smashed patties, cheddar, house sauce, fries and a soda.",
			Stock:       20,
			Image:       "products/double-smash-combo.jpg",
		},
		{
			ID:          "2",
			Name:        "Classic Cheeseburger",
			Category:    category.CategoryBurgers,
			Price:       price("32.90"),
			Cost:        price("14.00"),
			Description: "Beef patty, cheese, lettuce, tomato and pickles on a brioche bun.",
			Stock:       25,
			Image:       "products/classic-cheeseburger.jpg",
		},
		{
			ID:          "3",
			Name:        "Bacon Lover Combo",
			Category:    category.CategoryCombos,
			Price:       price("46.90"),
			Cost:        price("21.00"),
			Description: "Bacon cheeseburger with crispy onions, fries and a soda.",
			Stock:       15,
			Image:       "products/bacon-lover-combo.jpg",
		},
		{
			ID:          "4",
			Name:        "Crispy Chicken Burger",
			Category:    category.CategoryBurgers,
			Price:       price("29.90"),
			Cost:        price("12.50"),
			Description: "Breaded chicken thigh, coleslaw and spicy mayo.",
			Stock:       18,
			Image:       "products/crispy-chicken.jpg",
		},
		{
			ID:          "5",
			Name:        "Guarana 350ml",
			Category:    category.CategoryDrinks,
			Price:       price("6.50"),
			Cost:        price("2.80"),
			Description: "Ice cold can.",
			Stock:       60,
			Image:       "products/guarana.jpg",
		},
		{
			ID:          "6",
			Name:        "Orange Juice 500ml",
			Category:    category.CategoryDrinks,
			Price:       price("9.90"),
			Cost:        price("4.00"),
			Description: "Squeezed to order.",
			Stock:       30,
			Image:       "products/orange-juice.jpg",
		},
		{
			ID:          "7",
			Name:        "Chocolate Brownie",
			Category:    category.CategoryDesserts,
			Price:       price("12.90"),
			Cost:        price("5.00"),
			Description: "Warm brownie with a scoop of vanilla ice cream.",
			Stock:       12,
			Image:       "products/brownie.jpg",
		},
		{
			ID:          "8",
			Name:        "Passion Fruit Mousse",
			Category:    category.CategoryDesserts,
			Price:       price("10.90"),
			Cost:        price("4.20"),
			Description: "House made, topped with fresh pulp.",
			Stock:       10,
			Image:       "products/passion-fruit-mousse.jpg",
		},
	}
}

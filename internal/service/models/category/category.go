package category

import (
	"database/sql/driver"
	"errors"
)

// Category is a closed set of catalog sections.
type Category string

const (
	CategoryBurgers  Category = "burgers"
	CategoryCombos   Category = "combos"
	CategoryDrinks   Category = "drinks"
	CategoryDesserts Category = "desserts"
	// CategoryTips renders editorial articles instead of products.
	CategoryTips Category = "tips"
)

var ErrInvalidCategory = errors.New("invalid category")

func (c Category) String() string {
	return string(c)
}

func (c Category) Value() (driver.Value, error) {
	return c.String(), nil
}

func ParseCategory(s string) (Category, error) {
	switch s {
	case CategoryBurgers.String():
		return CategoryBurgers, nil
	case CategoryCombos.String():
		return CategoryCombos, nil
	case CategoryDrinks.String():
		return CategoryDrinks, nil
	case CategoryDesserts.String():
		return CategoryDesserts, nil
	case CategoryTips.String():
		return CategoryTips, nil
	default:
		return "", ErrInvalidCategory
	}
}

// All lists every category in display order.
func All() []Category {
	return []Category{
		CategoryBurgers,
		CategoryCombos,
		CategoryDrinks,
		CategoryDesserts,
		CategoryTips,
	}
}

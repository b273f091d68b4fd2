package view

import "errors"

// View identifies the screen the storefront is currently presenting.
type View string

const (
	ViewCatalog  View = "catalog"
	ViewCart     View = "cart"
	ViewCheckout View = "checkout"
	ViewAdmin    View = "admin"
	ViewSuccess  View = "success"
	ViewAbout    View = "about"
)

var ErrInvalidView = errors.New("invalid view")

func (v View) String() string {
	return string(v)
}

func ParseView(s string) (View, error) {
	switch s {
	case ViewCatalog.String():
		return ViewCatalog, nil
	case ViewCart.String():
		return ViewCart, nil
	case ViewCheckout.String():
		return ViewCheckout, nil
	case ViewAdmin.String():
		return ViewAdmin, nil
	case ViewSuccess.String():
		return ViewSuccess, nil
	case ViewAbout.String():
		return ViewAbout, nil
	default:
		return "", ErrInvalidView
	}
}

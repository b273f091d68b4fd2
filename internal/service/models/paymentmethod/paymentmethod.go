package paymentmethod

import (
	"database/sql/driver"
	"errors"
)

// Method is the way the customer pays for an order. The store only displays
// payment instructions; nothing here validates an actual payment.
type Method string

const (
	MethodPix  Method = "pix"
	MethodCash Method = "cash"
	MethodCard Method = "card"
)

var ErrInvalidMethod = errors.New("invalid payment method")

func (m Method) String() string {
	return string(m)
}

func (m Method) Value() (driver.Value, error) {
	return m.String(), nil
}

func ParseMethod(s string) (Method, error) {
	switch s {
	case MethodPix.String():
		return MethodPix, nil
	case MethodCash.String():
		return MethodCash, nil
	case MethodCard.String():
		return MethodCard, nil
	default:
		return "", ErrInvalidMethod
	}
}

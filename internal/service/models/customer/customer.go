package customer

import (
	"database/sql/driver"
	"errors"
)

// DeliveryType distinguishes delivery orders from pickup orders.
type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

var ErrInvalidDeliveryType = errors.New("invalid delivery type")

func (d DeliveryType) String() string {
	return string(d)
}

func (d DeliveryType) Value() (driver.Value, error) {
	return d.String(), nil
}

func ParseDeliveryType(s string) (DeliveryType, error) {
	switch s {
	case DeliveryTypeDelivery.String():
		return DeliveryTypeDelivery, nil
	case DeliveryTypePickup.String():
		return DeliveryTypePickup, nil
	default:
		return "", ErrInvalidDeliveryType
	}
}

// Customer is the point-in-time customer snapshot embedded in an order.
// Address is required only for delivery orders.
type Customer struct {
	Name         string       `json:"name"`
	Phone        string       `json:"phone"`
	Address      string       `json:"address"`
	DeliveryType DeliveryType `json:"deliveryType"`
}

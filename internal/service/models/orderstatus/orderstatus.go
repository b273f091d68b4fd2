package orderstatus

import (
	"database/sql/driver"
	"errors"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending         Status = "pending"
	StatusAwaitingPayment Status = "awaiting-payment"
	StatusPreparing       Status = "preparing"
	StatusShipped         Status = "shipped"
	StatusCancelled       Status = "cancelled"
)

var ErrInvalidStatus = errors.New("invalid order status")

func (s Status) String() string {
	return string(s)
}

func (s Status) Value() (driver.Value, error) {
	return s.String(), nil
}

func ParseStatus(s string) (Status, error) {
	switch s {
	case StatusPending.String():
		return StatusPending, nil
	case StatusAwaitingPayment.String():
		return StatusAwaitingPayment, nil
	case StatusPreparing.String():
		return StatusPreparing, nil
	case StatusShipped.String():
		return StatusShipped, nil
	case StatusCancelled.String():
		return StatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}

// AdminAssignable lists the statuses exposed in the admin status control.
// Awaiting-payment and cancelled are reachable only through other flows.
func AdminAssignable() []Status {
	return []Status{StatusPending, StatusPreparing, StatusShipped}
}

// IsAdminAssignable reports whether the admin control may set s.
func IsAdminAssignable(s Status) bool {
	for _, allowed := range AdminAssignable() {
		if s == allowed {
			return true
		}
	}

	return false
}

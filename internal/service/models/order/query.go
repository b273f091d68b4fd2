package order

import "github.com/sabordecasa/storefront/internal/service/models/orderstatus"

// QueryOrdersModel represents filter parameters for querying orders.
type QueryOrdersModel struct {
	Ids      []string             `json:"ids,omitempty"`
	Statuses []orderstatus.Status `json:"statuses,omitempty"`
	Limit    int                  `json:"limit,omitempty"`
	Offset   int                  `json:"offset,omitempty"`
}

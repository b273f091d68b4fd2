package postgresrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sabordecasa/storefront/internal/service/models/cartitem"
	"github.com/sabordecasa/storefront/internal/service/models/customer"
	"github.com/sabordecasa/storefront/internal/service/models/order"
	"github.com/sabordecasa/storefront/internal/service/models/orderstatus"
	"github.com/sabordecasa/storefront/internal/service/models/paymentmethod"
	"github.com/shopspring/decimal"
)

// OrderDal represents the order row as stored remotely. The column set is
// fixed by the pre-existing store: customer data is flattened, line items
// are kept as a serialized JSON list, and only the grand total is persisted.
type OrderDal struct {
	Id              string          `db:"id"`
	CreatedAt       time.Time       `db:"created_at"`
	CustomerName    string          `db:"customer_name"`
	CustomerPhone   string          `db:"customer_phone"`
	CustomerAddress string          `db:"customer_address"`
	Items           []byte          `db:"items"`
	Total           decimal.Decimal `db:"total"`
	Status          string          `db:"status"`
	PaymentMethod   string          `db:"payment_method"`
}

// ToModel converts OrderDal to the service layer Order model. Fields the
// store does not persist are reconstructed: the subtotal from the line
// items, the delivery fee as total minus subtotal, the delivery type from
// the presence of an address, and the map link from the address.
func (o *OrderDal) ToModel() (*order.Order, error) {
	status, err := orderstatus.ParseStatus(o.Status)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", o.Id, err)
	}

	method, err := paymentmethod.ParseMethod(o.PaymentMethod)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", o.Id, err)
	}

	var items []cartitem.CartItem
	if len(o.Items) > 0 {
		if err := json.Unmarshal(o.Items, &items); err != nil {
			return nil, fmt.Errorf("order %s: failed to decode items: %w", o.Id, err)
		}
	}

	deliveryType := customer.DeliveryTypePickup
	if o.CustomerAddress != "" {
		deliveryType = customer.DeliveryTypeDelivery
	}

	subtotal := cartitem.Subtotal(items)

	return &order.Order{
		ID:        o.Id,
		CreatedAt: o.CreatedAt,
		Customer: customer.Customer{
			Name:         o.CustomerName,
			Phone:        o.CustomerPhone,
			Address:      o.CustomerAddress,
			DeliveryType: deliveryType,
		},
		Items:         items,
		Subtotal:      subtotal,
		DeliveryFee:   o.Total.Sub(subtotal),
		Total:         o.Total,
		Status:        status,
		PaymentMethod: method,
		MapLink:       order.MapLinkFor(o.CustomerAddress),
	}, nil
}

// OrderDalFromModel converts the service layer Order model to OrderDal.
func OrderDalFromModel(o *order.Order) (*OrderDal, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, fmt.Errorf("order %s: failed to encode items: %w", o.ID, err)
	}

	return &OrderDal{
		Id:              o.ID,
		CreatedAt:       o.CreatedAt,
		CustomerName:    o.Customer.Name,
		CustomerPhone:   o.Customer.Phone,
		CustomerAddress: o.Customer.Address,
		Items:           items,
		Total:           o.Total,
		Status:          o.Status.String(),
		PaymentMethod:   o.PaymentMethod.String(),
	}, nil
}

type PostgresOrderRepository struct {
	conn sqlx.ExtContext
}

func NewPostgresOrderRepository(conn sqlx.ExtContext) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		conn: conn,
	}
}

// Insert stores a single order.
func (r *PostgresOrderRepository) Insert(ctx context.Context, ord order.Order) error {
	dal, err := OrderDalFromModel(&ord)
	if err != nil {
		return err
	}

	sql := `
		INSERT INTO orders (
			id,
			created_at,
			customer_name,
			customer_phone,
			customer_address,
			items,
			total,
			status,
			payment_method
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.conn.ExecContext(ctx, sql,
		dal.Id,
		dal.CreatedAt,
		dal.CustomerName,
		dal.CustomerPhone,
		dal.CustomerAddress,
		dal.Items,
		dal.Total,
		dal.Status,
		dal.PaymentMethod,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

// FetchAll retrieves orders based on filter criteria, newest first.
func (r *PostgresOrderRepository) FetchAll(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error) {
	sqlBuilder := strings.Builder{}
	sqlBuilder.WriteString(`
		SELECT
			id,
			created_at,
			customer_name,
			customer_phone,
			customer_address,
			items,
			total,
			status,
			payment_method
		FROM orders
	`)

	args := []interface{}{}
	conditions := []string{}
	argIndex := 1

	if filter == nil {
		filter = &order.QueryOrdersModel{}
	}

	if len(filter.Ids) > 0 {
		conditions = append(conditions, fmt.Sprintf("id = ANY($%d)", argIndex))
		args = append(args, pq.Array(filter.Ids))
		argIndex++
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, s.String())
		}
		conditions = append(conditions, fmt.Sprintf("status = ANY($%d)", argIndex))
		args = append(args, pq.Array(statuses))
		argIndex++
	}

	if len(conditions) > 0 {
		sqlBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}

	sqlBuilder.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		sqlBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argIndex))
		args = append(args, filter.Limit)
		argIndex++
	}

	if filter.Offset > 0 {
		sqlBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", argIndex))
		args = append(args, filter.Offset)
	}

	rows, err := r.conn.QueryxContext(ctx, sqlBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var result []order.Order
	for rows.Next() {
		var dal OrderDal
		if err := rows.StructScan(&dal); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}

		model, err := dal.ToModel()
		if err != nil {
			return nil, fmt.Errorf("failed to convert order dal to model: %w", err)
		}
		result = append(result, *model)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// UpdateStatus sets the status of an existing order. Status is the only
// order field ever mutated after creation.
func (r *PostgresOrderRepository) UpdateStatus(ctx context.Context, id string, status orderstatus.Status) error {
	_, err := r.conn.ExecContext(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`,
		status.String(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update status for order %s: %w", id, err)
	}

	return nil
}

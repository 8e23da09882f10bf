package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	domorder "example.com/provisions-store/internal/domain/order"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *domorder.Order) (*domorder.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	_, err = tx.ExecContext(ctx, `
        INSERT INTO orders (id, customer_name, customer_phone, total_amount, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, o.ID, o.CustomerName, o.CustomerPhone, o.TotalAmount, o.Status, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return nil, err
	}

	for _, item := range o.Items {
		_, err = tx.ExecContext(ctx, `
            INSERT INTO order_items (order_id, product_id, name, unit, price, quantity)
            VALUES ($1, $2, $3, $4, $5, $6)
        `, o.ID, item.ProductID, item.Name, item.Unit, item.Price, item.Quantity)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domorder.Order, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, customer_name, customer_phone, total_amount, status, created_at, updated_at
        FROM orders WHERE id = $1
    `, id)

	var o domorder.Order
	err := row.Scan(&o.ID, &o.CustomerName, &o.CustomerPhone, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domorder.ErrOrderNotFound
		}
		return nil, err
	}

	items, err := r.itemsFor(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return &o, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]*domorder.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, customer_name, customer_phone, total_amount, status, created_at, updated_at
        FROM orders ORDER BY created_at DESC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*domorder.Order
	var ids []string
	for rows.Next() {
		var o domorder.Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.CustomerPhone, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		o.Items = items[o.ID]
	}
	return orders, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status domorder.Status) error {
	res, err := r.db.ExecContext(ctx, `
        UPDATE orders SET status = $1, updated_at = now() WHERE id = $2
    `, status, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domorder.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) itemsFor(ctx context.Context, orderIDs []string) (map[string][]domorder.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, order_id, product_id, name, unit, price, quantity
        FROM order_items WHERE order_id = ANY($1) ORDER BY id
    `, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string][]domorder.Item)
	for rows.Next() {
		var item domorder.Item
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Name, &item.Unit, &item.Price, &item.Quantity); err != nil {
			return nil, err
		}
		items[item.OrderID] = append(items[item.OrderID], item)
	}
	return items, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	domcustomer "example.com/provisions-store/internal/domain/customer"
)

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) List(ctx context.Context) ([]*domcustomer.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, email, phone, total_orders, total_spent, last_order_date
        FROM customers ORDER BY name
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*domcustomer.Customer
	for rows.Next() {
		var c domcustomer.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.TotalOrders, &c.TotalSpent, &c.LastOrderDate); err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domcustomer.Customer, error) {
	return r.getOne(ctx, `
        SELECT id, name, email, phone, total_orders, total_spent, last_order_date
        FROM customers WHERE id = $1
    `, id)
}

func (r *CustomerRepository) GetByPhone(ctx context.Context, phone string) (*domcustomer.Customer, error) {
	return r.getOne(ctx, `
        SELECT id, name, email, phone, total_orders, total_spent, last_order_date
        FROM customers WHERE phone = $1
    `, phone)
}

// RecordOrder upserts the customer keyed by phone number and folds the new
// order into the running totals.
func (r *CustomerRepository) RecordOrder(ctx context.Context, name, phone string, amount decimal.Decimal, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO customers (name, phone, total_orders, total_spent, last_order_date)
        VALUES ($1, $2, 1, $3, $4)
        ON CONFLICT (phone) DO UPDATE SET
            name = EXCLUDED.name,
            total_orders = customers.total_orders + 1,
            total_spent = customers.total_spent + EXCLUDED.total_spent,
            last_order_date = EXCLUDED.last_order_date
    `, name, phone, amount, at)
	return err
}

func (r *CustomerRepository) getOne(ctx context.Context, query string, arg any) (*domcustomer.Customer, error) {
	var c domcustomer.Customer
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.TotalOrders, &c.TotalSpent, &c.LastOrderDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domcustomer.ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	domproduct "example.com/provisions-store/internal/domain/product"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	err := r.db.QueryRowContext(ctx, `
        INSERT INTO products (name, price, image, category, description, unit, stock)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `, p.Name, p.Price, p.Image, p.Category, p.Description, p.Unit, p.Stock).Scan(&p.ID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE products
        SET name = $1, price = $2, image = $3, category = $4, description = $5, unit = $6, stock = $7,
            updated_at = now()
        WHERE id = $8
    `, p.Name, p.Price, p.Image, p.Category, p.Description, p.Unit, p.Stock, p.ID)
	if err != nil {
		return nil, err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return nil, domproduct.ErrProductNotFound
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domproduct.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, name, price, image, category, description, unit, stock
        FROM products WHERE id = $1
    `, id)

	var p domproduct.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.Category, &p.Description, &p.Unit, &p.Stock); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domproduct.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error) {
	query := `
        SELECT id, name, price, image, category, description, unit, stock
        FROM products
    `
	clauses, args := filterClauses(filter, 1)
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *ProductRepository) ListPaginated(ctx context.Context, filter domproduct.ListFilter, offset, limit int64) ([]*domproduct.Product, int64, error) {
	countQuery := `SELECT count(*) FROM products`
	clauses, args := filterClauses(filter, 1)
	if len(clauses) > 0 {
		countQuery += " WHERE " + strings.Join(clauses, " AND ")
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
        SELECT id, name, price, image, category, description, unit, stock
        FROM products
    `
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY name OFFSET $%d LIMIT $%d", len(args)+1, len(args)+2)
	args = append(args, offset, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT category FROM products ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func filterClauses(filter domproduct.ListFilter, start int) ([]string, []any) {
	var clauses []string
	var args []any

	if filter.Category != "" {
		clauses = append(clauses, fmt.Sprintf("category = $%d", start+len(args)))
		args = append(args, filter.Category)
	}
	if filter.Search != "" {
		clauses = append(clauses, fmt.Sprintf("name ILIKE $%d", start+len(args)))
		args = append(args, "%"+filter.Search+"%")
	}
	return clauses, args
}

func scanProducts(rows *sql.Rows) ([]*domproduct.Product, error) {
	var products []*domproduct.Product
	for rows.Next() {
		var p domproduct.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.Category, &p.Description, &p.Unit, &p.Stock); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}

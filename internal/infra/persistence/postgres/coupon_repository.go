package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	domcoupon "example.com/provisions-store/internal/domain/coupon"
)

type CouponRepository struct {
	db *sql.DB
}

func NewCouponRepository(db *sql.DB) *CouponRepository {
	return &CouponRepository{db: db}
}

const couponColumns = `id, code, discount_type, discount_value, success_message, usage_limit, usage_count, expiry_date, is_active, created_at`

func (r *CouponRepository) List(ctx context.Context) ([]*domcoupon.Coupon, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+couponColumns+` FROM coupons ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coupons []*domcoupon.Coupon
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, err
		}
		coupons = append(coupons, c)
	}
	return coupons, rows.Err()
}

func (r *CouponRepository) GetByID(ctx context.Context, id string) (*domcoupon.Coupon, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+couponColumns+` FROM coupons WHERE id = $1`, id)
	return scanCoupon(row)
}

func (r *CouponRepository) GetByCode(ctx context.Context, code string) (*domcoupon.Coupon, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+couponColumns+` FROM coupons WHERE code = $1`, domcoupon.NormalizeCode(code))
	return scanCoupon(row)
}

func (r *CouponRepository) Create(ctx context.Context, c *domcoupon.Coupon) (*domcoupon.Coupon, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	err := r.db.QueryRowContext(ctx, `
        INSERT INTO coupons (id, code, discount_type, discount_value, success_message, usage_limit, usage_count, expiry_date, is_active, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `, c.ID, c.Code, c.DiscountType, c.DiscountValue, c.SuccessMessage, c.UsageLimit, c.UsageCount, c.ExpiryDate, c.IsActive, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domcoupon.ErrCodeAlreadyUsed
		}
		return nil, err
	}
	return c, nil
}

func (r *CouponRepository) Update(ctx context.Context, c *domcoupon.Coupon) (*domcoupon.Coupon, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE coupons
        SET code = $1, discount_type = $2, discount_value = $3, success_message = $4,
            usage_limit = $5, expiry_date = $6, is_active = $7
        WHERE id = $8
    `, c.Code, c.DiscountType, c.DiscountValue, c.SuccessMessage, c.UsageLimit, c.ExpiryDate, c.IsActive, c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domcoupon.ErrCodeAlreadyUsed
		}
		return nil, err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return nil, domcoupon.ErrCouponNotFound
	}
	return c, nil
}

func (r *CouponRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domcoupon.ErrCouponNotFound
	}
	return nil
}

// IncrementUsage bumps the counter in a single statement so concurrent
// applications never lose an increment.
func (r *CouponRepository) IncrementUsage(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE coupons SET usage_count = usage_count + 1 WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domcoupon.ErrCouponNotFound
	}
	return nil
}

// DecrementUsage releases a usage slot, never taking the counter below zero.
func (r *CouponRepository) DecrementUsage(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE coupons SET usage_count = GREATEST(usage_count - 1, 0) WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domcoupon.ErrCouponNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCoupon(row rowScanner) (*domcoupon.Coupon, error) {
	var c domcoupon.Coupon
	err := row.Scan(&c.ID, &c.Code, &c.DiscountType, &c.DiscountValue, &c.SuccessMessage,
		&c.UsageLimit, &c.UsageCount, &c.ExpiryDate, &c.IsActive, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domcoupon.ErrCouponNotFound
		}
		return nil, err
	}
	return &c, nil
}

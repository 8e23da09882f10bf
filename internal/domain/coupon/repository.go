package coupon

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Coupon, error)
	GetByID(ctx context.Context, id string) (*Coupon, error)
	GetByCode(ctx context.Context, code string) (*Coupon, error)
	Create(ctx context.Context, c *Coupon) (*Coupon, error)
	Update(ctx context.Context, c *Coupon) (*Coupon, error)
	Delete(ctx context.Context, id string) error

	// IncrementUsage and DecrementUsage mutate the shared usage counter
	// atomically at the database; the counter never goes below zero.
	IncrementUsage(ctx context.Context, id string) error
	DecrementUsage(ctx context.Context, id string) error
}

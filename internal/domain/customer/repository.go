package customer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Repository interface {
	List(ctx context.Context) ([]*Customer, error)
	GetByID(ctx context.Context, id int64) (*Customer, error)
	GetByPhone(ctx context.Context, phone string) (*Customer, error)

	// RecordOrder upserts the customer keyed by phone, bumping the order
	// count and total spend and setting the last order date.
	RecordOrder(ctx context.Context, name, phone string, amount decimal.Decimal, at time.Time) error
}

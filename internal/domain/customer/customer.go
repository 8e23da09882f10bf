package customer

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customers are keyed by phone number; a checkout under a known phone updates
// the existing record instead of creating a new one.
type Customer struct {
	ID            int64
	Name          string
	Email         string
	Phone         string
	TotalOrders   int64
	TotalSpent    decimal.Decimal
	LastOrderDate time.Time
}

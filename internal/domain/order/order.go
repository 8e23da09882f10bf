package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

type Order struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	Items         []Item
	TotalAmount   decimal.Decimal
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Item keeps the price and display fields the product had when the order was
// placed; later catalog edits do not rewrite history.
type Item struct {
	ID        int64
	OrderID   string
	ProductID int64
	Name      string
	Unit      string
	Price     decimal.Decimal
	Quantity  int64
}

type Statistics struct {
	TotalSales      decimal.Decimal
	TotalOrders     int64
	PendingOrders   int64
	DeliveredOrders int64
	CancelledOrders int64
	TopProducts     []ProductSales
}

type ProductSales struct {
	Product string
	Units   int64
}

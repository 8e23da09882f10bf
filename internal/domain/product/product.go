package product

import "github.com/shopspring/decimal"

type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Image       string
	Category    string
	Description string
	Unit        string
	Stock       int64
}

type ListFilter struct {
	Category string
	Search   string
}

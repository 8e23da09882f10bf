package order

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrEmptyOrderItems = errors.New("no items to checkout")
)

package coupon

import "errors"

var (
	ErrCouponNotFound       = errors.New("coupon not found")
	ErrCouponInactive       = errors.New("coupon is no longer active")
	ErrCouponExpired        = errors.New("coupon has expired")
	ErrCouponExhausted      = errors.New("coupon has reached its usage limit")
	ErrCodeAlreadyUsed      = errors.New("coupon code already exists")
	ErrInvalidDiscountType  = errors.New("invalid discount type")
	ErrInvalidDiscountValue = errors.New("discount value must not be negative")
	ErrInvalidUsageLimit    = errors.New("usage limit must be positive")
)

package coupon

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFlat       DiscountType = "flat"
)

func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountPercentage, DiscountFlat:
		return true
	default:
		return false
	}
}

// Coupon codes are stored upper-cased and matched case-insensitively.
type Coupon struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	DiscountType   DiscountType    `json:"discount_type"`
	DiscountValue  decimal.Decimal `json:"discount_value"`
	SuccessMessage string          `json:"success_message"`
	UsageLimit     int64           `json:"usage_limit"`
	UsageCount     int64           `json:"usage_count"`
	ExpiryDate     time.Time       `json:"expiry_date"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (c *Coupon) Expired(now time.Time) bool {
	return c.ExpiryDate.Before(now)
}

func (c *Coupon) Exhausted() bool {
	return c.UsageCount >= c.UsageLimit
}

// DiscountOn computes the reduction this coupon grants on a subtotal.
// The result never exceeds the subtotal.
func (c *Coupon) DiscountOn(subtotal decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal
	switch c.DiscountType {
	case DiscountPercentage:
		discount = subtotal.Mul(c.DiscountValue).Div(decimal.NewFromInt(100))
	default:
		discount = c.DiscountValue
	}
	if discount.GreaterThan(subtotal) {
		return subtotal
	}
	return discount
}

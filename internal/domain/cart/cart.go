package cart

import (
	"github.com/shopspring/decimal"

	domcoupon "example.com/provisions-store/internal/domain/coupon"
	domproduct "example.com/provisions-store/internal/domain/product"
)

// Line is one product in a cart. Name, unit and price are snapshotted at the
// moment the product is added; they are not refreshed from the catalog.
type Line struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
}

func (l Line) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(l.Quantity))
}

// Cart holds at most one line per product and at most one applied coupon.
// Totals are derived on every read, never stored.
type Cart struct {
	Lines         []Line            `json:"lines"`
	AppliedCoupon *domcoupon.Coupon `json:"applied_coupon,omitempty"`
}

func New() *Cart {
	return &Cart{}
}

// Add merges the quantity into an existing line for the same product, or
// appends a new snapshot line. It reports whether an existing line was merged.
func (c *Cart) Add(p *domproduct.Product, quantity int64) bool {
	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ID {
			c.Lines[i].Quantity += quantity
			return true
		}
	}
	c.Lines = append(c.Lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Unit:      p.Unit,
		Price:     p.Price,
		Quantity:  quantity,
	})
	return false
}

// Remove drops the line for productID and returns it. The second return is
// false when the product was not in the cart.
func (c *Cart) Remove(productID int64) (Line, bool) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			line := c.Lines[i]
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return line, true
		}
	}
	return Line{}, false
}

// SetQuantity overwrites the quantity of an existing line. Quantities below 1
// are the caller's concern; they mean removal, not mutation.
func (c *Cart) SetQuantity(productID, quantity int64) bool {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Clear empties the cart and drops any applied coupon. The coupon's usage
// counter is deliberately left untouched; this is a reset, not a removal.
func (c *Cart) Clear() {
	c.Lines = nil
	c.AppliedCoupon = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) TotalItems() int64 {
	var n int64
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Total())
	}
	return total
}

// DiscountAmount is zero without a coupon and never exceeds the subtotal.
func (c *Cart) DiscountAmount() decimal.Decimal {
	if c.AppliedCoupon == nil {
		return decimal.Zero
	}
	return c.AppliedCoupon.DiscountOn(c.Subtotal())
}

// TotalAmount is the subtotal minus the discount, floored at zero.
func (c *Cart) TotalAmount() decimal.Decimal {
	total := c.Subtotal().Sub(c.DiscountAmount())
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

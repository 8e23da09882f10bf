package checkout

import (
	"fmt"
	"net/url"
	"strings"

	domcart "example.com/provisions-store/internal/domain/cart"
)

type CustomerInfo struct {
	Name    string
	Phone   string
	Address string
}

// OrderSummary renders the hand-off message for a cart: greeting, one
// numbered line per cart line, subtotal, the coupon block when one is
// applied, total, and the optional customer block. Money is always two
// decimal places. Pure function; no I/O.
func OrderSummary(c *domcart.Cart, info *CustomerInfo) string {
	var b strings.Builder
	b.WriteString("Hello, I would like to order the following items:\n\n")

	for i, line := range c.Lines {
		fmt.Fprintf(&b, "%d. %s (%s) x %d = ₹%s\n",
			i+1, line.Name, line.Unit, line.Quantity, line.Total().StringFixed(2))
	}

	fmt.Fprintf(&b, "\nSubtotal: ₹%s", c.Subtotal().StringFixed(2))

	if cp := c.AppliedCoupon; cp != nil {
		fmt.Fprintf(&b, "\nCoupon Applied: %s", cp.Code)
		fmt.Fprintf(&b, "\nDiscount: ₹%s", c.DiscountAmount().StringFixed(2))
		fmt.Fprintf(&b, "\n%s", cp.SuccessMessage)
	}

	fmt.Fprintf(&b, "\nTotal Amount: ₹%s", c.TotalAmount().StringFixed(2))

	if info != nil {
		b.WriteString("\n\n--- Customer Information ---\n")
		fmt.Fprintf(&b, "Name: %s\n", info.Name)
		fmt.Fprintf(&b, "Phone: %s\n", info.Phone)
		fmt.Fprintf(&b, "Delivery Address: %s", info.Address)
	}

	return b.String()
}

// WhatsAppLink percent-encodes the summary into a wa.me deep link for the
// given store phone number.
func WhatsAppLink(phone string, c *domcart.Cart, info *CustomerInfo) string {
	v := url.Values{}
	v.Set("text", OrderSummary(c, info))
	return "https://wa.me/" + phone + "?" + v.Encode()
}

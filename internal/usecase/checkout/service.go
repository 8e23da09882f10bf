package checkout

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domcart "example.com/provisions-store/internal/domain/cart"
	domorder "example.com/provisions-store/internal/domain/order"
)

type CartStore interface {
	domcart.Store
}

type OrderRepository interface {
	Create(ctx context.Context, o *domorder.Order) (*domorder.Order, error)
}

type CustomerRepository interface {
	RecordOrder(ctx context.Context, name, phone string, amount decimal.Decimal, at time.Time) error
}

type Service struct {
	carts     CartStore
	orderRepo OrderRepository
	customers CustomerRepository
	waPhone   string
	now       func() time.Time
}

func NewService(
	carts CartStore,
	orderRepo OrderRepository,
	customers CustomerRepository,
	waPhone string,
) *Service {
	return &Service{
		carts:     carts,
		orderRepo: orderRepo,
		customers: customers,
		waPhone:   waPhone,
		now:       time.Now,
	}
}

type Result struct {
	Order        *domorder.Order
	WhatsAppLink string
}

// PlaceOrder turns a non-empty cart into a pending order, updates the
// customer's running stats, clears the cart and returns the WhatsApp
// hand-off link. Clearing the cart drops the applied coupon without
// releasing its usage slot.
func (s *Service) PlaceOrder(ctx context.Context, token string, info CustomerInfo) (*Result, error) {
	c, err := s.carts.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, domorder.ErrEmptyOrderItems
	}

	items := make([]domorder.Item, 0, len(c.Lines))
	for _, line := range c.Lines {
		items = append(items, domorder.Item{
			ProductID: line.ProductID,
			Name:      line.Name,
			Unit:      line.Unit,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}

	total := c.TotalAmount()
	placedAt := s.now()
	o, err := s.orderRepo.Create(ctx, &domorder.Order{
		CustomerName:  info.Name,
		CustomerPhone: info.Phone,
		Items:         items,
		TotalAmount:   total,
		Status:        domorder.StatusPending,
		CreatedAt:     placedAt,
		UpdatedAt:     placedAt,
	})
	if err != nil {
		return nil, err
	}

	if err := s.customers.RecordOrder(ctx, info.Name, info.Phone, total, placedAt); err != nil {
		return nil, err
	}

	link := WhatsAppLink(s.waPhone, c, &info)

	c.Clear()
	if err := s.carts.Save(ctx, token, c); err != nil {
		return nil, err
	}

	return &Result{Order: o, WhatsAppLink: link}, nil
}

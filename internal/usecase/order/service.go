package order

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	dom "example.com/provisions-store/internal/domain/order"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*dom.Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*dom.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status dom.Status) error {
	if !status.IsValid() {
		return dom.ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// Statistics aggregates the dashboard numbers. Cancelled orders are excluded
// from total sales but still counted.
func (s *Service) Statistics(ctx context.Context) (*dom.Statistics, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dom.Statistics{TotalSales: decimal.Zero}
	unitsByProduct := make(map[string]int64)

	for _, o := range orders {
		stats.TotalOrders++
		switch o.Status {
		case dom.StatusPending:
			stats.PendingOrders++
		case dom.StatusDelivered:
			stats.DeliveredOrders++
		case dom.StatusCancelled:
			stats.CancelledOrders++
		}
		if o.Status != dom.StatusCancelled {
			stats.TotalSales = stats.TotalSales.Add(o.TotalAmount)
			for _, item := range o.Items {
				unitsByProduct[item.Name] += item.Quantity
			}
		}
	}

	for name, units := range unitsByProduct {
		stats.TopProducts = append(stats.TopProducts, dom.ProductSales{Product: name, Units: units})
	}
	sort.Slice(stats.TopProducts, func(i, j int) bool {
		if stats.TopProducts[i].Units != stats.TopProducts[j].Units {
			return stats.TopProducts[i].Units > stats.TopProducts[j].Units
		}
		return stats.TopProducts[i].Product < stats.TopProducts[j].Product
	})
	if len(stats.TopProducts) > 5 {
		stats.TopProducts = stats.TopProducts[:5]
	}

	return stats, nil
}

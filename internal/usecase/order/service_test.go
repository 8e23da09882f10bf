package order

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	dom "example.com/provisions-store/internal/domain/order"
)

type mockRepository struct {
	orders map[string]*dom.Order
}

func newMockRepository() *mockRepository {
	return &mockRepository{orders: make(map[string]*dom.Order)}
}

func (m *mockRepository) Create(ctx context.Context, o *dom.Order) (*dom.Order, error) {
	m.orders[o.ID] = o
	return o, nil
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (*dom.Order, error) {
	if o, ok := m.orders[id]; ok {
		return o, nil
	}
	return nil, dom.ErrOrderNotFound
}

func (m *mockRepository) List(ctx context.Context) ([]*dom.Order, error) {
	var out []*dom.Order
	for _, o := range m.orders {
		out = append(out, o)
	}
	return out, nil
}

func (m *mockRepository) UpdateStatus(ctx context.Context, id string, status dom.Status) error {
	o, ok := m.orders[id]
	if !ok {
		return dom.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

func seedOrder(repo *mockRepository, id string, status dom.Status, amount string, items ...dom.Item) {
	repo.orders[id] = &dom.Order{
		ID:          id,
		Status:      status,
		TotalAmount: decimal.RequireFromString(amount),
		Items:       items,
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := newMockRepository()
	seedOrder(repo, "o-1", dom.StatusPending, "100")
	svc := NewService(repo)

	err := svc.UpdateStatus(context.Background(), "o-1", dom.Status("Shipped"))
	require.ErrorIs(t, err, dom.ErrInvalidStatus)

	err = svc.UpdateStatus(context.Background(), "o-1", dom.StatusProcessing)
	require.NoError(t, err)
	require.Equal(t, dom.StatusProcessing, repo.orders["o-1"].Status)
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	svc := NewService(newMockRepository())

	err := svc.UpdateStatus(context.Background(), "missing", dom.StatusDelivered)
	require.ErrorIs(t, err, dom.ErrOrderNotFound)
}

func TestStatistics_ExcludesCancelledSales(t *testing.T) {
	repo := newMockRepository()
	seedOrder(repo, "o-1", dom.StatusDelivered, "250",
		dom.Item{Name: "Rice", Quantity: 2}, dom.Item{Name: "Oil", Quantity: 1})
	seedOrder(repo, "o-2", dom.StatusPending, "100",
		dom.Item{Name: "Rice", Quantity: 3})
	seedOrder(repo, "o-3", dom.StatusCancelled, "999",
		dom.Item{Name: "Ghee", Quantity: 10})
	svc := NewService(repo)

	stats, err := svc.Statistics(context.Background())
	require.NoError(t, err)
	require.Equal(t, "350.00", stats.TotalSales.StringFixed(2))
	require.Equal(t, int64(3), stats.TotalOrders)
	require.Equal(t, int64(1), stats.PendingOrders)
	require.Equal(t, int64(1), stats.DeliveredOrders)
	require.Equal(t, int64(1), stats.CancelledOrders)

	require.Len(t, stats.TopProducts, 2)
	require.Equal(t, "Rice", stats.TopProducts[0].Product)
	require.Equal(t, int64(5), stats.TopProducts[0].Units)
	require.Equal(t, "Oil", stats.TopProducts[1].Product)
}

func TestStatistics_TopProductsCappedAtFive(t *testing.T) {
	repo := newMockRepository()
	items := []dom.Item{
		{Name: "A", Quantity: 7}, {Name: "B", Quantity: 6}, {Name: "C", Quantity: 5},
		{Name: "D", Quantity: 4}, {Name: "E", Quantity: 3}, {Name: "F", Quantity: 2},
	}
	seedOrder(repo, "o-1", dom.StatusDelivered, "100", items...)
	svc := NewService(repo)

	stats, err := svc.Statistics(context.Background())
	require.NoError(t, err)
	require.Len(t, stats.TopProducts, 5)
	require.Equal(t, "A", stats.TopProducts[0].Product)
	require.Equal(t, "E", stats.TopProducts[4].Product)
}

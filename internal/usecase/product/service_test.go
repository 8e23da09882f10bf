package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	dom "example.com/provisions-store/internal/domain/product"
)

type mockRepository struct {
	products  map[int64]*dom.Product
	nextID    int64
	listCalls int
	listErr   error
}

func newMockRepository() *mockRepository {
	return &mockRepository{products: make(map[int64]*dom.Product), nextID: 1}
}

func (m *mockRepository) Create(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	p.ID = m.nextID
	m.nextID++
	cloned := *p
	m.products[p.ID] = &cloned
	return p, nil
}

func (m *mockRepository) Update(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	if _, ok := m.products[p.ID]; !ok {
		return nil, dom.ErrProductNotFound
	}
	cloned := *p
	m.products[p.ID] = &cloned
	return p, nil
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.products[id]; !ok {
		return dom.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *mockRepository) GetByID(ctx context.Context, id int64) (*dom.Product, error) {
	if p, ok := m.products[id]; ok {
		cloned := *p
		return &cloned, nil
	}
	return nil, dom.ErrProductNotFound
}

func (m *mockRepository) List(ctx context.Context, filter dom.ListFilter) ([]*dom.Product, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*dom.Product
	for _, p := range m.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		cloned := *p
		out = append(out, &cloned)
	}
	return out, nil
}

func (m *mockRepository) ListPaginated(ctx context.Context, filter dom.ListFilter, offset, limit int64) ([]*dom.Product, int64, error) {
	all, err := m.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(all))
	if offset >= total {
		return []*dom.Product{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (m *mockRepository) Categories(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, p := range m.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func newCachedService(repo *mockRepository, ttl time.Duration) (*Service, *time.Time) {
	svc := NewService(repo, ttl, zerolog.Nop())
	current := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return current }
	return svc, &current
}

func seedProduct(repo *mockRepository, name, category string) {
	_, _ = repo.Create(context.Background(), &dom.Product{
		Name:     name,
		Price:    decimal.NewFromInt(10),
		Category: category,
		Unit:     "1pc",
	})
}

func TestList_CachesUntilTTLExpires(t *testing.T) {
	repo := newMockRepository()
	seedProduct(repo, "Rice", "Grains")
	svc, clock := newCachedService(repo, 5*time.Minute)

	_, err := svc.List(context.Background())
	require.NoError(t, err)
	_, err = svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, repo.listCalls)

	*clock = clock.Add(5 * time.Minute)
	_, err = svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, repo.listCalls)
}

func TestList_ServesStaleCacheWhenRefreshFails(t *testing.T) {
	repo := newMockRepository()
	seedProduct(repo, "Rice", "Grains")
	svc, clock := newCachedService(repo, 5*time.Minute)

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	*clock = clock.Add(time.Hour)
	repo.listErr = errors.New("connection refused")

	stale, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, stale, 1)
	require.Equal(t, "Rice", stale[0].Name)
}

func TestList_ErrorWithoutCachePropagates(t *testing.T) {
	repo := newMockRepository()
	repo.listErr = errors.New("connection refused")
	svc, _ := newCachedService(repo, 5*time.Minute)

	_, err := svc.List(context.Background())
	require.Error(t, err)
}

func TestMutationsInvalidateCache(t *testing.T) {
	repo := newMockRepository()
	seedProduct(repo, "Rice", "Grains")
	svc, _ := newCachedService(repo, time.Hour)

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &dom.Product{
		Name: "Oil", Price: decimal.NewFromInt(45), Category: "Oils", Unit: "500ml",
	})
	require.NoError(t, err)

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 2)
}

func TestCreate_RejectsNegativePrice(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newCachedService(repo, time.Hour)

	_, err := svc.Create(context.Background(), &dom.Product{
		Name: "Rice", Price: decimal.NewFromInt(-1),
	})
	require.ErrorIs(t, err, dom.ErrInvalidPrice)
}

func TestUpdate_MergesNonZeroFields(t *testing.T) {
	repo := newMockRepository()
	seedProduct(repo, "Rice", "Grains")
	svc, _ := newCachedService(repo, time.Hour)

	updated, err := svc.Update(context.Background(), &dom.Product{
		ID:    1,
		Price: decimal.NewFromInt(125),
		Stock: 40,
	})
	require.NoError(t, err)
	require.Equal(t, "Rice", updated.Name)
	require.Equal(t, "Grains", updated.Category)
	require.Equal(t, "125", updated.Price.String())
	require.Equal(t, int64(40), updated.Stock)
}

func TestListPaginated_Bounds(t *testing.T) {
	repo := newMockRepository()
	for i := 0; i < 5; i++ {
		seedProduct(repo, "P", "Grains")
	}
	svc, _ := newCachedService(repo, time.Hour)

	page, total, err := svc.ListPaginated(context.Background(), 2, 2)
	require.NoError(t, err)
	require.Equal(t, int64(5), total)
	require.Len(t, page, 2)

	page, total, err = svc.ListPaginated(context.Background(), 4, 2)
	require.NoError(t, err)
	require.Equal(t, int64(5), total)
	require.Empty(t, page)
}

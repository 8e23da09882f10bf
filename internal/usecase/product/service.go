package product

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	dom "example.com/provisions-store/internal/domain/product"
)

// listCache memoizes the unfiltered product list. The clock is injected so
// expiry can be driven in tests.
type listCache struct {
	mu        sync.Mutex
	products  []*dom.Product
	fetchedAt time.Time
}

type Service struct {
	repo  dom.Repository
	cache listCache
	ttl   time.Duration
	log   zerolog.Logger
	now   func() time.Time
}

func NewService(repo dom.Repository, ttl time.Duration, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		ttl:  ttl,
		log:  log,
		now:  time.Now,
	}
}

// List serves the cached product list while it is fresh. When a refresh
// fails and an expired cache exists, the stale list is served instead of the
// error.
func (s *Service) List(ctx context.Context) ([]*dom.Product, error) {
	s.cache.mu.Lock()
	defer s.cache.mu.Unlock()

	if s.cache.products != nil && s.now().Sub(s.cache.fetchedAt) < s.ttl {
		return cloneAll(s.cache.products), nil
	}

	products, err := s.repo.List(ctx, dom.ListFilter{})
	if err != nil {
		if s.cache.products != nil {
			s.log.Warn().Err(err).Msg("catalog refresh failed, serving stale products")
			return cloneAll(s.cache.products), nil
		}
		return nil, err
	}

	s.cache.products = products
	s.cache.fetchedAt = s.now()
	return cloneAll(products), nil
}

func (s *Service) ListByCategory(ctx context.Context, category string) ([]*dom.Product, error) {
	return s.repo.List(ctx, dom.ListFilter{Category: category})
}

func (s *Service) Search(ctx context.Context, query string) ([]*dom.Product, error) {
	return s.repo.List(ctx, dom.ListFilter{Search: query})
}

func (s *Service) ListPaginated(ctx context.Context, page, pageSize int64) ([]*dom.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return s.repo.ListPaginated(ctx, dom.ListFilter{}, (page-1)*pageSize, pageSize)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*dom.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *Service) Create(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	if p.Price.IsNegative() {
		return nil, dom.ErrInvalidPrice
	}
	s.invalidate()
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	existed, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	if p.Name != "" {
		existed.Name = p.Name
	}
	if p.Description != "" {
		existed.Description = p.Description
	}
	if !p.Price.IsZero() {
		if p.Price.IsNegative() {
			return nil, dom.ErrInvalidPrice
		}
		existed.Price = p.Price
	}
	if p.Image != "" {
		existed.Image = p.Image
	}
	if p.Category != "" {
		existed.Category = p.Category
	}
	if p.Unit != "" {
		existed.Unit = p.Unit
	}
	if p.Stock >= 0 {
		existed.Stock = p.Stock
	}

	s.invalidate()
	return s.repo.Update(ctx, existed)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	s.invalidate()
	return s.repo.Delete(ctx, id)
}

func (s *Service) invalidate() {
	s.cache.mu.Lock()
	s.cache.products = nil
	s.cache.fetchedAt = time.Time{}
	s.cache.mu.Unlock()
}

func cloneAll(products []*dom.Product) []*dom.Product {
	out := make([]*dom.Product, len(products))
	for i, p := range products {
		cloned := *p
		out[i] = &cloned
	}
	return out
}

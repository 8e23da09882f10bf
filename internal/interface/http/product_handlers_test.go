package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	domproduct "example.com/provisions-store/internal/domain/product"
	productuc "example.com/provisions-store/internal/usecase/product"
)

type memCatalogRepo struct {
	products map[int64]*domproduct.Product
	nextID   int64
}

func newMemCatalogRepo() *memCatalogRepo {
	return &memCatalogRepo{
		products: map[int64]*domproduct.Product{
			1: {ID: 1, Name: "Basmati Rice", Unit: "5kg", Price: decimal.NewFromInt(120), Category: "Grains"},
			2: {ID: 2, Name: "Sunflower Oil", Unit: "500ml", Price: decimal.NewFromInt(45), Category: "Oils"},
			3: {ID: 3, Name: "Brown Rice", Unit: "1kg", Price: decimal.NewFromInt(80), Category: "Grains"},
		},
		nextID: 4,
	}
}

func (m *memCatalogRepo) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	p.ID = m.nextID
	m.nextID++
	m.products[p.ID] = p
	return p, nil
}

func (m *memCatalogRepo) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	if _, ok := m.products[p.ID]; !ok {
		return nil, domproduct.ErrProductNotFound
	}
	m.products[p.ID] = p
	return p, nil
}

func (m *memCatalogRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.products[id]; !ok {
		return domproduct.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *memCatalogRepo) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	if p, ok := m.products[id]; ok {
		cloned := *p
		return &cloned, nil
	}
	return nil, domproduct.ErrProductNotFound
}

func (m *memCatalogRepo) List(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error) {
	var out []*domproduct.Product
	for _, p := range m.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		cloned := *p
		out = append(out, &cloned)
	}
	return out, nil
}

func (m *memCatalogRepo) ListPaginated(ctx context.Context, filter domproduct.ListFilter, offset, limit int64) ([]*domproduct.Product, int64, error) {
	all, _ := m.List(ctx, filter)
	return all, int64(len(all)), nil
}

func (m *memCatalogRepo) Categories(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, p := range m.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func setupProductAPI() *API {
	repo := newMemCatalogRepo()
	return NewAPI(Dependencies{
		ProductService: productuc.NewService(repo, time.Minute, zerolog.Nop()),
		AllowedOrigins: []string{"*"},
	})
}

func TestListProducts_ReturnsAll(t *testing.T) {
	api := setupProductAPI()
	router := api.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var products []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 3)
}

func TestListProducts_ByCategory_Filters(t *testing.T) {
	api := setupProductAPI()
	router := api.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?category=Grains", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var products []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 2)
	for _, p := range products {
		require.Equal(t, "Grains", p["category"])
	}
}

func TestGetProduct_Unknown_Returns404(t *testing.T) {
	api := setupProductAPI()
	router := api.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
}

func TestListCategories_ReturnsDistinct(t *testing.T) {
	api := setupProductAPI()
	router := api.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var categories []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	require.ElementsMatch(t, []string{"Grains", "Oils"}, categories)
}

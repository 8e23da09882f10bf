package http

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	domproduct "example.com/provisions-store/internal/domain/product"
)

type productRequest struct {
	Name        string          `json:"name" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description"`
	Unit        string          `json:"unit" validate:"required"`
	Stock       int64           `json:"stock" validate:"gte=0"`
}

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if pageStr := q.Get("page"); pageStr != "" {
		page, _ := strconv.ParseInt(pageStr, 10, 64)
		pageSize, _ := strconv.ParseInt(q.Get("page_size"), 10, 64)

		products, total, err := a.productSvc.ListPaginated(r.Context(), page, pageSize)
		if err != nil {
			handleDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"products": mapProducts(products),
			"total":    total,
		})
		return
	}

	var (
		products []*domproduct.Product
		err      error
	)
	switch {
	case q.Get("search") != "":
		products, err = a.productSvc.Search(r.Context(), q.Get("search"))
	case q.Get("category") != "":
		products, err = a.productSvc.ListByCategory(r.Context(), q.Get("category"))
	default:
		products, err = a.productSvc.List(r.Context())
	}
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProducts(products))
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	p, err := a.productSvc.GetByID(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}

func (a *API) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.productSvc.Categories(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (a *API) handleListProductsAdmin(w http.ResponseWriter, r *http.Request) {
	products, err := a.productSvc.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProducts(products))
}

func (a *API) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	p, err := a.productSvc.Create(r.Context(), &domproduct.Product{
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Description: req.Description,
		Unit:        req.Unit,
		Stock:       req.Stock,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapProduct(p))
}

func (a *API) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var req productRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	p, err := a.productSvc.Update(r.Context(), &domproduct.Product{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Description: req.Description,
		Unit:        req.Unit,
		Stock:       req.Stock,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.productSvc.Delete(r.Context(), id); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func mapProducts(products []*domproduct.Product) []map[string]any {
	out := make([]map[string]any, 0, len(products))
	for _, p := range products {
		out = append(out, mapProduct(p))
	}
	return out
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	domorder "example.com/provisions-store/internal/domain/order"
)

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (a *API) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := a.orderSvc.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	out := make([]map[string]any, 0, len(orders))
	for _, o := range orders {
		out = append(out, mapOrder(o))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := a.orderSvc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrder(o))
}

func (a *API) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateOrderStatusRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	id := chi.URLParam(r, "id")
	if err := a.orderSvc.UpdateStatus(r.Context(), id, domorder.Status(req.Status)); err != nil {
		handleDomainError(w, err)
		return
	}

	o, err := a.orderSvc.GetByID(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrder(o))
}

func (a *API) handleOrderStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := a.orderSvc.Statistics(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	top := make([]map[string]any, 0, len(stats.TopProducts))
	for _, p := range stats.TopProducts {
		top = append(top, map[string]any{
			"product": p.Product,
			"units":   p.Units,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total_sales":      stats.TotalSales,
		"total_orders":     stats.TotalOrders,
		"pending_orders":   stats.PendingOrders,
		"delivered_orders": stats.DeliveredOrders,
		"cancelled_orders": stats.CancelledOrders,
		"top_products":     top,
	})
}

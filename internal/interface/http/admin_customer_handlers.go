package http

import "net/http"

func (a *API) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := a.customerSvc.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	out := make([]map[string]any, 0, len(customers))
	for _, c := range customers {
		out = append(out, mapCustomer(c))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	c, err := a.customerSvc.GetByID(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCustomer(c))
}

package http

import (
	"net/http"

	checkoutuc "example.com/provisions-store/internal/usecase/checkout"
)

type checkoutRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
}

func (a *API) handleCheckout(w http.ResponseWriter, r *http.Request) {
	token := cartToken(w, r)

	var req checkoutRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	result, err := a.checkoutSvc.PlaceOrder(r.Context(), token, checkoutuc.CustomerInfo{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"order":         mapOrder(result.Order),
		"whatsapp_link": result.WhatsAppLink,
	})
}

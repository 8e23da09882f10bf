package http

import (
	"net/http"
)

// Quantity is clamped to at least 1 by the cart service.
type addCartItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

type applyCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	token := cartToken(w, r)
	cart, err := a.cartSvc.Get(r.Context(), token)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCart(cart))
}

func (a *API) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	token := cartToken(w, r)

	var req addCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.cartSvc.AddToCart(r.Context(), token, req.ProductID, req.Quantity); err != nil {
		handleDomainError(w, err)
		return
	}
	a.respondWithCart(w, r, token, http.StatusCreated)
}

func (a *API) handleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	token := cartToken(w, r)

	productID, err := parseIDParam(r, "productID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var req updateCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.cartSvc.UpdateQuantity(r.Context(), token, productID, req.Quantity); err != nil {
		handleDomainError(w, err)
		return
	}
	a.respondWithCart(w, r, token, http.StatusOK)
}

func (a *API) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	token := cartToken(w, r)

	productID, err := parseIDParam(r, "productID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.cartSvc.RemoveFromCart(r.Context(), token, productID); err != nil {
		handleDomainError(w, err)
		return
	}
	a.respondWithCart(w, r, token, http.StatusOK)
}

func (a *API) handleClearCart(w http.ResponseWriter, r *http.Request) {
	token := cartToken(w, r)
	if err := a.cartSvc.ClearCart(r.Context(), token); err != nil {
		handleDomainError(w, err)
		return
	}
	a.respondWithCart(w, r, token, http.StatusOK)
}

func (a *API) handleApplyCoupon(w http.ResponseWriter, r *http.Request) {
	token := cartToken(w, r)

	var req applyCouponRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	applied := a.cartSvc.ApplyCoupon(r.Context(), token, req.Code)

	cart, err := a.cartSvc.Get(r.Context(), token)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	payload := mapCart(cart)
	payload["applied"] = applied
	writeJSON(w, http.StatusOK, payload)
}

func (a *API) handleRemoveCoupon(w http.ResponseWriter, r *http.Request) {
	token := cartToken(w, r)
	if err := a.cartSvc.RemoveCoupon(r.Context(), token); err != nil {
		handleDomainError(w, err)
		return
	}
	a.respondWithCart(w, r, token, http.StatusOK)
}

func (a *API) respondWithCart(w http.ResponseWriter, r *http.Request, token string, status int) {
	cart, err := a.cartSvc.Get(r.Context(), token)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, status, mapCart(cart))
}

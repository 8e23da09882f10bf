package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	domcoupon "example.com/provisions-store/internal/domain/coupon"
)

type couponRequest struct {
	Code           string          `json:"code" validate:"required"`
	DiscountType   string          `json:"discount_type" validate:"required,oneof=percentage flat"`
	DiscountValue  decimal.Decimal `json:"discount_value"`
	SuccessMessage string          `json:"success_message"`
	UsageLimit     int64           `json:"usage_limit" validate:"required,gt=0"`
	ExpiryDate     time.Time       `json:"expiry_date" validate:"required"`
	IsActive       bool            `json:"is_active"`
}

type validateCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

func (a *API) handleListCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := a.couponSvc.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	if coupons == nil {
		coupons = []*domcoupon.Coupon{}
	}
	writeJSON(w, http.StatusOK, coupons)
}

func (a *API) handleGetCoupon(w http.ResponseWriter, r *http.Request) {
	c, err := a.couponSvc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (a *API) handleCreateCoupon(w http.ResponseWriter, r *http.Request) {
	var req couponRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	c, err := a.couponSvc.Create(r.Context(), &domcoupon.Coupon{
		Code:           req.Code,
		DiscountType:   domcoupon.DiscountType(req.DiscountType),
		DiscountValue:  req.DiscountValue,
		SuccessMessage: req.SuccessMessage,
		UsageLimit:     req.UsageLimit,
		ExpiryDate:     req.ExpiryDate,
		IsActive:       req.IsActive,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (a *API) handleUpdateCoupon(w http.ResponseWriter, r *http.Request) {
	var req couponRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	c, err := a.couponSvc.Update(r.Context(), &domcoupon.Coupon{
		ID:             chi.URLParam(r, "id"),
		Code:           req.Code,
		DiscountType:   domcoupon.DiscountType(req.DiscountType),
		DiscountValue:  req.DiscountValue,
		SuccessMessage: req.SuccessMessage,
		UsageLimit:     req.UsageLimit,
		ExpiryDate:     req.ExpiryDate,
		IsActive:       req.IsActive,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (a *API) handleDeleteCoupon(w http.ResponseWriter, r *http.Request) {
	if err := a.couponSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (a *API) handleValidateCoupon(w http.ResponseWriter, r *http.Request) {
	var req validateCouponRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	result, err := a.couponSvc.Validate(r.Context(), req.Code)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	payload := map[string]any{"valid": result.Valid}
	if result.Valid {
		payload["coupon"] = result.Coupon
	} else {
		payload["message"] = result.Message
	}
	writeJSON(w, http.StatusOK, payload)
}

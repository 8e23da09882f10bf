package http

import (
	"net/http"

	domsettings "example.com/provisions-store/internal/domain/settings"
)

func (a *API) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := a.settingsSvc.Get(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (a *API) handleUpdateStoreSettings(w http.ResponseWriter, r *http.Request) {
	var req domsettings.StoreInfo
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	s, err := a.settingsSvc.UpdateStore(r.Context(), req)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (a *API) handleUpdateDeliverySettings(w http.ResponseWriter, r *http.Request) {
	var req domsettings.Delivery
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	s, err := a.settingsSvc.UpdateDelivery(r.Context(), req)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (a *API) handleUpdateNotificationSettings(w http.ResponseWriter, r *http.Request) {
	var req domsettings.Notifications
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	s, err := a.settingsSvc.UpdateNotifications(r.Context(), req)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

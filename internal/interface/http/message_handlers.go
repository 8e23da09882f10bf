package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	dommessage "example.com/provisions-store/internal/domain/message"
)

type createMessageRequest struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerPhone string `json:"customer_phone" validate:"required"`
	Body          string `json:"body" validate:"required"`
	Source        string `json:"source" validate:"required,oneof=WhatsApp Website"`
}

func (a *API) handleCreateMessage(w http.ResponseWriter, r *http.Request) {
	var req createMessageRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	m, err := a.messageSvc.Create(r.Context(), &dommessage.Message{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Body:          req.Body,
		Source:        dommessage.Source(req.Source),
		CreatedAt:     time.Now(),
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapMessage(m))
}

func (a *API) handleListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := a.messageSvc.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	out := make([]map[string]any, 0, len(messages))
	for _, m := range messages {
		out = append(out, mapMessage(m))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := a.messageSvc.UnreadCount(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"unread": count})
}

func (a *API) handleMarkMessageRead(w http.ResponseWriter, r *http.Request) {
	if err := a.messageSvc.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "read"})
}

func (a *API) handleMarkAllMessagesRead(w http.ResponseWriter, r *http.Request) {
	if err := a.messageSvc.MarkAllRead(r.Context()); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "read"})
}

func (a *API) handleDeleteMessage(w http.ResponseWriter, r *http.Request) {
	if err := a.messageSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

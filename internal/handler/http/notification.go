package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rotaworks/timeclock-backend-go/internal/domain/notification"
	"github.com/rotaworks/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/rotaworks/timeclock-backend-go/internal/handler/http/response"
	"github.com/rotaworks/timeclock-backend-go/internal/pkg/sse"
)

type NotificationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationRepo notification.Repository
	hub              *sse.Hub
}

func NewNotificationHandler(notificationRepo notification.Repository, hub *sse.Hub) NotificationHandler {
	return &notificationHandlerImpl{
		notificationRepo: notificationRepo,
		hub:              hub,
	}
}

// List implements NotificationHandler.
func (h *notificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	unreadOnly := r.URL.Query().Get("unread_only") == "true"

	notifications, err := h.notificationRepo.ListByRecipient(r.Context(), userID, unreadOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, notifications)
}

// MarkRead implements NotificationHandler.
func (h *notificationHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	if err := h.notificationRepo.MarkRead(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notification marked read", nil)
}

// Stream implements NotificationHandler. Sends live notifications for the
// authenticated user as server-sent events.
func (h *notificationHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(userID)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"user_id\":\"%s\"}\n\n", userID)
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

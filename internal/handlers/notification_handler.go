package handlers

import (
	"encoding/json"
	"net/http"

	"campusBack/internal/models"
	"campusBack/internal/services"
)

type NotificationHandler struct {
	Service *services.NotificationService
}

func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	notifications, err := h.Service.GetNotificationsByUser(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to get notifications", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(notifications)
}

func (h *NotificationHandler) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	count, err := h.Service.GetUnreadCount(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to get unread count", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(models.UnreadCountResponse{UserID: userID, Count: count})
}

func (h *NotificationHandler) ResetUnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.Service.ResetUnreadCount(r.Context(), userID); err != nil {
		http.Error(w, "Failed to reset unread count", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

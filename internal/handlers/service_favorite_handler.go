package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"campusBack/internal/models"
	"campusBack/internal/services"
)

type ServiceFavoriteHandler struct {
	Service *services.ServiceFavoriteService
}

func (h *ServiceFavoriteHandler) AddToFavorites(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.Atoi(r.URL.Query().Get(":service_id"))
	if err != nil {
		http.Error(w, "Invalid service_id", http.StatusBadRequest)
		return
	}
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	fav := models.ServiceFavorite{UserID: userID, ServiceID: serviceID}
	if err := h.Service.AddToFavorites(r.Context(), fav); err != nil {
		if errors.Is(err, models.ErrAlreadyFavorited) {
			http.Error(w, "Already in favorites", http.StatusConflict)
			return
		}
		http.Error(w, "Failed to add favorite", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *ServiceFavoriteHandler) RemoveFromFavorites(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.Atoi(r.URL.Query().Get(":service_id"))
	if err != nil {
		http.Error(w, "Invalid service_id", http.StatusBadRequest)
		return
	}
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.Service.RemoveFromFavorites(r.Context(), userID, serviceID); err != nil {
		http.Error(w, "Failed to remove favorite", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *ServiceFavoriteHandler) IsFavorite(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.Atoi(r.URL.Query().Get(":service_id"))
	if err != nil {
		http.Error(w, "Invalid service_id", http.StatusBadRequest)
		return
	}
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	liked, err := h.Service.IsFavorite(r.Context(), userID, serviceID)
	if err != nil {
		http.Error(w, "Failed to check favorite", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"favorited": liked})
}

func (h *ServiceFavoriteHandler) GetFavoritesByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	favorites, err := h.Service.GetFavoritesByUser(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to get favorites", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(favorites)
}

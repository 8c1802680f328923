package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"campusBack/internal/services"
)

type RecommendationHandler struct {
	Service *services.RecommendationService
}

// GetRecommendedServices returns the catalog ranked for the requesting
// user, highest score first.
func (h *RecommendationHandler) GetRecommendedServices(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	scored, err := h.Service.GetRecommendedServices(r.Context(), userID)
	if err != nil {
		log.Printf("GetRecommendedServices error: %v", err)
		http.Error(w, "Failed to get recommendations", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(scored)
}

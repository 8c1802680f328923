package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"campusBack/internal/models"
	"campusBack/internal/services"
)

type ReviewHandler struct {
	Service *services.ReviewService
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
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

	var review models.Reviews
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	review.ServiceID = serviceID
	review.UserID = userID

	if review.Rating < 1 || review.Rating > 5 {
		http.Error(w, "Rating must be between 1 and 5", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateReview(r.Context(), review)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyReviewed) {
			http.Error(w, "User already reviewed this service", http.StatusConflict)
			return
		}
		log.Printf("CreateReview error: %v", err)
		http.Error(w, "Failed to create review", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *ReviewHandler) GetReviewsByServiceID(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.Atoi(r.URL.Query().Get(":service_id"))
	if err != nil {
		http.Error(w, "Invalid service_id", http.StatusBadRequest)
		return
	}
	reviews, err := h.Service.GetReviewsByServiceID(r.Context(), serviceID)
	if err != nil {
		http.Error(w, "Failed to get reviews", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(reviews)
}

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid review ID", http.StatusBadRequest)
		return
	}
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.Service.DeleteReview(r.Context(), reviewID, userID); err != nil {
		switch {
		case errors.Is(err, models.ErrReviewNotFound):
			http.Error(w, "Review not found", http.StatusNotFound)
		case errors.Is(err, models.ErrNotOwner):
			http.Error(w, "Forbidden", http.StatusForbidden)
		default:
			http.Error(w, "Failed to delete review", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusOK)
}

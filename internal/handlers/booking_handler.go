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

type BookingHandler struct {
	Service *services.BookingService
}

func (h *BookingHandler) BookService(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.BookServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.ServiceID == 0 || req.Date == "" || req.TimeSlot == "" {
		http.Error(w, "service_id, date and time_slot are required", http.StatusBadRequest)
		return
	}

	booking, err := h.Service.BookService(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrServiceNotFound):
			http.Error(w, "Service not found", http.StatusNotFound)
		case errors.Is(err, models.ErrSlotTaken):
			http.Error(w, "Time slot already booked", http.StatusConflict)
		default:
			log.Printf("BookService error: %v", err)
			http.Error(w, "Failed to book service", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(booking)
}

func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	bookings, err := h.Service.GetBookingsByUser(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to get bookings", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(bookings)
}

func (h *BookingHandler) GetOfferedBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	bookings, err := h.Service.GetOfferedBookings(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to get offered bookings", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(bookings)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.Service.CancelBooking(r.Context(), bookingID, userID); err != nil {
		switch {
		case errors.Is(err, models.ErrBookingNotFound):
			http.Error(w, "Booking not found", http.StatusNotFound)
		case errors.Is(err, models.ErrNotOwner):
			http.Error(w, "Forbidden", http.StatusForbidden)
		default:
			http.Error(w, "Failed to cancel booking", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *BookingHandler) GetAvailableTimes(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.Atoi(r.URL.Query().Get(":service_id"))
	if err != nil {
		http.Error(w, "Invalid service_id", http.StatusBadRequest)
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		http.Error(w, "date is required", http.StatusBadRequest)
		return
	}

	times, err := h.Service.GetAvailableTimes(r.Context(), serviceID, date)
	if err != nil {
		if errors.Is(err, models.ErrServiceNotFound) {
			http.Error(w, "Service not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to get available times", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(times)
}

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"campusBack/internal/models"
	"campusBack/internal/services"
)

type ServiceHandler struct {
	Service *services.ServiceService
}

func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(32 << 20) // 32MB
	if err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var service models.Service
	service.Name = r.FormValue("service_name")
	service.Type = r.FormValue("service_type")
	service.Price, _ = strconv.ParseFloat(r.FormValue("price"), 64)
	service.Description = r.FormValue("description")
	service.UserID = userID

	if file, _, err := r.FormFile("image"); err == nil {
		defer file.Close()
		image, err := io.ReadAll(file)
		if err != nil {
			http.Error(w, "Failed to read image", http.StatusInternalServerError)
			return
		}
		service.Image = image
	}

	created, err := h.Service.CreateService(r.Context(), service)
	if err != nil {
		log.Printf("CreateService error: %v", err)
		http.Error(w, "Failed to create service", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *ServiceHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	serviceList, err := h.Service.GetAllServices(r.Context())
	if err != nil {
		log.Printf("GetServices error: %v", err)
		http.Error(w, "Failed to get services", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(serviceList)
}

func (h *ServiceHandler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid service ID", http.StatusBadRequest)
		return
	}

	service, err := h.Service.GetServiceByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrServiceNotFound) {
			http.Error(w, "Service not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to get service", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(service)
}

func (h *ServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid service ID", http.StatusBadRequest)
		return
	}
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.Service.DeleteService(r.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, models.ErrServiceNotFound):
			http.Error(w, "Service not found", http.StatusNotFound)
		case errors.Is(err, models.ErrNotOwner):
			http.Error(w, "Forbidden", http.StatusForbidden)
		default:
			http.Error(w, "Failed to delete service", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *ServiceHandler) ServeServiceImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid service ID", http.StatusBadRequest)
		return
	}

	image, err := h.Service.GetServiceImage(r.Context(), id)
	if err != nil || len(image) == 0 {
		http.Error(w, "Image not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(image))
	w.Write(image)
}

package models

import (
	"time"
)

// ServiceFavorite is one (user, service) favorite edge. The pair is
// unique: at most one edge per user and service.
type ServiceFavorite struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	ServiceID   int       `json:"service_id"`
	ServiceName string    `json:"service_name,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	ImagePath   *string   `json:"image_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

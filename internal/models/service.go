package models

import (
	"time"
)

type Service struct {
	ID          int           `json:"id"`
	Name        string        `json:"service_name"`
	Type        string        `json:"service_type"`
	Price       float64       `json:"price"`
	Description string        `json:"description"`
	UserID      int           `json:"user_id"`
	Image       []byte        `json:"-"`
	Reviews     []Reviews     `json:"reviews_and_ratings"`
	FavoritedBy []FavoriteRef `json:"favorited_by"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   *time.Time    `json:"updated_at,omitempty"`
}

// FavoriteRef is the favorite edge as it appears nested under a service.
type FavoriteRef struct {
	UserID int `json:"user_id"`
}

// ScoredService is a service decorated by the recommendation scorer.
// The raw image payload is replaced with a base64 text representation
// so the result is transport-safe.
type ScoredService struct {
	Service
	Score         float64 `json:"score"`
	AverageRating string  `json:"average_rating"`
	ImageBase64   *string `json:"image,omitempty"`
}

type CreateServiceRequest struct {
	Name        string  `json:"service_name"`
	Type        string  `json:"service_type"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

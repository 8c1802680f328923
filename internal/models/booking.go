package models

import (
	"time"
)

type Booking struct {
	ID          int        `json:"id"`
	Reference   string     `json:"reference"`
	UserID      int        `json:"user_id"`
	ServiceID   int        `json:"service_id"`
	ServiceName string     `json:"service_name,omitempty"`
	ProviderID  int        `json:"provider_id,omitempty"`
	Date        string     `json:"date"`
	TimeSlot    string     `json:"time_slot"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type BookServiceRequest struct {
	ServiceID int    `json:"service_id"`
	Date      string `json:"date"`
	TimeSlot  string `json:"time_slot"`
}

type AvailableTimesResponse struct {
	ServiceID int      `json:"service_id"`
	Date      string   `json:"date"`
	TimeSlots []string `json:"time_slots"`
}

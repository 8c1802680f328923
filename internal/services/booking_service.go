package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"campusBack/internal/models"
	"campusBack/internal/repositories"
)

type BookingService struct {
	BookingRepo   *repositories.BookingRepository
	ServiceRepo   *repositories.ServiceRepository
	Notifications *NotificationService
}

// defaultTimeSlots is the hourly booking grid offered for every service.
var defaultTimeSlots = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00",
}

func (s *BookingService) BookService(ctx context.Context, userID int, req models.BookServiceRequest) (models.Booking, error) {
	service, err := s.ServiceRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		return models.Booking{}, err
	}

	booking, err := s.BookingRepo.CreateBooking(ctx, models.Booking{
		Reference: uuid.NewString(),
		UserID:    userID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
	})
	if err != nil {
		return models.Booking{}, err
	}

	if s.Notifications != nil {
		s.Notifications.PublishEvent(ctx, service.UserID, "booking",
			fmt.Sprintf("%s booked for %s at %s", service.Name, booking.Date, booking.TimeSlot))
	}
	return booking, nil
}

func (s *BookingService) GetBookingsByUser(ctx context.Context, userID int) ([]models.Booking, error) {
	return s.BookingRepo.GetBookingsByUser(ctx, userID)
}

func (s *BookingService) GetOfferedBookings(ctx context.Context, providerID int) ([]models.Booking, error) {
	return s.BookingRepo.GetOfferedBookings(ctx, providerID)
}

func (s *BookingService) CancelBooking(ctx context.Context, id, userID int) error {
	return s.BookingRepo.CancelBooking(ctx, id, userID)
}

// GetAvailableTimes returns the slot grid minus slots already booked for
// the service on that date.
func (s *BookingService) GetAvailableTimes(ctx context.Context, serviceID int, date string) (models.AvailableTimesResponse, error) {
	if _, err := s.ServiceRepo.GetServiceByID(ctx, serviceID); err != nil {
		return models.AvailableTimesResponse{}, err
	}

	booked, err := s.BookingRepo.GetBookedSlots(ctx, serviceID, date)
	if err != nil {
		return models.AvailableTimesResponse{}, err
	}

	taken := make(map[string]bool, len(booked))
	for _, slot := range booked {
		taken[slot] = true
	}

	available := []string{}
	for _, slot := range defaultTimeSlots {
		if !taken[slot] {
			available = append(available, slot)
		}
	}

	return models.AvailableTimesResponse{
		ServiceID: serviceID,
		Date:      date,
		TimeSlots: available,
	}, nil
}

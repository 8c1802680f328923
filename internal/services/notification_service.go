package services

import (
	"context"
	"log"

	"campusBack/internal/models"
	"campusBack/internal/repositories"
)

// Notifier pushes a notification to connected clients. The websocket hub
// in cmd implements it; a nil Notifier means persist-only.
type Notifier interface {
	Notify(n models.Notification)
}

type NotificationService struct {
	NotificationRepo *repositories.NotificationRepository
	Notifier         Notifier
}

// Publish persists the notification and pushes it to the recipient if
// they are connected. Push failures never fail the originating request.
func (s *NotificationService) Publish(ctx context.Context, n models.Notification) (models.Notification, error) {
	created, err := s.NotificationRepo.CreateNotification(ctx, n)
	if err != nil {
		return models.Notification{}, err
	}
	if s.Notifier != nil {
		s.Notifier.Notify(created)
	}
	return created, nil
}

// PublishEvent is the fire-and-forget variant used by other services;
// failures are logged, not propagated.
func (s *NotificationService) PublishEvent(ctx context.Context, userID int, eventType, message string) {
	_, err := s.Publish(ctx, models.Notification{UserID: userID, Type: eventType, Message: message})
	if err != nil {
		log.Printf("Failed to publish %s notification for user %d: %v", eventType, userID, err)
	}
}

func (s *NotificationService) GetNotificationsByUser(ctx context.Context, userID int) ([]models.Notification, error) {
	return s.NotificationRepo.GetNotificationsByUser(ctx, userID)
}

func (s *NotificationService) GetUnreadCount(ctx context.Context, userID int) (int, error) {
	return s.NotificationRepo.GetUnreadCount(ctx, userID)
}

func (s *NotificationService) ResetUnreadCount(ctx context.Context, userID int) error {
	return s.NotificationRepo.ResetUnreadCount(ctx, userID)
}

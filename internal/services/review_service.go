package services

import (
	"context"
	"fmt"

	"campusBack/internal/models"
	"campusBack/internal/repositories"
)

type ReviewService struct {
	ReviewsRepo   *repositories.ReviewRepository
	ServiceRepo   *repositories.ServiceRepository
	Notifications *NotificationService
}

func (s *ReviewService) CreateReview(ctx context.Context, review models.Reviews) (models.Reviews, error) {
	created, err := s.ReviewsRepo.CreateReview(ctx, review)
	if err != nil {
		return models.Reviews{}, err
	}

	if s.Notifications != nil {
		if service, err := s.ServiceRepo.GetServiceByID(ctx, created.ServiceID); err == nil {
			s.Notifications.PublishEvent(ctx, service.UserID, "review",
				fmt.Sprintf("New %.0f-star review on %s", created.Rating, service.Name))
		}
	}
	return created, nil
}

func (s *ReviewService) GetReviewsByServiceID(ctx context.Context, serviceID int) ([]models.Reviews, error) {
	return s.ReviewsRepo.GetReviewsByServiceID(ctx, serviceID)
}

func (s *ReviewService) DeleteReview(ctx context.Context, id, userID int) error {
	return s.ReviewsRepo.DeleteReview(ctx, id, userID)
}

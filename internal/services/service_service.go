package services

import (
	"context"

	"campusBack/internal/models"
	"campusBack/internal/repositories"
)

type ServiceService struct {
	ServiceRepo *repositories.ServiceRepository
}

func (s *ServiceService) CreateService(ctx context.Context, service models.Service) (models.Service, error) {
	return s.ServiceRepo.CreateService(ctx, service)
}

func (s *ServiceService) GetServiceByID(ctx context.Context, id int) (models.Service, error) {
	return s.ServiceRepo.GetServiceByID(ctx, id)
}

func (s *ServiceService) GetAllServices(ctx context.Context) ([]models.Service, error) {
	return s.ServiceRepo.GetAllServicesWithRelations(ctx)
}

func (s *ServiceService) DeleteService(ctx context.Context, id, userID int) error {
	return s.ServiceRepo.DeleteService(ctx, id, userID)
}

func (s *ServiceService) GetServiceImage(ctx context.Context, id int) ([]byte, error) {
	return s.ServiceRepo.GetServiceImage(ctx, id)
}

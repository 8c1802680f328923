package repositories

import (
	"context"
	"database/sql"
	"errors"

	"campusBack/internal/models"
)

type ServiceRepository struct {
	DB *sql.DB
}

func (r *ServiceRepository) CreateService(ctx context.Context, service models.Service) (models.Service, error) {
	query := `
INSERT INTO services (service_name, service_type, price, description, user_id, image, created_at)
VALUES (?, ?, ?, ?, ?, ?, NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		service.Name, service.Type, service.Price, service.Description, service.UserID, service.Image,
	)
	if err != nil {
		return models.Service{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Service{}, err
	}
	service.ID = int(id)
	return service, nil
}

func (r *ServiceRepository) GetServiceByID(ctx context.Context, id int) (models.Service, error) {
	query := `
		SELECT id, service_name, service_type, price, description, user_id, image, created_at, updated_at
		FROM services
		WHERE id = ?
	`
	var s models.Service
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Type, &s.Price, &s.Description, &s.UserID, &s.Image, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Service{}, models.ErrServiceNotFound
	}
	if err != nil {
		return models.Service{}, err
	}
	return s, nil
}

// GetAllServicesWithRelations returns the full catalog with each
// service's reviews and favorite edges attached. The recommendation
// pipeline reads this shape directly.
func (r *ServiceRepository) GetAllServicesWithRelations(ctx context.Context) ([]models.Service, error) {
	query := `
		SELECT id, service_name, service_type, price, description, user_id, image, created_at, updated_at
		FROM services
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []models.Service{}
	index := make(map[int]int)
	for rows.Next() {
		var s models.Service
		err := rows.Scan(&s.ID, &s.Name, &s.Type, &s.Price, &s.Description, &s.UserID, &s.Image, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		s.Reviews = []models.Reviews{}
		s.FavoritedBy = []models.FavoriteRef{}
		index[s.ID] = len(services)
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachReviews(ctx, services, index); err != nil {
		return nil, err
	}
	if err := r.attachFavorites(ctx, services, index); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceRepository) attachReviews(ctx context.Context, services []models.Service, index map[int]int) error {
	query := `
		SELECT id, user_id, service_id, rating, review, created_at, updated_at
		FROM reviews
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var rev models.Reviews
		err := rows.Scan(&rev.ID, &rev.UserID, &rev.ServiceID, &rev.Rating, &rev.Review, &rev.CreatedAt, &rev.UpdatedAt)
		if err != nil {
			return err
		}
		if i, ok := index[rev.ServiceID]; ok {
			services[i].Reviews = append(services[i].Reviews, rev)
		}
	}
	return rows.Err()
}

func (r *ServiceRepository) attachFavorites(ctx context.Context, services []models.Service, index map[int]int) error {
	rows, err := r.DB.QueryContext(ctx, `SELECT user_id, service_id FROM favorites`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var userID, serviceID int
		if err := rows.Scan(&userID, &serviceID); err != nil {
			return err
		}
		if i, ok := index[serviceID]; ok {
			services[i].FavoritedBy = append(services[i].FavoritedBy, models.FavoriteRef{UserID: userID})
		}
	}
	return rows.Err()
}

func (r *ServiceRepository) DeleteService(ctx context.Context, id, userID int) error {
	var ownerID int
	err := r.DB.QueryRowContext(ctx, `SELECT user_id FROM services WHERE id = ?`, id).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrServiceNotFound
	}
	if err != nil {
		return err
	}
	if ownerID != userID {
		return models.ErrNotOwner
	}
	_, err = r.DB.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, id)
	return err
}

func (r *ServiceRepository) GetServiceImage(ctx context.Context, id int) ([]byte, error) {
	var image []byte
	err := r.DB.QueryRowContext(ctx, `SELECT image FROM services WHERE id = ?`, id).Scan(&image)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return image, nil
}

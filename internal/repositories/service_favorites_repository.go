package repositories

import (
	"context"
	"database/sql"

	"campusBack/internal/models"
)

type ServiceFavoriteRepository struct {
	DB *sql.DB
}

func (r *ServiceFavoriteRepository) AddToFavorites(ctx context.Context, fav models.ServiceFavorite) error {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM favorites WHERE user_id = ? AND service_id = ?`, fav.UserID, fav.ServiceID).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return models.ErrAlreadyFavorited
	}

	_, err := r.DB.ExecContext(ctx, `INSERT INTO favorites (user_id, service_id, created_at) VALUES (?, ?, NOW())`, fav.UserID, fav.ServiceID)
	return err
}

func (r *ServiceFavoriteRepository) RemoveFromFavorites(ctx context.Context, userID, serviceID int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM favorites WHERE user_id = ? AND service_id = ?`, userID, serviceID)
	return err
}

func (r *ServiceFavoriteRepository) IsFavorite(ctx context.Context, userID, serviceID int) (bool, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM favorites WHERE user_id = ? AND service_id = ?`, userID, serviceID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ServiceFavoriteRepository) GetFavoritesByUser(ctx context.Context, userID int) ([]models.ServiceFavorite, error) {
	query := `
		SELECT f.id, f.user_id, f.service_id, s.service_name, s.price, f.created_at
		FROM favorites f
		JOIN services s ON f.service_id = s.id
		WHERE f.user_id = ?
		ORDER BY f.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := []models.ServiceFavorite{}
	for rows.Next() {
		var fav models.ServiceFavorite
		err := rows.Scan(&fav.ID, &fav.UserID, &fav.ServiceID, &fav.ServiceName, &fav.Price, &fav.CreatedAt)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, fav)
	}
	return favorites, rows.Err()
}

// GetAllFavorites returns every favorite edge. The co-favorite matrix is
// rebuilt from this set on each recommendation request.
func (r *ServiceFavoriteRepository) GetAllFavorites(ctx context.Context) ([]models.ServiceFavorite, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, user_id, service_id, created_at FROM favorites ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := []models.ServiceFavorite{}
	for rows.Next() {
		var fav models.ServiceFavorite
		if err := rows.Scan(&fav.ID, &fav.UserID, &fav.ServiceID, &fav.CreatedAt); err != nil {
			return nil, err
		}
		favorites = append(favorites, fav)
	}
	return favorites, rows.Err()
}

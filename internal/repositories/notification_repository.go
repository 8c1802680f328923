package repositories

import (
	"context"
	"database/sql"

	"campusBack/internal/models"
)

type NotificationRepository struct {
	DB *sql.DB
}

func (r *NotificationRepository) CreateNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	query := `
INSERT INTO notifications (user_id, type, message, is_read, created_at)
VALUES (?, ?, ?, 0, NOW())
	`
	result, err := r.DB.ExecContext(ctx, query, n.UserID, n.Type, n.Message)
	if err != nil {
		return models.Notification{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Notification{}, err
	}
	n.ID = int(id)
	return n, nil
}

func (r *NotificationRepository) GetNotificationsByUser(ctx context.Context, userID int) ([]models.Notification, error) {
	query := `
		SELECT id, user_id, type, message, is_read, created_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *NotificationRepository) GetUnreadCount(ctx context.Context, userID int) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM notifications WHERE user_id = ? AND is_read = 0`, userID).Scan(&count)
	return count, err
}

func (r *NotificationRepository) ResetUnreadCount(ctx context.Context, userID int) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE notifications SET is_read = 1 WHERE user_id = ?`, userID)
	return err
}

package repositories

import (
	"context"
	"database/sql"
	"errors"

	"campusBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
INSERT INTO users (first_name, last_name, username, email, password, role, is_verified, created_at)
VALUES (?, ?, ?, ?, ?, ?, 0, NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		user.FirstName, user.LastName, user.Username, user.Email, user.Password, user.Role,
	)
	if err != nil {
		return models.User{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	user.ID = int(id)
	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	query := `
		SELECT id, first_name, last_name, username, email, password, role, is_verified, created_at, updated_at
		FROM users
		WHERE username = ?
	`
	var user models.User
	err := r.DB.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Username, &user.Email,
		&user.Password, &user.Role, &user.IsVerified, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	query := `
		SELECT id, first_name, last_name, username, email, role, is_verified, created_at, updated_at
		FROM users
		WHERE id = ?
	`
	var user models.User
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Username, &user.Email,
		&user.Role, &user.IsVerified, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE username = ?`, username).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) MarkVerified(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE users SET is_verified = 1, updated_at = NOW() WHERE id = ?`, id)
	return err
}

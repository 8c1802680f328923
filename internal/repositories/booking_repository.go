package repositories

import (
	"context"
	"database/sql"
	"errors"

	"campusBack/internal/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r *BookingRepository) CreateBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings WHERE service_id = ? AND date = ? AND time_slot = ? AND status <> 'cancelled'`,
		booking.ServiceID, booking.Date, booking.TimeSlot,
	).Scan(&count)
	if err != nil {
		return models.Booking{}, err
	}
	if count > 0 {
		return models.Booking{}, models.ErrSlotTaken
	}

	query := `
INSERT INTO bookings (reference, user_id, service_id, date, time_slot, status, created_at)
VALUES (?, ?, ?, ?, ?, 'booked', NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		booking.Reference, booking.UserID, booking.ServiceID, booking.Date, booking.TimeSlot,
	)
	if err != nil {
		return models.Booking{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Booking{}, err
	}
	booking.ID = int(id)
	booking.Status = "booked"
	return booking, nil
}

func (r *BookingRepository) GetBookingsByUser(ctx context.Context, userID int) ([]models.Booking, error) {
	query := `
		SELECT b.id, b.reference, b.user_id, b.service_id, s.service_name, s.user_id,
		       b.date, b.time_slot, b.status, b.created_at, b.updated_at
		FROM bookings b
		JOIN services s ON b.service_id = s.id
		WHERE b.user_id = ?
		ORDER BY b.created_at DESC
	`
	return r.queryBookings(ctx, query, userID)
}

// GetOfferedBookings lists bookings made against services the provider owns.
func (r *BookingRepository) GetOfferedBookings(ctx context.Context, providerID int) ([]models.Booking, error) {
	query := `
		SELECT b.id, b.reference, b.user_id, b.service_id, s.service_name, s.user_id,
		       b.date, b.time_slot, b.status, b.created_at, b.updated_at
		FROM bookings b
		JOIN services s ON b.service_id = s.id
		WHERE s.user_id = ?
		ORDER BY b.created_at DESC
	`
	return r.queryBookings(ctx, query, providerID)
}

func (r *BookingRepository) queryBookings(ctx context.Context, query string, arg int) ([]models.Booking, error) {
	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		err := rows.Scan(&b.ID, &b.Reference, &b.UserID, &b.ServiceID, &b.ServiceName, &b.ProviderID,
			&b.Date, &b.TimeSlot, &b.Status, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *BookingRepository) CancelBooking(ctx context.Context, id, userID int) error {
	var bookedBy int
	err := r.DB.QueryRowContext(ctx, `SELECT user_id FROM bookings WHERE id = ?`, id).Scan(&bookedBy)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrBookingNotFound
	}
	if err != nil {
		return err
	}
	if bookedBy != userID {
		return models.ErrNotOwner
	}
	_, err = r.DB.ExecContext(ctx, `UPDATE bookings SET status = 'cancelled', updated_at = NOW() WHERE id = ?`, id)
	return err
}

// GetBookedSlots returns the occupied time slots for a service on a date.
func (r *BookingRepository) GetBookedSlots(ctx context.Context, serviceID int, date string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT time_slot FROM bookings WHERE service_id = ? AND date = ? AND status <> 'cancelled'`,
		serviceID, date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := []string{}
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

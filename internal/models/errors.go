package models

import (
	"errors"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateUsername  = errors.New("models: duplicate username")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrServiceNotFound    = errors.New("service not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrAlreadyReviewed    = errors.New("user already reviewed this service")
	ErrAlreadyFavorited   = errors.New("service already in favorites")
	ErrSlotTaken          = errors.New("time slot already booked")
	ErrNotOwner           = errors.New("user does not own this record")
)

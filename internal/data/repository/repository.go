package repository

import (
	"cricket-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Session SessionRepository
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Session: NewSessionRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}

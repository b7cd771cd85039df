package repository

import (
	"context"
	"fmt"
	"time"

	"cricket-booking/internal/data/entity"
	"cricket-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	CreateBatch(ctx context.Context, bookings []*entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error

	// FindBookedTimeLabels lists the time labels already taken for one
	// (date, pitch type) pair. Labels match the slot generator's output
	// exactly, so availability is a string-equality join.
	FindBookedTimeLabels(ctx context.Context, date time.Time, pitch entity.PitchType) ([]string, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) CreateBatch(ctx context.Context, bookings []*entity.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	// One transaction: a multi-slot booking is all-or-nothing.
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking insert: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO bookings (id, order_id, user_id, pitch_type, date, time_label, price_cents, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for _, booking := range bookings {
		_, err := tx.Exec(ctx, query,
			booking.ID,
			booking.OrderID,
			booking.UserID,
			booking.PitchType,
			booking.Date,
			booking.TimeLabel,
			booking.PriceCents,
			booking.Status,
			booking.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to insert booking row",
				zap.Error(err),
				zap.String("order_id", booking.OrderID),
				zap.String("time_label", booking.TimeLabel),
			)
			return fmt.Errorf("insert booking %s %s: %w", booking.OrderID, booking.TimeLabel, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking insert: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, order_id, user_id, pitch_type, date, time_label, price_cents, status, created_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.OrderID,
		&booking.UserID,
		&booking.PitchType,
		&booking.Date,
		&booking.TimeLabel,
		&booking.PriceCents,
		&booking.Status,
		&booking.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT id, order_id, user_id, pitch_type, date, time_label, price_cents, status, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.OrderID,
			&booking.UserID,
			&booking.PitchType,
			&booking.Date,
			&booking.TimeLabel,
			&booking.PriceCents,
			&booking.Status,
			&booking.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) FindBookedTimeLabels(ctx context.Context, date time.Time, pitch entity.PitchType) ([]string, error) {
	query := `
		SELECT time_label
		FROM bookings
		WHERE date = $1 AND pitch_type = $2 AND status = $3
	`

	rows, err := r.db.Query(ctx, query, date, pitch, entity.BookingStatusUpcoming)
	if err != nil {
		r.log.Error("Failed to find booked time labels",
			zap.Error(err),
			zap.String("date", date.Format("2006-01-02")),
			zap.String("pitch_type", string(pitch)),
		)
		return nil, fmt.Errorf("find booked time labels for %s %s: %w",
			date.Format("2006-01-02"), string(pitch), err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			r.log.Error("Failed to scan time label", zap.Error(err))
			return nil, fmt.Errorf("scan time label: %w", err)
		}
		labels = append(labels, label)
	}

	return labels, nil
}

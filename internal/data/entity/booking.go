package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusUpcoming  BookingStatus = "upcoming"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is one confirmed half-hour slot. A multi-slot booking is stored as
// one row per slot sharing the same order ID; rows only exist after payment
// verification and are never hard-deleted, only flipped to cancelled.
type Booking struct {
	BaseSimple
	OrderID    string        `db:"order_id"`
	UserID     uuid.UUID     `db:"user_id"`
	PitchType  PitchType     `db:"pitch_type"`
	Date       time.Time     `db:"date"`
	TimeLabel  string        `db:"time_label"`
	PriceCents int64         `db:"price_cents"`
	Status     BookingStatus `db:"status"`
}

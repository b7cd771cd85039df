package response

import (
	"time"

	"cricket-booking/internal/data/entity"
	"cricket-booking/internal/pricing"
)

// QuoteResponse is the advisory price shown while the customer assembles a
// selection. The same engine re-runs at confirmation time.
type QuoteResponse struct {
	PitchType      string               `json:"pitch_type"`
	Date           string               `json:"date"`
	TimeSlots      []string             `json:"time_slots"`
	Players        int                  `json:"players"`
	EarlyBird      bool                 `json:"early_bird"`
	WeekendPackage bool                 `json:"weekend_package"`
	Membership     *entity.Membership   `json:"membership,omitempty"`
	BaseCents      int64                `json:"base_cents"`
	Adjustments    []pricing.Adjustment `json:"adjustments,omitempty"`
	TotalCents     int64                `json:"total_cents"`
	TotalDisplay   string               `json:"total_display"`
}

// CheckoutResponse carries the provider's redirect URL.
type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// BookingResponse is one persisted half-hour booking row.
type BookingResponse struct {
	ID         string               `json:"id"`
	OrderID    string               `json:"order_id"`
	PitchType  string               `json:"pitch_type"`
	Date       string               `json:"date"`
	TimeLabel  string               `json:"time_label"`
	PriceCents int64                `json:"price_cents"`
	Status     entity.BookingStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
}

// ConfirmationResponse is returned after payment verification persisted the
// booking rows.
type ConfirmationResponse struct {
	OrderID    string            `json:"order_id"`
	Status     string            `json:"status"`
	TotalCents int64             `json:"total_cents"`
	Bookings   []BookingResponse `json:"bookings"`
}

// BookingToResponse converts a booking row, rendering the customer-facing
// pitch name.
func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID.String(),
		OrderID:    b.OrderID,
		PitchType:  b.PitchType.DisplayName(),
		Date:       b.Date.Format("2006-01-02"),
		TimeLabel:  b.TimeLabel,
		PriceCents: b.PriceCents,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
}

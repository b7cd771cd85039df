package wire

import (
	"cricket-booking/internal/adaptor"
	"cricket-booking/internal/data/repository"
	"cricket-booking/pkg/middleware"
	"cricket-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	// Group routes that require authentication
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/booking/checkout - Open a checkout session for selected slots
		r.Post("/api/booking/checkout", bookingHandler.CreateCheckout)

		// POST /api/booking/confirm - Verify payment and persist the booking
		r.Post("/api/booking/confirm", bookingHandler.ConfirmBooking)

		// GET /api/user/bookings - View booking history (user's own bookings)
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)

		// PUT /api/bookings/{id}/cancel - Cancel an upcoming booking
		r.Put("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)
	})

	// ==================== PUBLIC ROUTES ====================
	// POST /api/booking/quote - Price a prospective booking. A session is
	// optional here; when present, membership pricing applies.
	r.With(middleware.OptionalAuthSession(repo.Session, log)).Post("/api/booking/quote", bookingHandler.Quote)
}

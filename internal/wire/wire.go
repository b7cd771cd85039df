// internal/wire/wire.go
package wire

import (
	"cricket-booking/internal/adaptor"
	"cricket-booking/internal/data/repository"
	"cricket-booking/internal/gateway"
	"cricket-booking/internal/usecase"
	"cricket-booking/pkg/cache"
	"cricket-booking/pkg/middleware"
	"cricket-booking/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled application.
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(
	repo *repository.Repository,
	checkout gateway.CheckoutGateway,
	memberships gateway.MembershipGateway,
	avail *cache.AvailabilityCache,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	// Initialize services and handlers
	service := usecase.NewService(repo, checkout, memberships, avail, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireSchedule(r, handler.Schedule, repo, config, logger)
	wireMembership(r, handler.Membership, repo, config, logger)
	wireBooking(r, handler.Booking, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

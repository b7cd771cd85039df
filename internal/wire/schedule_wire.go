package wire

import (
	"cricket-booking/internal/adaptor"
	"cricket-booking/internal/data/repository"
	"cricket-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSchedule(
	r chi.Router,
	scheduleHandler *adaptor.ScheduleHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/slots - List time slots with availability for a date (public)
	r.Get("/api/slots", scheduleHandler.GetTimeSlots)

	// POST /api/slots/selection - Apply an add/remove to a slot selection (public)
	r.Post("/api/slots/selection", scheduleHandler.ApplySelection)
}

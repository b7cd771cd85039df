package wire

import (
	"cricket-booking/internal/adaptor"
	"cricket-booking/internal/data/repository"
	"cricket-booking/pkg/middleware"
	"cricket-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMembership(
	r chi.Router,
	membershipHandler *adaptor.MembershipHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	// GET /api/membership - Current user's membership status
	r.With(middleware.AuthSession(repo.Session, log)).Get("/api/membership", membershipHandler.Status)
}

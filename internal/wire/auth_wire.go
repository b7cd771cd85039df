package wire

import (
	"cricket-booking/internal/adaptor"
	"cricket-booking/internal/data/repository"
	"cricket-booking/pkg/middleware"
	"cricket-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	// Logout - revokes the presented session token
	r.With(middleware.AuthSession(repo.Session, log)).Post("/api/logout", authHandler.SignOut)
}

package usecase

import (
	"context"

	"cricket-booking/internal/data/repository"

	"go.uber.org/zap"
)

// AuthService is the thin sliver of the auth collaborator this service
// owns: revoking the current session. Sign-up and sign-in live elsewhere.
type AuthService interface {
	SignOut(ctx context.Context, token string) error
}

type authService struct {
	sessions repository.SessionRepository
	log      *zap.Logger
}

func NewAuthService(sessions repository.SessionRepository, log *zap.Logger) AuthService {
	return &authService{
		sessions: sessions,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) SignOut(ctx context.Context, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return err
	}
	return nil
}

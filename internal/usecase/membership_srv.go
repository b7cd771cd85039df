package usecase

import (
	"context"

	"cricket-booking/internal/data/entity"
	"cricket-booking/internal/gateway"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MembershipService resolves a user's subscription with the billing
// collaborator. Lookups are best-effort: a failure degrades to "no discount
// applied" and never blocks a booking.
type MembershipService interface {
	Status(ctx context.Context, userID uuid.UUID) entity.Membership
}

type membershipService struct {
	gw  gateway.MembershipGateway
	log *zap.Logger
}

func NewMembershipService(gw gateway.MembershipGateway, log *zap.Logger) MembershipService {
	return &membershipService{
		gw:  gw,
		log: log.With(zap.String("service", "membership")),
	}
}

func (s *membershipService) Status(ctx context.Context, userID uuid.UUID) entity.Membership {
	membership, err := s.gw.Check(ctx, userID)
	if err != nil {
		s.log.Warn("Membership lookup failed, proceeding without discount",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return entity.NoMembership
	}
	return membership
}

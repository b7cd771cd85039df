package usecase

import (
	"cricket-booking/internal/data/repository"
	"cricket-booking/internal/gateway"
	"cricket-booking/pkg/cache"
	"cricket-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	Schedule   ScheduleService
	Membership MembershipService
	Booking    BookingService
}

func NewService(
	repo *repository.Repository,
	checkout gateway.CheckoutGateway,
	memberships gateway.MembershipGateway,
	avail *cache.AvailabilityCache,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	membership := NewMembershipService(memberships, log)

	return &Service{
		Auth:       NewAuthService(repo.Session, log),
		Schedule:   NewScheduleService(repo, avail, config, log),
		Membership: membership,
		Booking:    NewBookingService(repo, checkout, membership, avail, config, log),
	}
}

package adaptor

import (
	"cricket-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth       *AuthHandler
	Schedule   *ScheduleHandler
	Membership *MembershipHandler
	Booking    *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		Schedule:   NewScheduleHandler(service.Schedule, log),
		Membership: NewMembershipHandler(service.Membership, log),
		Booking:    NewBookingHandler(service.Booking, log),
	}
}

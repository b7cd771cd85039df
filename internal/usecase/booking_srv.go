package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cricket-booking/internal/data/entity"
	"cricket-booking/internal/data/repository"
	"cricket-booking/internal/dto/request"
	"cricket-booking/internal/dto/response"
	"cricket-booking/internal/gateway"
	"cricket-booking/internal/pricing"
	"cricket-booking/internal/schedule"
	"cricket-booking/internal/selection"
	"cricket-booking/pkg/cache"
	"cricket-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SlotConflictError names the slot that was taken between display and
// payment confirmation. The whole booking is rejected; no rows persist.
type SlotConflictError struct {
	Slot string
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("slot %s is no longer available", e.Slot)
}

type BookingService interface {
	// Quote prices a selection with the shared engine. The same engine runs
	// at confirmation time, so the display and the charge cannot drift.
	Quote(ctx context.Context, userID *uuid.UUID, req *request.QuoteRequest) (*response.QuoteResponse, error)

	// CreateCheckout validates the selection and opens a checkout session
	// with the payment collaborator.
	CreateCheckout(ctx context.Context, userID uuid.UUID, req *request.CheckoutRequest) (*response.CheckoutResponse, error)

	// ConfirmBooking verifies the paid session, re-checks slot freshness
	// and persists one booking row per slot.
	ConfirmBooking(ctx context.Context, userID uuid.UUID, req *request.ConfirmBookingRequest) (*response.ConfirmationResponse, error)

	GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	CancelBooking(ctx context.Context, userID uuid.UUID, bookingID string) error
}

type bookingService struct {
	repo       *repository.Repository
	checkout   gateway.CheckoutGateway
	membership MembershipService
	cache      *cache.AvailabilityCache
	hours      schedule.Hours
	log        *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	checkout gateway.CheckoutGateway,
	membership MembershipService,
	avail *cache.AvailabilityCache,
	config *utils.Config,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:       repo,
		checkout:   checkout,
		membership: membership,
		cache:      avail,
		hours:      hoursFromConfig(config),
		log:        log.With(zap.String("service", "booking")),
	}
}

// bookingInput is a parsed and slot-checked quote/checkout request.
type bookingInput struct {
	pitch          entity.PitchType
	date           time.Time
	slots          []string // ordered by sequence index
	players        int
	weekendPackage bool
	earlyBird      bool
	startHour      int
}

// parseInput resolves the request against the day's generated slot sequence:
// every label must belong to it and the selection must form one contiguous
// run. Slots come back ordered by their position in the day.
func (s *bookingService) parseInput(req *request.QuoteRequest) (*bookingInput, error) {
	pitch, err := entity.ParsePitchType(req.PitchType)
	if err != nil {
		return nil, fmt.Errorf("invalid pitch type: %w", err)
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	daySlots := schedule.Generate(date, s.hours)

	indices := make([]int, 0, len(req.TimeSlots))
	byIndex := make(map[int]string, len(req.TimeSlots))
	for _, label := range req.TimeSlots {
		idx := schedule.IndexOf(daySlots, label)
		if idx == -1 {
			return nil, fmt.Errorf("invalid time slot %q for %s", label, req.Date)
		}
		indices = append(indices, idx)
		byIndex[idx] = label
	}

	if !selection.IsContiguous(indices) {
		return nil, fmt.Errorf("select consecutive slots only")
	}

	ordered := selection.FromIndices(selection.ModeMultiple, indices).Indices()
	slots := make([]string, len(ordered))
	for i, idx := range ordered {
		slots[i] = byIndex[idx]
	}

	startHour, _, err := schedule.ParseLabel(slots[0])
	if err != nil {
		return nil, err
	}

	weekendPackage := pitch == entity.PitchNormalLane && pricing.WeekendAuto(date)
	if req.WeekendPackage != nil {
		weekendPackage = *req.WeekendPackage && pitch == entity.PitchNormalLane
	}

	return &bookingInput{
		pitch:          pitch,
		date:           date,
		slots:          slots,
		players:        req.Players,
		weekendPackage: weekendPackage,
		earlyBird:      pricing.EarlyBirdEligible(date, startHour),
		startHour:      startHour,
	}, nil
}

func (s *bookingService) priceQuote(in *bookingInput, membership entity.Membership) (*pricing.Quote, error) {
	return pricing.Compute(pricing.Input{
		Pitch:          in.pitch,
		Date:           in.date,
		Slots:          in.slots,
		Players:        in.players,
		Membership:     membership,
		WeekendPackage: in.weekendPackage,
	})
}

func (s *bookingService) Quote(ctx context.Context, userID *uuid.UUID, req *request.QuoteRequest) (*response.QuoteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	in, err := s.parseInput(req)
	if err != nil {
		return nil, err
	}

	membership := entity.NoMembership
	if userID != nil {
		membership = s.membership.Status(ctx, *userID)
	}

	quote, err := s.priceQuote(in, membership)
	if err != nil {
		return nil, fmt.Errorf("compute quote: %w", err)
	}

	resp := &response.QuoteResponse{
		PitchType:      string(in.pitch),
		Date:           req.Date,
		TimeSlots:      in.slots,
		Players:        in.players,
		EarlyBird:      in.earlyBird,
		WeekendPackage: in.weekendPackage,
		BaseCents:      quote.BaseCents,
		Adjustments:    quote.Adjustments,
		TotalCents:     quote.TotalCents,
		TotalDisplay:   quote.FormattedTotal(),
	}
	if membership.Active {
		resp.Membership = &membership
	}
	return resp, nil
}

func (s *bookingService) CreateCheckout(ctx context.Context, userID uuid.UUID, req *request.CheckoutRequest) (*response.CheckoutResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	in, err := s.parseInput(&req.QuoteRequest)
	if err != nil {
		return nil, err
	}

	// Display-time availability check. This is advisory; the authoritative
	// re-check happens after payment, in ConfirmBooking.
	booked, err := s.repo.Booking.FindBookedTimeLabels(ctx, in.date, in.pitch)
	if err != nil {
		return nil, fmt.Errorf("check slot availability: %w", err)
	}
	for _, slot := range in.slots {
		for _, label := range booked {
			if slot == label {
				return nil, fmt.Errorf("time slot %s is already booked", slot)
			}
		}
	}

	membership := s.membership.Status(ctx, userID)

	quote, err := s.priceQuote(in, membership)
	if err != nil {
		return nil, fmt.Errorf("compute quote: %w", err)
	}

	params := &gateway.CheckoutParams{
		UserID:         userID,
		PitchType:      in.pitch.DisplayName(),
		Date:           req.Date,
		TimeSlots:      in.slots,
		Players:        in.players,
		EarlyBird:      in.earlyBird,
		WeekendPackage: in.weekendPackage,
		AmountCents:    quote.TotalCents,
		Description:    checkoutDescription(in, quote),
	}
	if membership.Active {
		params.MembershipType = string(membership.Type)
		params.MembershipDiscount = membership.DiscountPercent
	}

	session, err := s.checkout.CreateSession(ctx, params)
	if err != nil {
		s.log.Error("Failed to create checkout session",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("date", req.Date),
		)
		return nil, err
	}

	s.log.Info("Checkout session created",
		zap.String("session_id", session.SessionID),
		zap.String("user_id", userID.String()),
		zap.String("pitch_type", string(in.pitch)),
		zap.String("date", req.Date),
		zap.Int("slot_count", len(in.slots)),
		zap.Int64("amount_cents", quote.TotalCents),
	)

	return &response.CheckoutResponse{SessionID: session.SessionID, URL: session.URL}, nil
}

func (s *bookingService) ConfirmBooking(ctx context.Context, userID uuid.UUID, req *request.ConfirmBookingRequest) (*response.ConfirmationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	in, err := s.parseInput(&req.QuoteRequest)
	if err != nil {
		return nil, err
	}

	verify, err := s.checkout.VerifySession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if !verify.Success {
		return nil, fmt.Errorf("payment not completed for session %s (status %s)", req.SessionID, verify.Status)
	}

	// Freshness re-check straight from the database: another customer may
	// have claimed a slot while this one was paying. Last writer wins; the
	// later confirmation gets the conflict.
	booked, err := s.repo.Booking.FindBookedTimeLabels(ctx, in.date, in.pitch)
	if err != nil {
		return nil, fmt.Errorf("re-check slot availability: %w", err)
	}
	for _, slot := range in.slots {
		for _, label := range booked {
			if slot == label {
				s.log.Warn("Slot conflict at confirmation",
					zap.String("user_id", userID.String()),
					zap.String("date", req.Date),
					zap.String("slot", slot),
				)
				return nil, &SlotConflictError{Slot: slot}
			}
		}
	}

	membership := s.membership.Status(ctx, userID)

	quote, err := s.priceQuote(in, membership)
	if err != nil {
		return nil, fmt.Errorf("compute quote: %w", err)
	}

	orderID := utils.GenerateOrderID()
	now := time.Now()
	shares := pricing.SplitShares(quote.TotalCents, len(in.slots))

	bookings := make([]*entity.Booking, len(in.slots))
	for i, slot := range in.slots {
		bookings[i] = &entity.Booking{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
			OrderID:    orderID,
			UserID:     userID,
			PitchType:  in.pitch,
			Date:       in.date,
			TimeLabel:  slot,
			PriceCents: shares[i],
			Status:     entity.BookingStatusUpcoming,
		}
	}

	if err := s.repo.Booking.CreateBatch(ctx, bookings); err != nil {
		return nil, fmt.Errorf("persist bookings: %w", err)
	}

	s.cache.Invalidate(ctx, in.date, in.pitch)

	s.log.Info("Booking confirmed",
		zap.String("order_id", orderID),
		zap.String("user_id", userID.String()),
		zap.String("pitch_type", string(in.pitch)),
		zap.String("date", req.Date),
		zap.Int("slot_count", len(in.slots)),
		zap.Int64("total_cents", quote.TotalCents),
	)

	rows := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		rows[i] = response.BookingToResponse(b)
	}

	return &response.ConfirmationResponse{
		OrderID:    orderID,
		Status:     verify.Status,
		TotalCents: quote.TotalCents,
		Bookings:   rows,
	}, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("page", req.Page),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	rows := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		rows[i] = response.BookingToResponse(b)
	}

	return response.NewPaginatedResponse(rows, req.Page, req.PerPage, total), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, userID uuid.UUID, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if booking == nil {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	if booking.UserID != userID {
		return fmt.Errorf("unauthorized to cancel this booking")
	}

	if booking.Status != entity.BookingStatusUpcoming {
		return fmt.Errorf("booking status is %s, cannot cancel", booking.Status)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, entity.BookingStatusCancelled); err != nil {
		return fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	s.cache.Invalidate(ctx, booking.Date, booking.PitchType)

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("order_id", booking.OrderID),
		zap.String("user_id", userID.String()),
	)

	return nil
}

// checkoutDescription is the payment line shown on the provider's page,
// listing the applied adjustments by name.
func checkoutDescription(in *bookingInput, quote *pricing.Quote) string {
	desc := fmt.Sprintf("%s on %s, %d x 30 min",
		in.pitch.DisplayName(), in.date.Format("2006-01-02"), len(in.slots))

	if len(quote.Adjustments) > 0 {
		names := make([]string, len(quote.Adjustments))
		for i, adj := range quote.Adjustments {
			names[i] = adj.Name
		}
		desc += " (" + strings.Join(names, ", ") + ")"
	}

	return desc
}

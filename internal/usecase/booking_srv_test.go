package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"cricket-booking/internal/data/entity"
	"cricket-booking/internal/data/repository"
	"cricket-booking/internal/dto/request"
	"cricket-booking/internal/gateway"
	"cricket-booking/internal/usecase"
	"cricket-booking/pkg/cache"
	"cricket-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ---- fakes ----

type fakeBookingRepo struct {
	booked    map[string][]string // "date|pitch" -> taken labels
	created   []*entity.Booking
	rows      map[uuid.UUID]*entity.Booking
	statuses  map[uuid.UUID]entity.BookingStatus
	createErr error
	findErr   error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		booked:   make(map[string][]string),
		rows:     make(map[uuid.UUID]*entity.Booking),
		statuses: make(map[uuid.UUID]entity.BookingStatus),
	}
}

func bookedKey(date time.Time, pitch entity.PitchType) string {
	return fmt.Sprintf("%s|%s", date.Format("2006-01-02"), pitch)
}

func (f *fakeBookingRepo) CreateBatch(ctx context.Context, bookings []*entity.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, b := range bookings {
		f.created = append(f.created, b)
		f.rows[b.ID] = b
		key := bookedKey(b.Date, b.PitchType)
		f.booked[key] = append(f.booked[key], b.TimeLabel)
	}
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.rows[id], nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.created {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	rows, _ := f.FindByUserID(ctx, userID, 0, 0)
	return int64(len(rows)), nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	f.statuses[bookingID] = status
	if b, ok := f.rows[bookingID]; ok {
		b.Status = status
	}
	return nil
}

func (f *fakeBookingRepo) FindBookedTimeLabels(ctx context.Context, date time.Time, pitch entity.PitchType) ([]string, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.booked[bookedKey(date, pitch)], nil
}

type fakeCheckout struct {
	lastParams *gateway.CheckoutParams
	createErr  error
	verify     *gateway.VerifyResult
	verifyErr  error
}

func (f *fakeCheckout) CreateSession(ctx context.Context, params *gateway.CheckoutParams) (*gateway.CheckoutSession, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.lastParams = params
	return &gateway.CheckoutSession{SessionID: "cs_test_123", URL: "https://pay.example.com/cs_test_123"}, nil
}

func (f *fakeCheckout) VerifySession(ctx context.Context, sessionID string) (*gateway.VerifyResult, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	if f.verify != nil {
		return f.verify, nil
	}
	return &gateway.VerifyResult{Success: true, Status: "paid"}, nil
}

type fakeMembershipGateway struct {
	membership entity.Membership
	err        error
}

func (f *fakeMembershipGateway) Check(ctx context.Context, userID uuid.UUID) (entity.Membership, error) {
	if f.err != nil {
		return entity.Membership{}, f.err
	}
	return f.membership, nil
}

// ---- harness ----

type bookingFixture struct {
	repo     *fakeBookingRepo
	checkout *fakeCheckout
	members  *fakeMembershipGateway
	svc      usecase.BookingService
}

func newBookingFixture() *bookingFixture {
	log := zap.NewNop()
	repoFake := newFakeBookingRepo()
	checkout := &fakeCheckout{}
	members := &fakeMembershipGateway{}

	repo := &repository.Repository{Booking: repoFake}
	avail := cache.NewAvailability("", "", 0, 0, log)
	membership := usecase.NewMembershipService(members, log)

	return &bookingFixture{
		repo:     repoFake,
		checkout: checkout,
		members:  members,
		svc:      usecase.NewBookingService(repo, checkout, membership, avail, &utils.Config{}, log),
	}
}

func quoteReq() *request.QuoteRequest {
	return &request.QuoteRequest{
		PitchType: "normalLane",
		Date:      "2026-03-03", // Tuesday
		TimeSlots: []string{"10:00 AM - 10:30 AM", "10:30 AM - 11:00 AM"},
		Players:   2,
	}
}

// ---- tests ----

func TestQuoteAnonymous(t *testing.T) {
	f := newBookingFixture()

	resp, err := f.svc.Quote(context.Background(), nil, quoteReq())
	require.NoError(t, err)

	// 4000 base, early bird weekday morning.
	assert.Equal(t, int64(4000), resp.BaseCents)
	assert.Equal(t, int64(3400), resp.TotalCents)
	assert.Equal(t, "$34.00", resp.TotalDisplay)
	assert.True(t, resp.EarlyBird)
	assert.Nil(t, resp.Membership)
}

func TestQuoteWithMembership(t *testing.T) {
	f := newBookingFixture()
	f.members.membership = entity.Membership{Active: true, Type: entity.MembershipBasic, DiscountPercent: 10}
	userID := uuid.New()

	resp, err := f.svc.Quote(context.Background(), &userID, quoteReq())
	require.NoError(t, err)

	// 4000 -> 3600 (member) -> 3060 (early bird)
	assert.Equal(t, int64(3060), resp.TotalCents)
	require.NotNil(t, resp.Membership)
	assert.Equal(t, entity.MembershipBasic, resp.Membership.Type)
}

func TestQuoteOrdersSlotsByDayPosition(t *testing.T) {
	f := newBookingFixture()

	req := quoteReq()
	req.TimeSlots = []string{"10:30 AM - 11:00 AM", "10:00 AM - 10:30 AM"}

	resp, err := f.svc.Quote(context.Background(), nil, req)
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00 AM - 10:30 AM", "10:30 AM - 11:00 AM"}, resp.TimeSlots)
}

func TestQuoteValidation(t *testing.T) {
	f := newBookingFixture()

	tests := []struct {
		name   string
		mutate func(*request.QuoteRequest)
	}{
		{name: "missing date", mutate: func(r *request.QuoteRequest) { r.Date = "" }},
		{name: "bad date format", mutate: func(r *request.QuoteRequest) { r.Date = "03/03/2026" }},
		{name: "no slots", mutate: func(r *request.QuoteRequest) { r.TimeSlots = nil }},
		{name: "too many players", mutate: func(r *request.QuoteRequest) { r.Players = 11 }},
		{name: "unknown pitch", mutate: func(r *request.QuoteRequest) { r.PitchType = "tennis" }},
		{name: "slot outside the day", mutate: func(r *request.QuoteRequest) { r.TimeSlots = []string{"3:00 AM - 3:30 AM"} }},
		{name: "non-consecutive slots", mutate: func(r *request.QuoteRequest) {
			r.TimeSlots = []string{"10:00 AM - 10:30 AM", "11:00 AM - 11:30 AM"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := quoteReq()
			tt.mutate(req)

			_, err := f.svc.Quote(context.Background(), nil, req)
			assert.Error(t, err)
		})
	}
}

func TestCreateCheckout(t *testing.T) {
	f := newBookingFixture()
	userID := uuid.New()

	resp, err := f.svc.CreateCheckout(context.Background(), userID, &request.CheckoutRequest{QuoteRequest: *quoteReq()})
	require.NoError(t, err)

	assert.Equal(t, "cs_test_123", resp.SessionID)
	assert.NotEmpty(t, resp.URL)

	// The provider charges exactly the engine's total.
	require.NotNil(t, f.checkout.lastParams)
	assert.Equal(t, int64(3400), f.checkout.lastParams.AmountCents)
	assert.Equal(t, "Normal Practice Lane", f.checkout.lastParams.PitchType)
	assert.Contains(t, f.checkout.lastParams.Description, "Early Bird Discount")
}

func TestCreateCheckoutRejectsBookedSlot(t *testing.T) {
	f := newBookingFixture()
	date := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	f.repo.booked[bookedKey(date, entity.PitchNormalLane)] = []string{"10:30 AM - 11:00 AM"}

	_, err := f.svc.CreateCheckout(context.Background(), uuid.New(), &request.CheckoutRequest{QuoteRequest: *quoteReq()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already booked")
	assert.Nil(t, f.checkout.lastParams, "no session may be opened for a taken slot")
}

func TestConfirmBooking(t *testing.T) {
	f := newBookingFixture()
	userID := uuid.New()

	req := &request.ConfirmBookingRequest{SessionID: "cs_test_123", QuoteRequest: *quoteReq()}
	resp, err := f.svc.ConfirmBooking(context.Background(), userID, req)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.OrderID)
	assert.Equal(t, "paid", resp.Status)
	assert.Equal(t, int64(3400), resp.TotalCents)
	require.Len(t, resp.Bookings, 2, "one row per half-hour slot")

	// Rows share one order ID and their prices sum back to the total.
	require.Len(t, f.repo.created, 2)
	var sum int64
	for _, b := range f.repo.created {
		assert.Equal(t, resp.OrderID, b.OrderID)
		assert.Equal(t, userID, b.UserID)
		assert.Equal(t, entity.BookingStatusUpcoming, b.Status)
		sum += b.PriceCents
	}
	assert.Equal(t, resp.TotalCents, sum)
	assert.Equal(t, "10:00 AM - 10:30 AM", f.repo.created[0].TimeLabel)
	assert.Equal(t, "10:30 AM - 11:00 AM", f.repo.created[1].TimeLabel)
}

func TestConfirmBookingSlotConflict(t *testing.T) {
	f := newBookingFixture()
	date := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)

	// Another customer grabbed a slot between checkout and confirmation.
	f.repo.booked[bookedKey(date, entity.PitchNormalLane)] = []string{"10:30 AM - 11:00 AM"}

	req := &request.ConfirmBookingRequest{SessionID: "cs_test_123", QuoteRequest: *quoteReq()}
	_, err := f.svc.ConfirmBooking(context.Background(), uuid.New(), req)

	var conflict *usecase.SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "10:30 AM - 11:00 AM", conflict.Slot)

	// The whole attempt is rejected, nothing persists.
	assert.Empty(t, f.repo.created)
}

func TestConfirmBookingUnpaidSession(t *testing.T) {
	f := newBookingFixture()
	f.checkout.verify = &gateway.VerifyResult{Success: false, Status: "open"}

	req := &request.ConfirmBookingRequest{SessionID: "cs_test_123", QuoteRequest: *quoteReq()}
	_, err := f.svc.ConfirmBooking(context.Background(), uuid.New(), req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment not completed")
	assert.Empty(t, f.repo.created)
}

func TestConfirmBookingVerifyFailure(t *testing.T) {
	f := newBookingFixture()
	f.checkout.verifyErr = errors.New("provider unreachable")

	req := &request.ConfirmBookingRequest{SessionID: "cs_test_123", QuoteRequest: *quoteReq()}
	_, err := f.svc.ConfirmBooking(context.Background(), uuid.New(), req)

	require.Error(t, err)
	assert.Empty(t, f.repo.created)
}

func TestConfirmBookingMembershipLookupDegrades(t *testing.T) {
	f := newBookingFixture()
	f.members.err = errors.New("billing down")

	req := &request.ConfirmBookingRequest{SessionID: "cs_test_123", QuoteRequest: *quoteReq()}
	resp, err := f.svc.ConfirmBooking(context.Background(), uuid.New(), req)

	// Booking still goes through, priced without any membership discount.
	require.NoError(t, err)
	assert.Equal(t, int64(3400), resp.TotalCents)
}

func TestGetUserBookings(t *testing.T) {
	f := newBookingFixture()
	userID := uuid.New()

	confirm := &request.ConfirmBookingRequest{SessionID: "cs_test_123", QuoteRequest: *quoteReq()}
	_, err := f.svc.ConfirmBooking(context.Background(), userID, confirm)
	require.NoError(t, err)

	resp, err := f.svc.GetUserBookings(context.Background(), userID, &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.Pagination.Total)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Normal Practice Lane", resp.Data[0].PitchType)
}

func TestCancelBooking(t *testing.T) {
	f := newBookingFixture()
	userID := uuid.New()

	confirm := &request.ConfirmBookingRequest{SessionID: "cs_test_123", QuoteRequest: *quoteReq()}
	resp, err := f.svc.ConfirmBooking(context.Background(), userID, confirm)
	require.NoError(t, err)

	bookingID := resp.Bookings[0].ID
	require.NoError(t, f.svc.CancelBooking(context.Background(), userID, bookingID))

	id, err := uuid.Parse(bookingID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, f.repo.statuses[id])
}

func TestCancelBookingRejections(t *testing.T) {
	f := newBookingFixture()
	owner := uuid.New()

	confirm := &request.ConfirmBookingRequest{SessionID: "cs_test_123", QuoteRequest: *quoteReq()}
	resp, err := f.svc.ConfirmBooking(context.Background(), owner, confirm)
	require.NoError(t, err)
	bookingID := resp.Bookings[0].ID

	t.Run("not the owner", func(t *testing.T) {
		err := f.svc.CancelBooking(context.Background(), uuid.New(), bookingID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unauthorized")
	})

	t.Run("malformed id", func(t *testing.T) {
		assert.Error(t, f.svc.CancelBooking(context.Background(), owner, "not-a-uuid"))
	})

	t.Run("unknown id", func(t *testing.T) {
		err := f.svc.CancelBooking(context.Background(), owner, uuid.NewString())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("already cancelled", func(t *testing.T) {
		require.NoError(t, f.svc.CancelBooking(context.Background(), owner, bookingID))
		err := f.svc.CancelBooking(context.Background(), owner, bookingID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot cancel")
	})
}

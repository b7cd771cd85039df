package usecase

import (
	"context"
	"fmt"
	"time"

	"cricket-booking/internal/data/entity"
	"cricket-booking/internal/data/repository"
	"cricket-booking/internal/dto/request"
	"cricket-booking/internal/dto/response"
	"cricket-booking/internal/pricing"
	"cricket-booking/internal/schedule"
	"cricket-booking/internal/selection"
	"cricket-booking/pkg/cache"
	"cricket-booking/pkg/utils"

	"go.uber.org/zap"
)

type ScheduleService interface {
	// GetTimeSlots lists the day's slots for a pitch type with booked flags.
	GetTimeSlots(ctx context.Context, req *request.TimeSlotsRequest) (*response.TimeSlotsResponse, error)

	// ApplySelection runs one add/remove through the selection rules and
	// returns the resulting selection, or the unchanged one with a reason.
	ApplySelection(ctx context.Context, req *request.SelectionRequest) (*response.SelectionResponse, error)
}

type scheduleService struct {
	repo  *repository.Repository
	cache *cache.AvailabilityCache
	hours schedule.Hours
	log   *zap.Logger
}

func NewScheduleService(repo *repository.Repository, avail *cache.AvailabilityCache, config *utils.Config, log *zap.Logger) ScheduleService {
	return &scheduleService{
		repo:  repo,
		cache: avail,
		hours: hoursFromConfig(config),
		log:   log.With(zap.String("service", "schedule")),
	}
}

func hoursFromConfig(config *utils.Config) schedule.Hours {
	hours := schedule.Hours{
		WeekdayOpen:  config.Facility.WeekdayOpenHour,
		WeekdayClose: config.Facility.WeekdayCloseHour,
		SundayOpen:   config.Facility.SundayOpenHour,
		SundayClose:  config.Facility.SundayCloseHour,
	}
	if hours == (schedule.Hours{}) {
		hours = schedule.DefaultHours()
	}
	return hours
}

// bookedLabels reads the booked-slot snapshot through the cache. The cache
// is a display aid; confirmation-time checks bypass it.
func (s *scheduleService) bookedLabels(ctx context.Context, date time.Time, pitch entity.PitchType) ([]string, error) {
	if labels, ok := s.cache.GetBookedLabels(ctx, date, pitch); ok {
		return labels, nil
	}

	labels, err := s.repo.Booking.FindBookedTimeLabels(ctx, date, pitch)
	if err != nil {
		return nil, err
	}

	s.cache.SetBookedLabels(ctx, date, pitch, labels)
	return labels, nil
}

func (s *scheduleService) GetTimeSlots(ctx context.Context, req *request.TimeSlotsRequest) (*response.TimeSlotsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	pitch, err := entity.ParsePitchType(req.PitchType)
	if err != nil {
		return nil, fmt.Errorf("invalid pitch type: %w", err)
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	slots := schedule.Generate(date, s.hours)

	booked, err := s.bookedLabels(ctx, date, pitch)
	if err != nil {
		s.log.Error("Failed to fetch booked slots",
			zap.Error(err),
			zap.String("date", req.Date),
			zap.String("pitch_type", string(pitch)),
		)
		return nil, fmt.Errorf("fetch booked slots: %w", err)
	}

	availability := schedule.Partition(slots, booked)
	items := make([]response.TimeSlotItem, len(availability))
	for i, a := range availability {
		items[i] = response.TimeSlotItem{Label: a.Label, Booked: a.Booked}
	}

	return &response.TimeSlotsResponse{
		Date:        req.Date,
		PitchType:   string(pitch),
		WeekendAuto: pitch == entity.PitchNormalLane && pricing.WeekendAuto(date),
		Slots:       items,
	}, nil
}

func (s *scheduleService) ApplySelection(ctx context.Context, req *request.SelectionRequest) (*response.SelectionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	pitch, err := entity.ParsePitchType(req.PitchType)
	if err != nil {
		return nil, fmt.Errorf("invalid pitch type: %w", err)
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	slots := schedule.Generate(date, s.hours)

	indices := make([]int, 0, len(req.Selected))
	for _, label := range req.Selected {
		idx := schedule.IndexOf(slots, label)
		if idx == -1 {
			return nil, fmt.Errorf("invalid time slot %q for %s", label, req.Date)
		}
		indices = append(indices, idx)
	}

	sel := selection.FromIndices(selection.Mode(req.Mode), indices)

	target := schedule.IndexOf(slots, req.Slot)
	if target == -1 {
		return nil, fmt.Errorf("invalid time slot %q for %s", req.Slot, req.Date)
	}

	switch req.Action {
	case "add":
		booked, err := s.bookedLabels(ctx, date, pitch)
		if err != nil {
			return nil, fmt.Errorf("fetch booked slots: %w", err)
		}

		taken := false
		for _, label := range booked {
			if label == req.Slot {
				taken = true
				break
			}
		}

		if err := sel.Add(target, taken); err != nil {
			// Rule violations are warnings, not failures; the selection
			// comes back unchanged with the reason attached.
			return &response.SelectionResponse{
				Selected: req.Selected,
				Rejected: true,
				Reason:   err.Error(),
			}, nil
		}
	case "remove":
		sel.Remove(target)
	}

	labels := make([]string, 0, sel.Len())
	for _, idx := range sel.Indices() {
		labels = append(labels, slots[idx].Label)
	}

	return &response.SelectionResponse{Selected: labels}, nil
}

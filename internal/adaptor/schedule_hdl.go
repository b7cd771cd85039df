package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"cricket-booking/internal/dto/request"
	"cricket-booking/internal/usecase"
	"cricket-booking/pkg/utils"

	"go.uber.org/zap"
)

type ScheduleHandler struct {
	service usecase.ScheduleService
	log     *zap.Logger
}

func NewScheduleHandler(service usecase.ScheduleService, log *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service: service,
		log:     log.With(zap.String("handler", "schedule")),
	}
}

// GetTimeSlots handles GET /api/slots?date=&pitch_type= (public)
func (h *ScheduleHandler) GetTimeSlots(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.TimeSlotsRequest{
		Date:      query.Get("date"),
		PitchType: query.Get("pitch_type"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Please select a date and pitch type", validationErrors)
		return
	}

	slots, err := h.service.GetTimeSlots(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get time slots")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// ApplySelection handles POST /api/slots/selection (public)
func (h *ScheduleHandler) ApplySelection(w http.ResponseWriter, r *http.Request) {
	var req request.SelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.ApplySelection(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "apply selection")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

func (h *ScheduleHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "invalid") || strings.Contains(errMsg, "validation failed"):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"cricket-booking/internal/dto/request"
	"cricket-booking/internal/usecase"
	"cricket-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Quote handles POST /api/booking/quote (public; discounts apply when a
// session is present)
func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req request.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Please complete all fields", validationErrors)
		return
	}

	// Optional identity: an anonymous visitor still gets a quote, just
	// without membership discounts.
	var userID *uuid.UUID
	if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
		userID = &id
	}

	quote, err := h.service.Quote(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "compute quote")
		return
	}

	utils.ResponseSuccess(w, "success", quote)
}

// CreateCheckout handles POST /api/booking/checkout (protected)
func (h *BookingHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Please complete all fields", validationErrors)
		return
	}

	checkout, err := h.service.CreateCheckout(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create checkout")
		return
	}

	utils.ResponseCreated(w, "success", checkout)
}

// ConfirmBooking handles POST /api/booking/confirm (protected)
func (h *BookingHandler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ConfirmBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Please complete all fields", validationErrors)
		return
	}

	confirmation, err := h.service.ConfirmBooking(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "confirm booking")
		return
	}

	utils.ResponseCreated(w, "success", confirmation)
}

// GetUserBookings handles GET /api/user/bookings (protected)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.GetUserBookings(r.Context(), userID, req)
	if err != nil {
		h.handleServiceError(w, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// CancelBooking handles PUT /api/bookings/{id}/cancel (protected)
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	if err := h.service.CancelBooking(r.Context(), userID, bookingID); err != nil {
		h.handleServiceError(w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError maps booking service errors to HTTP responses
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "no longer available"):
		h.log.Warn(operation+" failed - slot conflict", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "already booked"):
		h.log.Warn(operation+" failed - slot already booked", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "consecutive"):
		h.log.Warn(operation+" failed - non-contiguous selection", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed") || strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "unauthorized"):
		h.log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "payment not completed") || strings.Contains(errMsg, "cannot"):
		h.log.Warn(operation+" failed - invalid state", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		// External-service failures surface verbatim so the UI can offer
		// a retry.
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, errMsg)
	}
}

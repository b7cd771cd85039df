package adaptor

import (
	"net/http"

	"cricket-booking/internal/usecase"
	"cricket-booking/pkg/utils"

	"go.uber.org/zap"
)

type MembershipHandler struct {
	service usecase.MembershipService
	log     *zap.Logger
}

func NewMembershipHandler(service usecase.MembershipService, log *zap.Logger) *MembershipHandler {
	return &MembershipHandler{
		service: service,
		log:     log.With(zap.String("handler", "membership")),
	}
}

// Status handles GET /api/membership (protected). Lookups are best-effort;
// a failed upstream call reads as "no active membership".
func (h *MembershipHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	membership := h.service.Status(r.Context(), userID)
	utils.ResponseSuccess(w, "success", membership)
}

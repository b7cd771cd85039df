package request

// QuoteRequest asks for a price for an in-progress selection. Membership is
// resolved server-side from the session, never trusted from the client.
type QuoteRequest struct {
	PitchType string   `json:"pitch_type" validate:"required"`
	Date      string   `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlots []string `json:"time_slots" validate:"required,min=1"`
	Players   int      `json:"players" validate:"required,min=1,max=10"`

	// WeekendPackage overrides the weekend auto-selection when present.
	WeekendPackage *bool `json:"weekend_package,omitempty"`
}

// CheckoutRequest starts a checkout session for the selection.
type CheckoutRequest struct {
	QuoteRequest
}

// ConfirmBookingRequest finalizes a paid checkout session. The original
// booking parameters ride along so the selection can be re-validated and
// re-priced before rows are persisted.
type ConfirmBookingRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	QuoteRequest
}

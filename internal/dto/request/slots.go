package request

// TimeSlotsRequest is parsed from query parameters on GET /api/slots.
type TimeSlotsRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	PitchType string `json:"pitch_type" validate:"required"`
}

// SelectionRequest applies one add or remove to the caller's current
// selection and returns the resulting state.
type SelectionRequest struct {
	Date      string   `json:"date" validate:"required,datetime=2006-01-02"`
	PitchType string   `json:"pitch_type" validate:"required"`
	Mode      string   `json:"mode" validate:"required,oneof=single multiple"`
	Selected  []string `json:"selected"`
	Action    string   `json:"action" validate:"required,oneof=add remove"`
	Slot      string   `json:"slot" validate:"required"`
}

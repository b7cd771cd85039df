package response

// TimeSlotItem is one half-hour slot with its availability flag.
type TimeSlotItem struct {
	Label  string `json:"label"`
	Booked bool   `json:"booked"`
}

// TimeSlotsResponse lists the day's bookable slots for one pitch type.
type TimeSlotsResponse struct {
	Date        string         `json:"date"`
	PitchType   string         `json:"pitch_type"`
	WeekendAuto bool           `json:"weekend_auto"`
	Slots       []TimeSlotItem `json:"slots"`
}

// SelectionResponse reports the selection state after an add/remove. A
// rejected operation leaves Selected as it came in and carries the reason.
type SelectionResponse struct {
	Selected []string `json:"selected"`
	Rejected bool     `json:"rejected"`
	Reason   string   `json:"reason,omitempty"`
}

package entity

import "fmt"

// PitchType is the product line a customer books a lane of.
type PitchType string

const (
	PitchBowlingMachine PitchType = "bowlingMachine"
	PitchNormalLane     PitchType = "normalLane"
	PitchCoaching       PitchType = "coaching"
)

// AllPitchTypes in display order.
var AllPitchTypes = []PitchType{PitchBowlingMachine, PitchNormalLane, PitchCoaching}

// DisplayName is the label persisted in booking rows and shown to customers.
func (p PitchType) DisplayName() string {
	switch p {
	case PitchBowlingMachine:
		return "Bowling Machine Lane"
	case PitchNormalLane:
		return "Normal Practice Lane"
	case PitchCoaching:
		return "Coaching Session"
	}
	return string(p)
}

// HourlyRateCents is the base rate per full hour. Every pitch type has
// exactly one rate.
func (p PitchType) HourlyRateCents() int64 {
	switch p {
	case PitchBowlingMachine:
		return 4500
	case PitchNormalLane:
		return 4000
	case PitchCoaching:
		return 6000
	}
	return 0
}

// Valid reports whether p is a known pitch type.
func (p PitchType) Valid() bool {
	switch p {
	case PitchBowlingMachine, PitchNormalLane, PitchCoaching:
		return true
	}
	return false
}

// ParsePitchType accepts either the enum value or the display name.
func ParsePitchType(s string) (PitchType, error) {
	switch s {
	case string(PitchBowlingMachine), "Bowling Machine Lane":
		return PitchBowlingMachine, nil
	case string(PitchNormalLane), "Normal Practice Lane":
		return PitchNormalLane, nil
	case string(PitchCoaching), "Coaching Session":
		return PitchCoaching, nil
	}
	return "", fmt.Errorf("invalid pitch type %q", s)
}

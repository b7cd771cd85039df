package entity

type MembershipType string

const (
	MembershipBasic   MembershipType = "basic"
	MembershipPremium MembershipType = "premium"
	MembershipJunior  MembershipType = "junior"
)

// Membership is the externally-verified subscription state of a user.
// Sourced from the billing collaborator per request; read-only to pricing.
type Membership struct {
	Active          bool           `json:"active"`
	Type            MembershipType `json:"membership_type,omitempty"`
	DiscountPercent int            `json:"discount,omitempty"`
	FreeHourPerWeek bool           `json:"free_hour_per_week,omitempty"`
}

// NoMembership is the degraded state used when the membership lookup fails;
// booking proceeds with no discount applied.
var NoMembership = Membership{}

// DiscountApplies reports whether the membership discount covers the given
// pitch type. Basic membership excludes the bowling machine lanes.
func (m Membership) DiscountApplies(pitch PitchType) bool {
	if !m.Active {
		return false
	}
	switch m.Type {
	case MembershipPremium, MembershipJunior:
		return true
	case MembershipBasic:
		return pitch != PitchBowlingMachine
	}
	return false
}

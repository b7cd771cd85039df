// Package pricing computes booking prices in integer cents. The adjustment
// order is fixed; every step operates on the amount the previous step
// produced, and override steps short-circuit the rest.
package pricing

import (
	"fmt"
	"math"
	"time"

	"cricket-booking/internal/data/entity"
	"cricket-booking/internal/schedule"
)

// Adjustment names recorded on quotes and sent to the checkout provider in
// the payment description.
const (
	AdjPremiumFreeHour = "Premium Free Hour"
	AdjWeekendPackage  = "Weekend Family Package"
	AdjMembership      = "Membership Discount"
	AdjGroup           = "Group Discount"
	AdjEarlyBird       = "Early Bird Discount"
)

// WeekendPackageCents is the fixed price of the 2-hour normal-lane weekend
// bundle, regardless of slot count.
const WeekendPackageCents int64 = 7000

// Input is everything the engine needs. Membership is injected by the
// caller, never read from ambient state, so quotes are deterministic.
type Input struct {
	Pitch          entity.PitchType
	Date           time.Time
	Slots          []string // ordered slot labels, at least one
	Players        int
	Membership     entity.Membership
	WeekendPackage bool // only meaningful for the normal lane
}

// Adjustment is one applied pricing step with the running amount it produced.
type Adjustment struct {
	Name        string `json:"name"`
	Percent     int    `json:"percent,omitempty"` // discount percent, 0 for fixed overrides
	AmountCents int64  `json:"amount_cents"`      // running amount after this step
}

// Quote is the derived, ephemeral price for one selection. Only the final
// per-slot share is ever persisted, inside booking rows.
type Quote struct {
	BaseCents   int64        `json:"base_cents"`
	Adjustments []Adjustment `json:"adjustments,omitempty"`
	TotalCents  int64        `json:"total_cents"`
}

// FormattedTotal renders the total with two decimal places for display.
func (q Quote) FormattedTotal() string {
	return fmt.Sprintf("$%.2f", float64(q.TotalCents)/100)
}

// Compute runs the rate-adjustment sequence:
//
//  1. base = floor(n/2)*rate + (n%2)*rate/2
//  2. premium free hour (normal lane, exactly 2 slots) forces zero and stops
//  3. weekend package (normal lane) forces the fixed bundle price and stops
//  4. membership discount (basic excluded on bowling machine)
//  5. group discount, 10% off for 5 or more players
//  6. early bird, 15% off weekday starts before 16:00
//
// Multiplicative steps round to the nearest cent before the next step runs.
func Compute(in Input) (*Quote, error) {
	if !in.Pitch.Valid() {
		return nil, fmt.Errorf("invalid pitch type %q", in.Pitch)
	}
	if len(in.Slots) == 0 {
		return nil, fmt.Errorf("at least one slot is required")
	}
	if in.Players < 1 {
		return nil, fmt.Errorf("player count must be at least 1, got %d", in.Players)
	}
	if in.Date.IsZero() {
		return nil, fmt.Errorf("date is required")
	}

	startHour, _, err := schedule.ParseLabel(in.Slots[0])
	if err != nil {
		return nil, fmt.Errorf("first slot: %w", err)
	}

	n := int64(len(in.Slots))
	rate := in.Pitch.HourlyRateCents()

	quote := &Quote{BaseCents: (n/2)*rate + (n%2)*rate/2}
	amount := quote.BaseCents

	// Premium members get one free hour of normal lane per week. Weekly
	// consumption is not tracked here; see the open question in DESIGN.md.
	if in.Membership.Active && in.Membership.Type == entity.MembershipPremium &&
		in.Pitch == entity.PitchNormalLane && len(in.Slots) == 2 {
		quote.Adjustments = append(quote.Adjustments, Adjustment{
			Name: AdjPremiumFreeHour, AmountCents: 0,
		})
		quote.TotalCents = 0
		return quote, nil
	}

	if in.WeekendPackage && in.Pitch == entity.PitchNormalLane {
		quote.Adjustments = append(quote.Adjustments, Adjustment{
			Name: AdjWeekendPackage, AmountCents: WeekendPackageCents,
		})
		quote.TotalCents = WeekendPackageCents
		return quote, nil
	}

	if in.Membership.DiscountApplies(in.Pitch) {
		amount = applyPercentOff(amount, in.Membership.DiscountPercent)
		quote.Adjustments = append(quote.Adjustments, Adjustment{
			Name:        AdjMembership,
			Percent:     in.Membership.DiscountPercent,
			AmountCents: amount,
		})
	}

	if in.Players >= 5 {
		amount = applyPercentOff(amount, 10)
		quote.Adjustments = append(quote.Adjustments, Adjustment{
			Name: AdjGroup, Percent: 10, AmountCents: amount,
		})
	}

	if EarlyBirdEligible(in.Date, startHour) {
		amount = applyPercentOff(amount, 15)
		quote.Adjustments = append(quote.Adjustments, Adjustment{
			Name: AdjEarlyBird, Percent: 15, AmountCents: amount,
		})
	}

	quote.TotalCents = amount
	return quote, nil
}

// EarlyBirdEligible reports whether a slot starting at startHour on date
// qualifies for the weekday before-4-PM discount.
func EarlyBirdEligible(date time.Time, startHour int) bool {
	day := date.Weekday()
	return day >= time.Monday && day <= time.Friday && startHour < 16
}

// WeekendAuto reports whether the weekend package should be pre-selected
// for the given date. The customer can still toggle it off.
func WeekendAuto(date time.Time) bool {
	return date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
}

// SplitShares divides a total across n booking rows. Integer division puts
// the remainder cents on the first row so the shares sum back to the total.
func SplitShares(totalCents int64, n int) []int64 {
	if n <= 0 {
		return nil
	}
	shares := make([]int64, n)
	each := totalCents / int64(n)
	for i := range shares {
		shares[i] = each
	}
	shares[0] += totalCents % int64(n)
	return shares
}

func applyPercentOff(amount int64, percent int) int64 {
	return int64(math.Round(float64(amount) * (1 - float64(percent)/100)))
}

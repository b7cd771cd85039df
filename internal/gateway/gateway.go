// Package gateway holds the thin clients for the external collaborators:
// the checkout/payment provider and the membership billing service. The
// booking core only depends on the interfaces, so tests inject fakes.
package gateway

import (
	"context"

	"cricket-booking/internal/data/entity"

	"github.com/google/uuid"
)

// CheckoutParams is the booking metadata sent with a checkout session. The
// amount is the one computed by the shared pricing engine; the provider
// charges exactly this amount.
type CheckoutParams struct {
	UserID             uuid.UUID `json:"user_id"`
	PitchType          string    `json:"pitch_type"`
	Date               string    `json:"date"`
	TimeSlots          []string  `json:"time_slots"`
	Players            int       `json:"players"`
	EarlyBird          bool      `json:"early_bird"`
	WeekendPackage     bool      `json:"weekend_package"`
	MembershipType     string    `json:"membership_type,omitempty"`
	MembershipDiscount int       `json:"membership_discount,omitempty"`
	AmountCents        int64     `json:"amount_cents"`
	Description        string    `json:"description"`
}

// CheckoutSession is the provider's response to a session create.
type CheckoutSession struct {
	SessionID string `json:"id"`
	URL       string `json:"url"`
}

// VerifyResult is the provider's view of a finished checkout session.
type VerifyResult struct {
	Success  bool              `json:"success"`
	Status   string            `json:"status"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type CheckoutGateway interface {
	CreateSession(ctx context.Context, params *CheckoutParams) (*CheckoutSession, error)
	VerifySession(ctx context.Context, sessionID string) (*VerifyResult, error)
}

// MembershipGateway resolves a user's subscription state. Lookups are
// best-effort; callers degrade to no discount on failure.
type MembershipGateway interface {
	Check(ctx context.Context, userID uuid.UUID) (entity.Membership, error)
}

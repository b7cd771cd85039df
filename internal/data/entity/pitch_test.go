package entity_test

import (
	"testing"

	"cricket-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePitchType(t *testing.T) {
	tests := []struct {
		input   string
		want    entity.PitchType
		wantErr bool
	}{
		{input: "bowlingMachine", want: entity.PitchBowlingMachine},
		{input: "normalLane", want: entity.PitchNormalLane},
		{input: "coaching", want: entity.PitchCoaching},
		{input: "Bowling Machine Lane", want: entity.PitchBowlingMachine},
		{input: "Normal Practice Lane", want: entity.PitchNormalLane},
		{input: "Coaching Session", want: entity.PitchCoaching},
		{input: "squash", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := entity.ParsePitchType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPitchRates(t *testing.T) {
	assert.Equal(t, int64(4500), entity.PitchBowlingMachine.HourlyRateCents())
	assert.Equal(t, int64(4000), entity.PitchNormalLane.HourlyRateCents())
	assert.Equal(t, int64(6000), entity.PitchCoaching.HourlyRateCents())
}

func TestMembershipDiscountApplies(t *testing.T) {
	basic := entity.Membership{Active: true, Type: entity.MembershipBasic, DiscountPercent: 10}
	premium := entity.Membership{Active: true, Type: entity.MembershipPremium, DiscountPercent: 20}
	junior := entity.Membership{Active: true, Type: entity.MembershipJunior, DiscountPercent: 15}

	// Basic covers everything except the bowling machine lanes.
	assert.False(t, basic.DiscountApplies(entity.PitchBowlingMachine))
	assert.True(t, basic.DiscountApplies(entity.PitchNormalLane))
	assert.True(t, basic.DiscountApplies(entity.PitchCoaching))

	for _, pitch := range entity.AllPitchTypes {
		assert.True(t, premium.DiscountApplies(pitch))
		assert.True(t, junior.DiscountApplies(pitch))
	}

	assert.False(t, entity.NoMembership.DiscountApplies(entity.PitchNormalLane))

	inactive := entity.Membership{Active: false, Type: entity.MembershipPremium}
	assert.False(t, inactive.DiscountApplies(entity.PitchNormalLane))
}

package schedule_test

import (
	"testing"
	"time"

	"cricket-booking/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerate(t *testing.T) {
	hours := schedule.DefaultHours()

	tests := []struct {
		name      string
		date      time.Time
		wantCount int
		wantFirst string
		wantLast  string
	}{
		{
			name:      "weekday window",
			date:      date(2026, time.March, 3), // Tuesday
			wantCount: 33,
			wantFirst: "6:00 AM - 6:30 AM",
			wantLast:  "10:00 PM - 10:30 PM",
		},
		{
			name:      "saturday uses weekday window",
			date:      date(2026, time.March, 7),
			wantCount: 33,
			wantFirst: "6:00 AM - 6:30 AM",
			wantLast:  "10:00 PM - 10:30 PM",
		},
		{
			name:      "sunday window",
			date:      date(2026, time.March, 8),
			wantCount: 21,
			wantFirst: "9:00 AM - 9:30 AM",
			wantLast:  "7:00 PM - 7:30 PM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := schedule.Generate(tt.date, hours)

			require.Len(t, slots, tt.wantCount)
			assert.Equal(t, tt.wantFirst, slots[0].Label)
			assert.Equal(t, tt.wantLast, slots[len(slots)-1].Label)
		})
	}
}

func TestGenerateZeroDate(t *testing.T) {
	slots := schedule.Generate(time.Time{}, schedule.DefaultHours())
	assert.Empty(t, slots)
}

func TestGenerateOrderingAndAdjacency(t *testing.T) {
	slots := schedule.Generate(date(2026, time.March, 4), schedule.DefaultHours())
	require.NotEmpty(t, slots)

	for i, s := range slots {
		assert.Equal(t, i, s.Index)

		if i == 0 {
			continue
		}

		// Each slot starts exactly where the previous one ends.
		endHour, endMin := slots[i-1].End()
		assert.Equal(t, endHour, s.StartHour, "slot %d", i)
		assert.Equal(t, endMin, s.StartMinute, "slot %d", i)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	d := date(2026, time.March, 4)
	hours := schedule.DefaultHours()

	first := schedule.Generate(d, hours)
	second := schedule.Generate(d, hours)

	assert.Equal(t, first, second)
}

func TestGenerateLabelsUnique(t *testing.T) {
	slots := schedule.Generate(date(2026, time.March, 4), schedule.DefaultHours())

	seen := make(map[string]bool)
	for _, s := range slots {
		assert.False(t, seen[s.Label], "duplicate label %q", s.Label)
		seen[s.Label] = true
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		label    string
		wantHour int
		wantMin  int
		wantErr  bool
	}{
		{label: "6:00 AM - 6:30 AM", wantHour: 6, wantMin: 0},
		{label: "11:30 AM - 12:00 PM", wantHour: 11, wantMin: 30},
		{label: "12:00 PM - 12:30 PM", wantHour: 12, wantMin: 0},
		{label: "12:30 AM - 1:00 AM", wantHour: 0, wantMin: 30},
		{label: "1:00 PM - 1:30 PM", wantHour: 13, wantMin: 0},
		{label: "10:00 PM - 10:30 PM", wantHour: 22, wantMin: 0},
		{label: "nonsense", wantErr: true},
		{label: "1:15 PM - 1:45 PM", wantErr: true},
		{label: "13:00 XX - 13:30 XX", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			hour, minute, err := schedule.ParseLabel(tt.label)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, hour)
			assert.Equal(t, tt.wantMin, minute)
		})
	}
}

func TestParseLabelRoundTrip(t *testing.T) {
	// Every generated label must parse back to the slot's own start time.
	for _, d := range []time.Time{date(2026, time.March, 4), date(2026, time.March, 8)} {
		for _, s := range schedule.Generate(d, schedule.DefaultHours()) {
			hour, minute, err := schedule.ParseLabel(s.Label)
			require.NoError(t, err, "label %q", s.Label)
			assert.Equal(t, s.StartHour, hour, "label %q", s.Label)
			assert.Equal(t, s.StartMinute, minute, "label %q", s.Label)
		}
	}
}

func TestPartition(t *testing.T) {
	slots := schedule.Generate(date(2026, time.March, 4), schedule.DefaultHours())
	booked := []string{
		"7:00 AM - 7:30 AM",
		"1:00 PM - 1:30 PM",
		"9:99 ZZ - nonsense", // not a real label, must be ignored
	}

	avail := schedule.Partition(slots, booked)
	require.Len(t, avail, len(slots))

	bookedCount := 0
	for _, a := range avail {
		if a.Booked {
			bookedCount++
			assert.Contains(t, booked, a.Label)
		}
	}
	assert.Equal(t, 2, bookedCount)
}

func TestPartitionNoBookings(t *testing.T) {
	slots := schedule.Generate(date(2026, time.March, 4), schedule.DefaultHours())

	for _, a := range schedule.Partition(slots, nil) {
		assert.False(t, a.Booked)
	}
}

func TestIndexOf(t *testing.T) {
	slots := schedule.Generate(date(2026, time.March, 4), schedule.DefaultHours())

	assert.Equal(t, 0, schedule.IndexOf(slots, "6:00 AM - 6:30 AM"))
	assert.Equal(t, 1, schedule.IndexOf(slots, "6:30 AM - 7:00 AM"))
	assert.Equal(t, -1, schedule.IndexOf(slots, "5:30 AM - 6:00 AM"))
}

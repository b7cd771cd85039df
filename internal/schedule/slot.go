package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Slot is one bookable half-hour interval on a specific date. The label is
// the storage join key for availability checks, so it must be rendered
// byte-identically on every call ("1:00 PM - 1:30 PM").
type Slot struct {
	Index       int
	Label       string
	StartHour   int // 24-hour clock
	StartMinute int // 0 or 30
}

// End returns the end of the interval in 24-hour clock terms.
func (s Slot) End() (hour, minute int) {
	if s.StartMinute == 30 {
		return s.StartHour + 1, 0
	}
	return s.StartHour, 30
}

// Generate produces the ordered slot sequence for the given date. The zero
// date means no date has been picked yet and yields an empty sequence;
// callers must treat that as "not yet determinable", not "fully booked".
//
// The sequence covers the day's window in half-hour steps. The half hour
// leading into the closing hour is not emitted, so nothing extends past the
// configured close.
func Generate(date time.Time, hours Hours) []Slot {
	if date.IsZero() {
		return nil
	}

	open, close := hours.Window(date.Weekday())

	var slots []Slot
	for hour := open; hour < close; hour++ {
		slots = append(slots, Slot{
			Index:     len(slots),
			Label:     fmt.Sprintf("%s - %s", clock12(hour, 0), clock12(hour, 30)),
			StartHour: hour,
		})

		if hour < close-1 {
			slots = append(slots, Slot{
				Index:       len(slots),
				Label:       fmt.Sprintf("%s - %s", clock12(hour, 30), clock12(hour+1, 0)),
				StartHour:   hour,
				StartMinute: 30,
			})
		}
	}

	return slots
}

// clock12 renders a 24-hour clock time as "1:30 PM".
func clock12(hour, minute int) string {
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}

	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour12, minute, meridiem)
}

// ParseLabel extracts the 24-hour start time from a slot label. It is the
// inverse of the label rendering in Generate.
func ParseLabel(label string) (hour, minute int, err error) {
	start, _, ok := strings.Cut(label, " - ")
	if !ok {
		return 0, 0, fmt.Errorf("malformed slot label %q", label)
	}

	clock, meridiem, ok := strings.Cut(strings.TrimSpace(start), " ")
	if !ok {
		return 0, 0, fmt.Errorf("malformed slot time %q", start)
	}

	hourStr, minStr, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, 0, fmt.Errorf("malformed slot time %q", start)
	}

	hour, err = strconv.Atoi(hourStr)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed slot hour %q: %w", hourStr, err)
	}
	minute, err = strconv.Atoi(minStr)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed slot minute %q: %w", minStr, err)
	}

	switch meridiem {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, 0, fmt.Errorf("malformed slot meridiem %q", meridiem)
	}

	if hour < 0 || hour > 23 || (minute != 0 && minute != 30) {
		return 0, 0, fmt.Errorf("slot time %q out of range", start)
	}

	return hour, minute, nil
}

// IndexOf returns the position of label within the generated sequence, or -1
// if the label does not belong to it.
func IndexOf(slots []Slot, label string) int {
	for _, s := range slots {
		if s.Label == label {
			return s.Index
		}
	}
	return -1
}

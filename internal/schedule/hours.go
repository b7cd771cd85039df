package schedule

import "time"

// Hours is the facility's operating-hours table, in whole 24-hour clock
// hours. Sundays run a shorter window than the rest of the week.
type Hours struct {
	WeekdayOpen  int
	WeekdayClose int
	SundayOpen   int
	SundayClose  int
}

// DefaultHours matches the facility's published schedule:
// Mon-Sat 06:00-23:00, Sun 09:00-20:00.
func DefaultHours() Hours {
	return Hours{
		WeekdayOpen:  6,
		WeekdayClose: 23,
		SundayOpen:   9,
		SundayClose:  20,
	}
}

// Window returns the opening and closing hour for the given day of week.
func (h Hours) Window(day time.Weekday) (open, close int) {
	if day == time.Sunday {
		return h.SundayOpen, h.SundayClose
	}
	return h.WeekdayOpen, h.WeekdayClose
}

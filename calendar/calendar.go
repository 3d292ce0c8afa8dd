package calendar

import "time"

// Date is a calendar-system-specific date, distinct from the absolute
// instant it represents. Month and Day are 1-based. Weekday is the
// 0-based index into the owning system's week layout, so index 0 is
// Saturday for Jalali and Sunday for Gregorian.
type Date struct {
	Year    int
	Month   int
	Day     int
	Weekday int
	Holiday bool
	GrayOut bool
}

// SameDay reports whether two dates name the same civil day,
// ignoring the tag fields.
func (d Date) SameDay(other Date) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

// IsZero reports whether d is the zero sentinel returned by failed
// conversions.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// System is a display calendar. Implementations are stateless and
// safe to share; all methods are pure arithmetic.
type System interface {
	Name() string

	// RTL reports whether the system's script runs right to left,
	// which mirrors the panel layout and inverts the physical
	// meaning of the left/right navigation buttons.
	RTL() bool

	// MinYear and MaxYear bound the span in which conversions are
	// exact. Dates outside the span have no representation.
	MinYear() int
	MaxYear() int

	Months() []string
	Days() []string

	// MonthDays returns the day count of a month, or 0 when the
	// month is outside the calendar.
	MonthDays(year, month int) int

	// FromTime converts an absolute instant to the system's date,
	// reporting false when the instant falls outside the year span.
	FromTime(t time.Time) (Date, bool)

	// ToTime converts a date back to a midnight-UTC instant,
	// reporting false for dates the calendar cannot represent.
	ToTime(d Date) (time.Time, bool)

	// WeekdayIndex maps a Go weekday onto the system's week layout.
	WeekdayIndex(w time.Weekday) int
}

const monthsPerYear = 12

// NextMonth advances one month, wrapping month 12 into month 1 of the
// following year.
func NextMonth(year, month int) (int, int) {
	if month >= monthsPerYear {
		return year + 1, 1
	}
	return year, month + 1
}

// PrevMonth steps back one month, wrapping month 1 into month 12 of
// the preceding year.
func PrevMonth(year, month int) (int, int) {
	if month <= 1 {
		return year - 1, monthsPerYear
	}
	return year, month - 1
}

package calendar

import "time"

// Gregorian is the civil calendar, included mainly to keep the System
// contract honest with a second, unbounded-ish implementation. The
// week starts on Sunday.
type Gregorian struct{}

const (
	gregorianMinYear = 1
	gregorianMaxYear = 9999
)

var gregorianMonths = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var gregorianDays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

func (Gregorian) Name() string { return "gregorian" }
func (Gregorian) RTL() bool    { return false }
func (Gregorian) MinYear() int { return gregorianMinYear }
func (Gregorian) MaxYear() int { return gregorianMaxYear }

func (Gregorian) Months() []string { return gregorianMonths }
func (Gregorian) Days() []string   { return gregorianDays }

func (Gregorian) WeekdayIndex(w time.Weekday) int { return int(w) % 7 }

func (Gregorian) MonthDays(year, month int) int {
	if year < gregorianMinYear || year > gregorianMaxYear || month < 1 || month > 12 {
		return 0
	}
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (g Gregorian) FromTime(t time.Time) (Date, bool) {
	y, m, d := t.UTC().Date()
	if y < gregorianMinYear || y > gregorianMaxYear {
		return Date{}, false
	}
	return Date{
		Year:    y,
		Month:   int(m),
		Day:     d,
		Weekday: g.WeekdayIndex(t.UTC().Weekday()),
	}, true
}

func (g Gregorian) ToTime(d Date) (time.Time, bool) {
	if d.Year < gregorianMinYear || d.Year > gregorianMaxYear {
		return time.Time{}, false
	}
	if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > g.MonthDays(d.Year, d.Month) {
		return time.Time{}, false
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC), true
}

package calendar

import "time"

// Grid is one month's panel content: leading gray-out cells from the
// previous month, the month's days, and trailing gray-out cells from
// the next month, padded to whole weeks.
type Grid struct {
	Year  int
	Month int
	Cells []Date
}

type gridKey struct {
	year  int
	month int
}

// Service answers picker queries against one calendar system, tagging
// dates with the system's holiday table and caching month grids.
// Everything runs on the UI event loop, so no locking.
type Service struct {
	sys      System
	holidays *Table
	grids    map[gridKey]*Grid
	now      func() time.Time
}

// NewService wraps a system and its holiday table. A nil table means
// no date is ever flagged.
func NewService(sys System, holidays *Table) *Service {
	return &Service{
		sys:      sys,
		holidays: holidays,
		grids:    make(map[gridKey]*Grid),
		now:      time.Now,
	}
}

func (s *Service) System() System { return s.sys }

// SetClock replaces the time source used by Today. Nil restores the
// wall clock.
func (s *Service) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	s.now = now
}

// Dates returns the ordered days of a month, each tagged with its
// weekday index and holiday flag. Months outside the calendar yield
// nil.
func (s *Service) Dates(year, month int) []Date {
	count := s.sys.MonthDays(year, month)
	if count == 0 {
		return nil
	}
	first, ok := s.sys.ToTime(Date{Year: year, Month: month, Day: 1})
	if !ok {
		return nil
	}
	startWeekday := s.sys.WeekdayIndex(first.Weekday())

	out := make([]Date, count)
	for i := 0; i < count; i++ {
		d := Date{
			Year:    year,
			Month:   month,
			Day:     i + 1,
			Weekday: (startWeekday + i) % 7,
		}
		d.Holiday = s.holidays.IsHoliday(d.Month, d.Day, d.Weekday)
		out[i] = d
	}
	return out
}

// Grid returns the padded month grid, building and caching it on
// first use. Cached grids are immutable; callers must not mutate the
// returned cells.
func (s *Service) Grid(year, month int) *Grid {
	key := gridKey{year: year, month: month}
	if g, ok := s.grids[key]; ok {
		return g
	}
	days := s.Dates(year, month)
	if days == nil {
		return nil
	}

	lead := days[0].Weekday
	cells := make([]Date, 0, lead+len(days)+7)

	py, pm := PrevMonth(year, month)
	prevCount := s.sys.MonthDays(py, pm)
	for i := 0; i < lead; i++ {
		day := prevCount - lead + 1 + i
		if prevCount == 0 {
			// Before the first representable month there is
			// nothing to fill from; leave a blank cell.
			cells = append(cells, Date{GrayOut: true})
			continue
		}
		cells = append(cells, Date{
			Year:    py,
			Month:   pm,
			Day:     day,
			Weekday: i,
			GrayOut: true,
		})
	}
	cells = append(cells, days...)

	ny, nm := NextMonth(year, month)
	nextCount := s.sys.MonthDays(ny, nm)
	day := 1
	for len(cells)%7 != 0 {
		weekday := len(cells) % 7
		if nextCount == 0 {
			cells = append(cells, Date{GrayOut: true})
			continue
		}
		cells = append(cells, Date{
			Year:    ny,
			Month:   nm,
			Day:     day,
			Weekday: weekday,
			GrayOut: true,
		})
		day++
	}

	g := &Grid{Year: year, Month: month, Cells: cells}
	s.grids[key] = g
	return g
}

// Months returns the system's month names.
func (s *Service) Months() []string { return s.sys.Months() }

// Days returns the system's weekday names in week order.
func (s *Service) Days() []string { return s.sys.Days() }

// Contains reports whether the year is inside the calendar span.
func (s *Service) Contains(year int) bool {
	return year >= s.sys.MinYear() && year <= s.sys.MaxYear()
}

// ContainsMonth reports whether (year, month) names a real month of
// the calendar.
func (s *Service) ContainsMonth(year, month int) bool {
	return s.sys.MonthDays(year, month) > 0
}

// FromTime converts an instant, tagging the result. The bool is false
// when the instant has no representation in the system.
func (s *Service) FromTime(t time.Time) (Date, bool) {
	d, ok := s.sys.FromTime(t)
	if !ok {
		return Date{}, false
	}
	d.Holiday = s.holidays.IsHoliday(d.Month, d.Day, d.Weekday)
	return d, true
}

// ToTime converts a date to its midnight-UTC instant.
func (s *Service) ToTime(d Date) (time.Time, bool) {
	return s.sys.ToTime(d)
}

// Today returns the current day in the system. The bool is false when
// the present falls outside the calendar span, which only happens for
// deliberately narrow test systems.
func (s *Service) Today() (Date, bool) {
	return s.FromTime(s.now())
}

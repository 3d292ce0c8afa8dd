package calendar

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Table flags holidays for a calendar system: fixed month/day entries
// plus weekly off-days. Movable religious holidays do not fall on
// fixed solar dates, so they arrive through override files instead of
// the built-in tables.
type Table struct {
	fixed   map[[2]int]string
	weekend map[int]bool
}

type holidayEntry struct {
	Month int    `toml:"month"`
	Day   int    `toml:"day"`
	Name  string `toml:"name"`
}

type holidayFile struct {
	Holiday []holidayEntry `toml:"holiday"`
	Weekend []int          `toml:"weekend"`
}

// NewTable builds a table from fixed month/day entries and weekday
// indices that count as the weekly off-day.
func NewTable(fixed map[[2]int]string, weekend ...int) *Table {
	t := &Table{
		fixed:   make(map[[2]int]string, len(fixed)),
		weekend: make(map[int]bool, len(weekend)),
	}
	for k, v := range fixed {
		t.fixed[k] = v
	}
	for _, w := range weekend {
		t.weekend[w] = true
	}
	return t
}

// JalaliTable carries the fixed-date national holidays of the Iranian
// calendar and Friday as the weekly off-day.
func JalaliTable() *Table {
	return NewTable(map[[2]int]string{
		{1, 1}:   "Nowruz",
		{1, 2}:   "Nowruz",
		{1, 3}:   "Nowruz",
		{1, 4}:   "Nowruz",
		{1, 12}:  "Islamic Republic Day",
		{1, 13}:  "Nature Day",
		{3, 14}:  "Demise of Imam Khomeini",
		{3, 15}:  "Khordad Uprising",
		{11, 22}: "Revolution Day",
		{12, 29}: "Oil Nationalization Day",
	}, Jalali{}.WeekdayIndex(time.Friday))
}

// GregorianTable has no fixed entries; Saturday and Sunday are the
// weekly off-days.
func GregorianTable() *Table {
	return NewTable(nil,
		Gregorian{}.WeekdayIndex(time.Saturday),
		Gregorian{}.WeekdayIndex(time.Sunday))
}

// IsHoliday reports whether the (month, day) pair or the weekday index
// is flagged by the table.
func (t *Table) IsHoliday(month, day, weekday int) bool {
	if t == nil {
		return false
	}
	if t.weekend[weekday] {
		return true
	}
	_, ok := t.fixed[[2]int{month, day}]
	return ok
}

// HolidayName returns the registered name of a fixed holiday, or ""
// when the date is not one.
func (t *Table) HolidayName(month, day int) string {
	if t == nil {
		return ""
	}
	return t.fixed[[2]int{month, day}]
}

// LoadOverrides merges a TOML holiday file over the table. Fixed
// entries are added (same-date entries replaced); a non-empty weekend
// list replaces the weekly off-days wholesale.
func (t *Table) LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read holidays: %w", err)
	}
	return t.mergeOverrides(data)
}

func (t *Table) mergeOverrides(data []byte) error {
	var f holidayFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse holidays.toml: %w", err)
	}
	for i, h := range f.Holiday {
		if h.Month < 1 || h.Month > 12 || h.Day < 1 || h.Day > 31 {
			return fmt.Errorf("holiday[%d]: month/day out of range", i)
		}
		name := h.Name
		if name == "" {
			name = "Holiday"
		}
		t.fixed[[2]int{h.Month, h.Day}] = name
	}
	if len(f.Weekend) > 0 {
		t.weekend = make(map[int]bool, len(f.Weekend))
		for i, w := range f.Weekend {
			if w < 0 || w > 6 {
				return fmt.Errorf("weekend[%d]: weekday index out of range", i)
			}
			t.weekend[w] = true
		}
	}
	return nil
}

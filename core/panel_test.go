package core

import (
	"testing"
	"time"

	"github.com/jask/jaskdate/calendar"
)

func newJalaliPanel(t *testing.T) *Panel {
	t.Helper()
	svc := calendar.NewService(calendar.Jalali{}, calendar.JalaliTable())
	// 2025-08-30 is 1404/06/08.
	svc.SetClock(func() time.Time {
		return time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)
	})
	return NewPanel(svc)
}

func newGregorianPanel(t *testing.T) *Panel {
	t.Helper()
	svc := calendar.NewService(calendar.Gregorian{}, calendar.GregorianTable())
	return NewPanel(svc)
}

func TestPanelNavRoundTrip(t *testing.T) {
	tests := []struct {
		year, month int
	}{
		{1404, 5},
		{1404, 12},
		{1403, 1},
		{1390, 6},
	}
	for _, tt := range tests {
		p := newJalaliPanel(t)
		p.Open(calendar.Date{Year: tt.year, Month: tt.month, Day: 1})

		if res := p.NavButton(true); res.Action != PanelActionNavigated {
			t.Fatalf("NavButton(left) at %d/%d action = %v, want Navigated", tt.year, tt.month, res.Action)
		}
		if res := p.NavButton(false); res.Action != PanelActionNavigated {
			t.Fatalf("NavButton(right) action = %v, want Navigated", res.Action)
		}
		y, m := p.Showing()
		if y != tt.year || m != tt.month {
			t.Fatalf("round trip from %d/%d ended at %d/%d", tt.year, tt.month, y, m)
		}
	}
}

func TestPanelNavWrapsYear(t *testing.T) {
	p := newJalaliPanel(t)
	p.Open(calendar.Date{Year: 1404, Month: 12, Day: 1})

	// Jalali is RTL: the left button moves toward later time.
	p.NavButton(true)
	if y, m := p.Showing(); y != 1405 || m != 1 {
		t.Fatalf("after forward nav = %d/%d, want 1405/1", y, m)
	}
	p.NavButton(false)
	if y, m := p.Showing(); y != 1404 || m != 12 {
		t.Fatalf("after backward nav = %d/%d, want 1404/12", y, m)
	}
}

func TestPanelRTLInvertsButtons(t *testing.T) {
	jp := newJalaliPanel(t)
	jp.Open(calendar.Date{Year: 1404, Month: 5, Day: 1})
	jp.NavButton(true)
	if _, m := jp.Showing(); m != 6 {
		t.Fatalf("jalali left button month = %d, want 6 (later)", m)
	}

	gp := newGregorianPanel(t)
	gp.Open(calendar.Date{Year: 2025, Month: 5, Day: 1})
	gp.NavButton(true)
	if _, m := gp.Showing(); m != 4 {
		t.Fatalf("gregorian left button month = %d, want 4 (earlier)", m)
	}
}

func TestPanelViewCycle(t *testing.T) {
	p := newJalaliPanel(t)
	if p.IsOpen() {
		t.Fatalf("new panel reports open")
	}
	if res := p.HandleKey("left"); res.Action != PanelActionNone {
		t.Fatalf("closed panel handled key, action = %v", res.Action)
	}

	p.Open(calendar.Date{Year: 1404, Month: 6, Day: 8})
	if p.View() != ViewDate {
		t.Fatalf("view after Open = %v, want ViewDate", p.View())
	}

	if res := p.HandleKey("m"); res.Action != PanelActionViewChanged {
		t.Fatalf("m action = %v, want ViewChanged", res.Action)
	}
	if p.View() != ViewMonth {
		t.Fatalf("view after m = %v, want ViewMonth", p.View())
	}
	p.HandleKey("left")
	if res := p.HandleKey("enter"); res.Action != PanelActionViewChanged {
		t.Fatalf("month select action = %v, want ViewChanged", res.Action)
	}
	if p.View() != ViewDate {
		t.Fatalf("view after month select = %v, want ViewDate", p.View())
	}
	if _, m := p.Showing(); m != 5 {
		t.Fatalf("month after selecting previous cell = %d, want 5", m)
	}

	if res := p.HandleKey("y"); res.Action != PanelActionViewChanged {
		t.Fatalf("y action = %v, want ViewChanged", res.Action)
	}
	if p.View() != ViewYear {
		t.Fatalf("view after y = %v, want ViewYear", p.View())
	}
	if res := p.HandleKey("enter"); res.Action != PanelActionViewChanged {
		t.Fatalf("year select action = %v, want ViewChanged", res.Action)
	}
	if y, _ := p.Showing(); y != 1404 {
		t.Fatalf("year after selecting anchor cell = %d, want 1404", y)
	}

	if res := p.HandleKey("esc"); res.Action != PanelActionClosed {
		t.Fatalf("esc action = %v, want Closed", res.Action)
	}
	if p.IsOpen() {
		t.Fatalf("panel still open after esc")
	}
}

func TestPanelSelectDate(t *testing.T) {
	p := newJalaliPanel(t)
	p.Open(calendar.Date{Year: 1404, Month: 6, Day: 8})

	res := p.HandleKey("enter")
	if res.Action != PanelActionPicked {
		t.Fatalf("enter action = %v, want Picked", res.Action)
	}
	want := calendar.Date{Year: 1404, Month: 6, Day: 8}
	if !res.Date.SameDay(want) {
		t.Fatalf("picked %d/%d/%d, want 1404/6/8", res.Date.Year, res.Date.Month, res.Date.Day)
	}
	// 1404/06/08 is 2025-08-30, a Saturday: first weekday column.
	if res.Date.Weekday != 0 {
		t.Fatalf("picked weekday = %d, want 0", res.Date.Weekday)
	}
	if !p.IsOpen() {
		t.Fatalf("picking closed the panel")
	}
}

func TestPanelTodayKey(t *testing.T) {
	p := newJalaliPanel(t)
	p.Open(calendar.Date{Year: 1390, Month: 2, Day: 20})

	if res := p.HandleKey("t"); res.Action != PanelActionNavigated {
		t.Fatalf("t action = %v, want Navigated", res.Action)
	}
	if y, m := p.Showing(); y != 1404 || m != 6 {
		t.Fatalf("after t showing %d/%d, want 1404/6", y, m)
	}
}

func TestPanelDateBoundsRefuseNav(t *testing.T) {
	p := newJalaliPanel(t)
	minYear := p.svc.System().MinYear()
	p.Open(calendar.Date{Year: minYear, Month: 1, Day: 1})

	// Right button moves earlier under RTL; there is no earlier month.
	if res := p.NavButton(false); res.Action != PanelActionNone {
		t.Fatalf("nav past min boundary action = %v, want None", res.Action)
	}
	if y, m := p.Showing(); y != minYear || m != 1 {
		t.Fatalf("showing moved to %d/%d at boundary", y, m)
	}
}

func TestPanelYearBlockBoundaries(t *testing.T) {
	minYear := calendar.Jalali{}.MinYear()
	maxYear := calendar.Jalali{}.MaxYear()

	tests := []struct {
		name        string
		anchor      int
		refuseEarly bool
		refuseLate  bool
	}{
		{"at min", minYear, true, false},
		{"at max", maxYear, false, true},
		{"interior", 1404, false, false},
	}
	for _, tt := range tests {
		p := newJalaliPanel(t)
		p.Open(calendar.Date{Year: tt.anchor, Month: 1, Day: 1})
		p.HandleKey("y")

		start, count := p.yearBlock()
		if start < minYear || start+count-1 > maxYear {
			t.Fatalf("%s: block [%d,%d] leaves calendar span", tt.name, start, start+count-1)
		}
		if count != maxYearPickerCount {
			t.Fatalf("%s: block size = %d, want %d", tt.name, count, maxYearPickerCount)
		}

		// Right button is earlier and left is later under RTL.
		early := p.NavButton(false)
		if refused := early.Action == PanelActionNone; refused != tt.refuseEarly {
			t.Fatalf("%s: earlier nav refused = %v, want %v", tt.name, refused, tt.refuseEarly)
		}

		p2 := newJalaliPanel(t)
		p2.Open(calendar.Date{Year: tt.anchor, Month: 1, Day: 1})
		p2.HandleKey("y")
		late := p2.NavButton(true)
		if refused := late.Action == PanelActionNone; refused != tt.refuseLate {
			t.Fatalf("%s: later nav refused = %v, want %v", tt.name, refused, tt.refuseLate)
		}
	}
}

func TestPanelParamsBoundaryFlagsRTL(t *testing.T) {
	p := newJalaliPanel(t)
	minYear := p.svc.System().MinYear()
	p.Open(calendar.Date{Year: minYear, Month: 1, Day: 1})
	p.HandleKey("y")

	params := p.Params()
	if !params.RTL {
		t.Fatalf("jalali params RTL = false")
	}
	// No earlier block exists; under RTL that is the right button.
	if !params.NoMoreRight {
		t.Fatalf("NoMoreRight = false at min year block")
	}
	if params.NoMoreLeft {
		t.Fatalf("NoMoreLeft = true at min year block")
	}
}

func TestPanelParamsDateView(t *testing.T) {
	p := newJalaliPanel(t)
	p.Open(calendar.Date{Year: 1404, Month: 1, Day: 10})
	p.SetPicked(&calendar.Date{Year: 1404, Month: 1, Day: 10})

	params := p.Params()
	if params.Columns != 7 {
		t.Fatalf("Columns = %d, want 7", params.Columns)
	}
	if len(params.DayNames) != 7 {
		t.Fatalf("DayNames = %d entries, want 7", len(params.DayNames))
	}
	if len(params.Cells)%7 != 0 {
		t.Fatalf("cell count %d not a whole number of weeks", len(params.Cells))
	}

	var cursor, picked int
	for _, c := range params.Cells {
		if c.Cursor {
			cursor++
			if c.Value != 10 {
				t.Fatalf("cursor on day %d, want 10", c.Value)
			}
		}
		if c.Picked {
			picked++
		}
	}
	if cursor != 1 || picked != 1 {
		t.Fatalf("cursor cells = %d, picked cells = %d, want 1 and 1", cursor, picked)
	}
}

func TestPanelCursorStaysInMonth(t *testing.T) {
	p := newJalaliPanel(t)
	p.Open(calendar.Date{Year: 1404, Month: 6, Day: 1})

	if res := p.HandleKey("left"); res.Action != PanelActionNone {
		t.Fatalf("cursor moved before day 1, action = %v", res.Action)
	}
	for i := 0; i < 40; i++ {
		p.HandleKey("right")
	}
	res := p.HandleKey("enter")
	if res.Action != PanelActionPicked || res.Date.Day != 31 {
		t.Fatalf("cursor past month end picked day %d, want 31", res.Date.Day)
	}
}

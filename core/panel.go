package core

import (
	"fmt"

	"github.com/jask/jaskdate/calendar"
)

// View names the panel sub-view. Closed → Date → Month/Year → Date is
// the full cycle; Closed is reachable from anywhere.
type View int

const (
	ViewClosed View = iota
	ViewDate
	ViewMonth
	ViewYear
)

// maxYearPickerCount is the fixed size of the visible year block.
const maxYearPickerCount = 12

// pickerColumns is the grid width of the month and year sub-views.
const pickerColumns = 4

type PanelAction int

const (
	PanelActionNone PanelAction = iota
	PanelActionMoved
	PanelActionNavigated
	PanelActionViewChanged
	PanelActionPicked
	PanelActionClosed
)

type PanelResult struct {
	Action PanelAction
	Date   calendar.Date
}

// PanelCell is one selectable cell of the rendered panel.
type PanelCell struct {
	Label   string
	Date    calendar.Date
	Value   int
	GrayOut bool
	Holiday bool
	Today   bool
	Picked  bool
	Cursor  bool
}

// PanelParams is the transient view-model handed to the rendering
// layer. It is rebuilt on every render and never stored.
type PanelParams struct {
	View       View
	Title      string
	MonthLabel string
	YearLabel  string
	LeftLabel  string
	RightLabel string
	DayNames   []string
	Columns    int
	Cells      []PanelCell
	NoMoreLeft  bool
	NoMoreRight bool
	RTL         bool
}

// Panel is the floating calendar's state machine. It owns the view
// cycle, the displayed month, the year-picker anchor, and the cell
// cursor; the picked date belongs to the owning Input.
type Panel struct {
	svc        *calendar.Service
	view       View
	year       int
	month      int
	anchorYear int
	cursor     int
	picked     *calendar.Date
}

func NewPanel(svc *calendar.Service) *Panel {
	return &Panel{svc: svc, view: ViewClosed}
}

// Open shows the date view seeded at the given date.
func (p *Panel) Open(seed calendar.Date) {
	p.view = ViewDate
	p.year = seed.Year
	p.month = seed.Month
	p.anchorYear = seed.Year
	p.cursor = seed.Day - 1
	p.clampCursor()
}

func (p *Panel) Close() {
	p.view = ViewClosed
}

func (p *Panel) IsOpen() bool {
	return p.view != ViewClosed
}

func (p *Panel) View() View { return p.view }

// Showing returns the currently displayed (year, month).
func (p *Panel) Showing() (int, int) { return p.year, p.month }

// SetPicked updates the highlight; nil clears it.
func (p *Panel) SetPicked(d *calendar.Date) {
	if d == nil {
		p.picked = nil
		return
	}
	copied := *d
	p.picked = &copied
}

// HandleKey drives the state machine from a key name. Unknown keys
// are ignored, which also covers malformed synthetic events.
func (p *Panel) HandleKey(keyName string) PanelResult {
	if p == nil || p.view == ViewClosed {
		return PanelResult{Action: PanelActionNone}
	}
	switch keyName {
	case "esc":
		p.Close()
		return PanelResult{Action: PanelActionClosed}
	case "left", "h":
		return p.moveCursor(-1)
	case "right", "l":
		return p.moveCursor(1)
	case "up", "k":
		return p.moveCursor(-p.columns())
	case "down", "j":
		return p.moveCursor(p.columns())
	case "[", "pgup":
		return p.NavButton(true)
	case "]", "pgdown":
		return p.NavButton(false)
	case "m":
		if p.view == ViewDate {
			p.view = ViewMonth
			p.cursor = p.month - 1
			return PanelResult{Action: PanelActionViewChanged}
		}
		return PanelResult{Action: PanelActionNone}
	case "y":
		if p.view == ViewDate || p.view == ViewMonth {
			p.view = ViewYear
			p.anchorYear = p.year
			start, _ := p.yearBlock()
			p.cursor = p.year - start
			return PanelResult{Action: PanelActionViewChanged}
		}
		return PanelResult{Action: PanelActionNone}
	case "t":
		today, ok := p.svc.Today()
		if !ok {
			return PanelResult{Action: PanelActionNone}
		}
		p.Open(today)
		return PanelResult{Action: PanelActionNavigated}
	case "enter":
		return p.selectCursor()
	default:
		return PanelResult{Action: PanelActionNone}
	}
}

// NavButton presses the physical left or right navigation button. In
// an RTL calendar the left button advances and the right one goes
// back; the flags returned by Params mirror the same inversion.
func (p *Panel) NavButton(left bool) PanelResult {
	dir := 1
	if left {
		dir = -1
	}
	if p.svc.System().RTL() {
		dir = -dir
	}
	return p.navigate(dir)
}

// navigate moves one unit toward earlier (-1) or later (+1) time:
// a month in the date view, a year in the month view, a year block in
// the year view. Moves past the calendar bounds are ignored.
func (p *Panel) navigate(dir int) PanelResult {
	switch p.view {
	case ViewDate:
		var y, m int
		if dir < 0 {
			y, m = calendar.PrevMonth(p.year, p.month)
		} else {
			y, m = calendar.NextMonth(p.year, p.month)
		}
		if !p.svc.ContainsMonth(y, m) {
			return PanelResult{Action: PanelActionNone}
		}
		p.year, p.month = y, m
		p.clampCursor()
		return PanelResult{Action: PanelActionNavigated}
	case ViewMonth:
		y := p.year + dir
		if !p.svc.Contains(y) {
			return PanelResult{Action: PanelActionNone}
		}
		p.year = y
		return PanelResult{Action: PanelActionNavigated}
	case ViewYear:
		start, count := p.yearBlock()
		if dir < 0 && start <= p.svc.System().MinYear() {
			return PanelResult{Action: PanelActionNone}
		}
		if dir > 0 && start+count-1 >= p.svc.System().MaxYear() {
			return PanelResult{Action: PanelActionNone}
		}
		p.anchorYear += dir * maxYearPickerCount
		if _, newCount := p.yearBlock(); p.cursor >= newCount {
			p.cursor = newCount - 1
		}
		return PanelResult{Action: PanelActionNavigated}
	}
	return PanelResult{Action: PanelActionNone}
}

func (p *Panel) selectCursor() PanelResult {
	switch p.view {
	case ViewDate:
		days := p.svc.Dates(p.year, p.month)
		if p.cursor < 0 || p.cursor >= len(days) {
			return PanelResult{Action: PanelActionNone}
		}
		return PanelResult{Action: PanelActionPicked, Date: days[p.cursor]}
	case ViewMonth:
		if p.cursor < 0 || p.cursor > 11 {
			return PanelResult{Action: PanelActionNone}
		}
		p.month = p.cursor + 1
		p.view = ViewDate
		p.cursor = 0
		p.clampCursor()
		return PanelResult{Action: PanelActionViewChanged}
	case ViewYear:
		start, count := p.yearBlock()
		if p.cursor < 0 || p.cursor >= count {
			return PanelResult{Action: PanelActionNone}
		}
		p.year = start + p.cursor
		p.anchorYear = p.year
		p.view = ViewDate
		p.clampCursor()
		return PanelResult{Action: PanelActionViewChanged}
	}
	return PanelResult{Action: PanelActionNone}
}

func (p *Panel) moveCursor(delta int) PanelResult {
	next := p.cursor + delta
	if next < 0 || next >= p.cellCount() {
		return PanelResult{Action: PanelActionNone}
	}
	p.cursor = next
	return PanelResult{Action: PanelActionMoved}
}

func (p *Panel) columns() int {
	if p.view == ViewDate {
		return 7
	}
	return pickerColumns
}

func (p *Panel) cellCount() int {
	switch p.view {
	case ViewDate:
		return p.svc.System().MonthDays(p.year, p.month)
	case ViewMonth:
		return 12
	case ViewYear:
		_, count := p.yearBlock()
		return count
	}
	return 0
}

func (p *Panel) clampCursor() {
	max := p.cellCount() - 1
	if max < 0 {
		p.cursor = 0
		return
	}
	if p.cursor > max {
		p.cursor = max
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// yearBlock computes the visible block of the year picker, keeping
// the anchor roughly centered and the block inside the calendar span.
func (p *Panel) yearBlock() (start, count int) {
	minYear := p.svc.System().MinYear()
	maxYear := p.svc.System().MaxYear()
	span := maxYear - minYear + 1

	count = maxYearPickerCount
	if span < count {
		return minYear, span
	}
	start = p.anchorYear - maxYearPickerCount/2
	if start < minYear {
		start = minYear
	}
	if start+count-1 > maxYear {
		start = maxYear - count + 1
	}
	return start, count
}

// bounds returns whether navigation toward earlier or later time is
// exhausted in the current view.
func (p *Panel) bounds() (noEarlier, noLater bool) {
	switch p.view {
	case ViewDate:
		py, pm := calendar.PrevMonth(p.year, p.month)
		ny, nm := calendar.NextMonth(p.year, p.month)
		return !p.svc.ContainsMonth(py, pm), !p.svc.ContainsMonth(ny, nm)
	case ViewMonth:
		return !p.svc.Contains(p.year - 1), !p.svc.Contains(p.year + 1)
	case ViewYear:
		start, count := p.yearBlock()
		return start <= p.svc.System().MinYear(),
			start+count-1 >= p.svc.System().MaxYear()
	}
	return true, true
}

// Params builds the view-model for the rendering layer.
func (p *Panel) Params() PanelParams {
	rtl := p.svc.System().RTL()
	noEarlier, noLater := p.bounds()
	params := PanelParams{
		View:       p.view,
		LeftLabel:  "‹",
		RightLabel: "›",
		RTL:        rtl,
	}
	// The physical left button maps to "later" under RTL.
	if rtl {
		params.NoMoreLeft, params.NoMoreRight = noLater, noEarlier
	} else {
		params.NoMoreLeft, params.NoMoreRight = noEarlier, noLater
	}

	switch p.view {
	case ViewDate:
		p.fillDateParams(&params)
	case ViewMonth:
		p.fillMonthParams(&params)
	case ViewYear:
		p.fillYearParams(&params)
	}
	return params
}

func (p *Panel) fillDateParams(params *PanelParams) {
	months := p.svc.Months()
	monthName := ""
	if p.month >= 1 && p.month <= len(months) {
		monthName = months[p.month-1]
	}
	params.MonthLabel = monthName
	params.YearLabel = fmt.Sprintf("%d", p.year)
	params.Title = fmt.Sprintf("%s %d", monthName, p.year)
	params.DayNames = p.svc.Days()
	params.Columns = 7

	today, haveToday := p.svc.Today()
	grid := p.svc.Grid(p.year, p.month)
	if grid == nil {
		return
	}
	params.Cells = make([]PanelCell, 0, len(grid.Cells))
	for _, d := range grid.Cells {
		cell := PanelCell{
			Date:    d,
			Value:   d.Day,
			GrayOut: d.GrayOut,
			Holiday: d.Holiday,
		}
		if !d.IsZero() {
			cell.Label = fmt.Sprintf("%d", d.Day)
		}
		if !d.GrayOut {
			cell.Cursor = d.Day-1 == p.cursor
			if haveToday {
				cell.Today = d.SameDay(today)
			}
			if p.picked != nil {
				cell.Picked = d.SameDay(*p.picked)
			}
		}
		params.Cells = append(params.Cells, cell)
	}
}

func (p *Panel) fillMonthParams(params *PanelParams) {
	params.Title = fmt.Sprintf("%d", p.year)
	params.YearLabel = params.Title
	params.Columns = pickerColumns
	months := p.svc.Months()
	params.Cells = make([]PanelCell, 0, len(months))
	for i, name := range months {
		cell := PanelCell{
			Label:  name,
			Value:  i + 1,
			Cursor: i == p.cursor,
		}
		if p.picked != nil {
			cell.Picked = p.picked.Year == p.year && p.picked.Month == i+1
		}
		params.Cells = append(params.Cells, cell)
	}
}

func (p *Panel) fillYearParams(params *PanelParams) {
	start, count := p.yearBlock()
	params.Title = fmt.Sprintf("%d-%d", start, start+count-1)
	params.Columns = pickerColumns
	params.Cells = make([]PanelCell, 0, count)
	for i := 0; i < count; i++ {
		year := start + i
		cell := PanelCell{
			Label:  fmt.Sprintf("%d", year),
			Value:  year,
			Cursor: i == p.cursor,
		}
		if p.picked != nil {
			cell.Picked = p.picked.Year == year
		}
		params.Cells = append(params.Cells, cell)
	}
}

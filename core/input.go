package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/google/uuid"

	"github.com/jask/jaskdate/calendar"
)

// DateObserver receives committed date changes from an Input. One
// method per event kind.
type DateObserver interface {
	DateSet(inputID string, d calendar.Date)
	DateCleared(inputID string)
}

type InputAction int

const (
	InputActionNone InputAction = iota
	InputActionUpdated
	InputActionPicked
	InputActionCleared
	InputActionClosed
	InputActionWarned
)

type InputResult struct {
	Action InputAction
	Status string
	IsErr  bool
}

// Input owns one date field: the picked date and its absolute
// instant, the text box, and the calendar panel. Exactly one of
// "nothing picked" and "picked date matches the stored instant"
// holds at all times; both are mutated only through SetDate and
// Clear.
type Input struct {
	id        string
	label     string
	svc       *calendar.Service
	ctx       *Context
	field     textinput.Model
	panel     *Panel
	picked    *calendar.Date
	instant   time.Time
	typed     bool
	observers []DateObserver
}

func NewInput(ctx *Context, svc *calendar.Service, label, placeholder string) *Input {
	field := textinput.New()
	field.Placeholder = placeholder
	field.Prompt = ""
	field.CharLimit = 10
	return &Input{
		id:    uuid.NewString(),
		label: label,
		svc:   svc,
		ctx:   ctx,
		field: field,
		panel: NewPanel(svc),
	}
}

func (in *Input) ID() string    { return in.id }
func (in *Input) Label() string { return in.label }

func (in *Input) Panel() *Panel { return in.panel }

// IsOpen reports whether this input currently owns the open panel.
func (in *Input) IsOpen() bool {
	return in.panel.IsOpen() && in.ctx.IsOpen(in.id)
}

// FieldView renders the text box, falling back to the placeholder.
func (in *Input) FieldView() string {
	return in.field.View()
}

// FieldText returns the raw text of the box.
func (in *Input) FieldText() string {
	return in.field.Value()
}

// Observe registers an observer for commits on this input.
func (in *Input) Observe(o DateObserver) {
	if o != nil {
		in.observers = append(in.observers, o)
	}
}

// Focus claims the shared open-panel slot and opens the date view,
// seeded at the picked date or today. It returns the id of the input
// that previously owned the panel, "" when none did; the caller must
// close that input's panel.
func (in *Input) Focus() string {
	prev := in.ctx.Claim(in.id)
	seed := in.seedDate()
	in.panel.SetPicked(in.picked)
	in.panel.Open(seed)
	in.field.Focus()
	return prev
}

// ClosePanel closes the panel and releases the shared slot.
func (in *Input) ClosePanel() {
	in.panel.Close()
	in.ctx.Release(in.id)
	in.typed = false
}

func (in *Input) seedDate() calendar.Date {
	if in.picked != nil {
		return *in.picked
	}
	if today, ok := in.svc.Today(); ok {
		return today
	}
	// The present is outside the calendar span; fall back to its
	// first representable day.
	return calendar.Date{Year: in.svc.System().MinYear(), Month: 1, Day: 1}
}

// SetDate commits a date. The stored instant is recomputed from the
// date, discarding any time of day.
func (in *Input) SetDate(d calendar.Date) error {
	instant, ok := in.svc.ToTime(d)
	if !ok {
		return fmt.Errorf("date %d/%d/%d not representable in %s calendar",
			d.Year, d.Month, d.Day, in.svc.System().Name())
	}
	// Round-trip to restore the weekday and holiday tags, which a
	// typed value arrives without.
	d, _ = in.svc.FromTime(instant)
	in.picked = &d
	in.instant = instant
	in.field.SetValue(formatDate(d))
	in.field.CursorEnd()
	in.panel.SetPicked(in.picked)
	in.typed = false
	for _, o := range in.observers {
		o.DateSet(in.id, d)
	}
	return nil
}

// SetTime commits the day an instant falls on, reporting false when
// the instant has no representation.
func (in *Input) SetTime(t time.Time) bool {
	d, ok := in.svc.FromTime(t)
	if !ok {
		return false
	}
	return in.SetDate(d) == nil
}

// Clear drops the picked date and empties the field.
func (in *Input) Clear() {
	had := in.picked != nil
	in.picked = nil
	in.instant = time.Time{}
	in.field.SetValue("")
	in.panel.SetPicked(nil)
	in.typed = false
	if had {
		for _, o := range in.observers {
			o.DateCleared(in.id)
		}
	}
}

func (in *Input) PickedDate() (calendar.Date, bool) {
	if in.picked == nil {
		return calendar.Date{}, false
	}
	return *in.picked, true
}

func (in *Input) PickedTime() (time.Time, bool) {
	if in.picked == nil {
		return time.Time{}, false
	}
	return in.instant, true
}

// HandleKey routes one key. Digits and separators edit the field text
// even while the panel is open; everything else drives the panel.
func (in *Input) HandleKey(keyName string) InputResult {
	switch {
	case isDateTextKey(keyName):
		in.field.SetValue(in.field.Value() + keyName)
		in.field.CursorEnd()
		in.typed = true
		return InputResult{Action: InputActionUpdated}
	case keyName == "backspace":
		v := in.field.Value()
		if v == "" {
			return InputResult{Action: InputActionNone}
		}
		in.field.SetValue(v[:len(v)-1])
		in.field.CursorEnd()
		in.typed = true
		return InputResult{Action: InputActionUpdated}
	case keyName == "enter" && in.typed:
		return in.commitTyped()
	case keyName == "c":
		in.Clear()
		in.ClosePanel()
		return InputResult{Action: InputActionCleared, Status: "Cleared"}
	}

	res := in.panel.HandleKey(keyName)
	switch res.Action {
	case PanelActionPicked:
		if err := in.SetDate(res.Date); err != nil {
			return InputResult{Action: InputActionWarned, Status: err.Error(), IsErr: true}
		}
		return InputResult{
			Action: InputActionPicked,
			Status: "Picked " + formatDate(res.Date),
		}
	case PanelActionClosed:
		in.ClosePanel()
		return InputResult{Action: InputActionClosed}
	case PanelActionNone:
		return InputResult{Action: InputActionNone}
	default:
		return InputResult{Action: InputActionUpdated}
	}
}

// commitTyped parses the field text. A value the calendar cannot
// represent clears the field with a warning instead of failing the
// caller.
func (in *Input) commitTyped() InputResult {
	text := strings.TrimSpace(in.field.Value())
	in.typed = false
	if text == "" {
		in.Clear()
		return InputResult{Action: InputActionCleared, Status: "Cleared"}
	}
	d, err := parseDate(text)
	if err == nil {
		err = in.SetDate(d)
	}
	if err != nil {
		in.Clear()
		return InputResult{
			Action: InputActionWarned,
			Status: fmt.Sprintf("invalid date %q: field cleared", text),
			IsErr:  true,
		}
	}
	if in.panel.IsOpen() {
		in.panel.Open(d)
	}
	return InputResult{Action: InputActionPicked, Status: "Picked " + formatDate(d)}
}

func formatDate(d calendar.Date) string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// parseDate accepts y/m/d with "/", "-" or "." separators. Range
// validation beyond the obvious is left to the calendar system.
func parseDate(text string) (calendar.Date, error) {
	text = strings.ReplaceAll(text, "-", "/")
	text = strings.ReplaceAll(text, ".", "/")
	parts := strings.Split(text, "/")
	if len(parts) != 3 {
		return calendar.Date{}, fmt.Errorf("expected y/m/d, got %q", text)
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return calendar.Date{}, fmt.Errorf("non-numeric date component in %q", text)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return calendar.Date{}, fmt.Errorf("date %q out of range", text)
	}
	return calendar.Date{Year: year, Month: month, Day: day}, nil
}

func isDateTextKey(keyName string) bool {
	if len(keyName) != 1 {
		return false
	}
	ch := keyName[0]
	return (ch >= '0' && ch <= '9') || ch == '/' || ch == '-' || ch == '.'
}

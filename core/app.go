package core

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model hosts a set of date inputs sharing one Context. The panel
// renderer is injected by the wiring layer so rendering stays out of
// this package.
type Model struct {
	inputs    []*Input
	focus     int
	ctx       *Context
	keys      *KeyRegistry
	status    string
	statusErr bool
	width     int
	height    int
	quitting  bool

	// PanelView renders PanelParams into the floating panel body.
	PanelView func(p PanelParams, width int) string
}

func NewModel(ctx *Context, keys *KeyRegistry, inputs ...*Input) Model {
	return Model{
		inputs: inputs,
		ctx:    ctx,
		keys:   keys,
		status: "Ready",
		width:  80,
		height: 24,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// ActiveScope is "panel" while the focused input owns the open panel,
// "field" otherwise.
func (m Model) ActiveScope() string {
	if in := m.focusedInput(); in != nil && in.IsOpen() {
		return scopePanel
	}
	return scopeField
}

// FocusedInput returns the input the cursor is on, nil when the model
// has no inputs.
func (m Model) FocusedInput() *Input {
	return m.focusedInput()
}

func (m Model) focusedInput() *Input {
	if len(m.inputs) == 0 {
		return nil
	}
	return m.inputs[m.focus]
}

func (m *Model) SetStatus(text string) {
	m.status = text
	m.statusErr = false
}

func (m *Model) SetError(text string) {
	m.status = text
	m.statusErr = true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case StatusMsg:
		if msg.IsErr {
			m.SetError(msg.Text)
		} else {
			m.SetStatus(msg.Text)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	in := m.focusedInput()
	if in == nil {
		return m, nil
	}

	// The input consumes typing, panel keys, and clear; whatever it
	// ignores falls through to app-level actions. Status text travels
	// as a message so wrapping programs see it too.
	res := in.HandleKey(msg.String())
	if res.Action != InputActionNone {
		var cmds []tea.Cmd
		if res.Status != "" {
			if res.IsErr {
				cmds = append(cmds, ErrorCmd(errors.New(res.Status)))
			} else {
				cmds = append(cmds, StatusCmd(res.Status))
			}
		}
		if c := commitCmd(in, res); c != nil {
			cmds = append(cmds, c)
		}
		return m, tea.Batch(cmds...)
	}

	scope := m.ActiveScope()
	switch {
	case m.keys.IsAction(msg, "quit", scope):
		m.quitting = true
		return m, tea.Quit
	case m.keys.IsAction(msg, "next-field", scope) || msg.String() == "tab":
		m.focusNext()
		return m, nil
	case m.keys.IsAction(msg, "open", scope):
		m.openFocused()
		return m, nil
	}
	return m, nil
}

// commitCmd publishes the outcome of a commit so programs embedding
// the model can react to picks, clears, and panel closes.
func commitCmd(in *Input, res InputResult) tea.Cmd {
	switch res.Action {
	case InputActionPicked:
		d, ok := in.PickedDate()
		if !ok {
			return nil
		}
		instant, _ := in.PickedTime()
		return func() tea.Msg {
			return DatePickedMsg{InputID: in.ID(), Date: d, Instant: instant}
		}
	case InputActionCleared:
		return func() tea.Msg { return DateClearedMsg{InputID: in.ID()} }
	case InputActionClosed:
		return func() tea.Msg { return PanelClosedMsg{InputID: in.ID()} }
	}
	return nil
}

// focusNext moves to the next input and opens its panel, which
// reclaims the shared slot from whichever input held it.
func (m *Model) focusNext() {
	if len(m.inputs) == 0 {
		return
	}
	wasOpen := false
	if in := m.focusedInput(); in != nil && in.IsOpen() {
		wasOpen = true
	}
	m.focus = (m.focus + 1) % len(m.inputs)
	if wasOpen {
		m.openFocused()
	}
}

func (m *Model) openFocused() {
	in := m.focusedInput()
	if in == nil {
		return
	}
	prev := in.Focus()
	if prev == "" {
		return
	}
	for _, other := range m.inputs {
		if other.ID() == prev {
			other.Panel().Close()
		}
	}
}

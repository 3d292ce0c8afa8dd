package core

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskdate/calendar"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	svc := calendar.NewService(calendar.Jalali{}, calendar.JalaliTable())
	svc.SetClock(func() time.Time {
		return time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)
	})
	ctx := NewContext()
	in := NewInput(ctx, svc, "From", "y/m/d")
	return NewModel(ctx, NewKeyRegistry(DefaultBindings()), in)
}

func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestModelPickPublishesStatusAndCommit(t *testing.T) {
	m := newTestModel(t)
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	next, _ := m.Update(enter) // open the panel
	m = next.(Model)
	if in := m.FocusedInput(); !in.IsOpen() {
		t.Fatalf("panel not open after enter")
	}

	next, cmd := m.Update(enter) // pick today
	m = next.(Model)

	var status *StatusMsg
	var picked *DatePickedMsg
	for _, msg := range collectMsgs(cmd) {
		switch msg := msg.(type) {
		case StatusMsg:
			status = &msg
		case DatePickedMsg:
			picked = &msg
		}
	}
	if status == nil || status.IsErr || !strings.Contains(status.Text, "Picked") {
		t.Fatalf("status msg = %+v, want pick notice", status)
	}
	if picked == nil {
		t.Fatalf("no DatePickedMsg published")
	}
	if !picked.Date.SameDay(calendar.Date{Year: 1404, Month: 6, Day: 8}) {
		t.Fatalf("published date = %+v, want today 1404/6/8", picked.Date)
	}
	if picked.InputID != m.FocusedInput().ID() {
		t.Fatalf("published input id = %q, want %q", picked.InputID, m.FocusedInput().ID())
	}

	next, _ = m.Update(*status)
	m = next.(Model)
	if m.status != status.Text || m.statusErr {
		t.Fatalf("status bar = %q err=%v after StatusMsg %q", m.status, m.statusErr, status.Text)
	}
}

func TestModelBadTypedCommitPublishesError(t *testing.T) {
	m := newTestModel(t)

	for _, ch := range "1404/13/01" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{ch}})
		m = next.(Model)
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	var status *StatusMsg
	for _, msg := range collectMsgs(cmd) {
		if s, ok := msg.(StatusMsg); ok {
			status = &s
		}
	}
	if status == nil || !status.IsErr {
		t.Fatalf("status msg = %+v, want error notice", status)
	}
	if !strings.Contains(status.Text, "field cleared") {
		t.Fatalf("status = %q, want field cleared notice", status.Text)
	}

	next, _ = m.Update(*status)
	m = next.(Model)
	if !m.statusErr {
		t.Fatalf("status bar not in error state after error msg")
	}
}

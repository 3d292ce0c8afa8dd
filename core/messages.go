package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskdate/calendar"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

// DatePickedMsg is emitted when an input commits a date.
type DatePickedMsg struct {
	InputID string
	Date    calendar.Date
	Instant time.Time
}

// DateClearedMsg is emitted when an input's picked date is cleared.
type DateClearedMsg struct {
	InputID string
}

// PanelClosedMsg is emitted when the open panel closes.
type PanelClosedMsg struct {
	InputID string
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

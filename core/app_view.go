package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/jaskdate/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	available := m.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if available < 0 {
		available = 0
	}

	body := m.renderFields()
	if in := m.focusedInput(); in != nil && in.IsOpen() && m.PanelView != nil && available > 0 {
		panelWidth := min(40, max(24, m.width-8))
		panel := m.PanelView(in.Panel().Params(), panelWidth)
		body = widgets.RenderPopup(body, panel, max(1, m.width), available)
	}
	body = fitHeight(body, available)

	view := strings.Join([]string{header, status, body, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func (m Model) renderFields() string {
	rows := make([]string, 0, len(m.inputs)*2)
	for i, in := range m.inputs {
		box := fieldBoxStyle
		if i == m.focus {
			box = fieldFocusedBoxStyle
		}
		label := fieldLabelStyle.Render(in.Label())
		field := box.Width(min(24, max(14, m.width-6))).Render(in.FieldView())
		rows = append(rows, label+"\n"+field)
	}
	content := strings.Join(rows, "\n")
	if m.width == 0 {
		return content
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

func renderHeader(m Model) string {
	left := headerAppStyle.Render("JaskDate")
	right := fieldLabelStyle.Render(m.calendarName())
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right, colorMantle)
}

func (m Model) calendarName() string {
	in := m.focusedInput()
	if in == nil {
		return ""
	}
	return in.svc.System().Name() + " calendar"
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

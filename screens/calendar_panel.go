package screens

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskdate/core"
	"github.com/jask/jaskdate/widgets"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cdd6f4"))
	navStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	navOffStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	dayNameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	cellStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	grayOutStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	holidayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	todayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#94e2d5")).Bold(true)
	pickedStyle   = lipgloss.NewStyle().Background(lipgloss.Color("#89b4fa")).Foreground(lipgloss.Color("#1e1e2e"))
	cursorStyle   = lipgloss.NewStyle().Background(lipgloss.Color("#45475a")).Bold(true)
	footHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
)

// RenderCalendarPanel turns a panel view-model into the popup body.
// A right-to-left calendar mirrors each row of cells and the weekday
// header; cell content and its meaning stay unchanged.
func RenderCalendarPanel(p core.PanelParams, width int) string {
	if p.View == core.ViewClosed {
		return ""
	}
	var lines []string
	lines = append(lines, renderNavHeader(p, width))

	switch p.View {
	case core.ViewDate:
		lines = append(lines, renderDayNames(p, width))
		lines = append(lines, renderCellRows(p, width, 3)...)
		lines = append(lines, footHintStyle.Render("m months  y years  t today"))
	case core.ViewMonth:
		lines = append(lines, renderCellRows(p, width, monthCellWidth(p))...)
		lines = append(lines, footHintStyle.Render("enter select  esc back"))
	case core.ViewYear:
		lines = append(lines, renderCellRows(p, width, 6)...)
		lines = append(lines, footHintStyle.Render("enter select  [ ] block"))
	}
	return strings.Join(lines, "\n")
}

func renderNavHeader(p core.PanelParams, width int) string {
	left := navStyle.Render(p.LeftLabel)
	if p.NoMoreLeft {
		left = navOffStyle.Render(p.LeftLabel)
	}
	right := navStyle.Render(p.RightLabel)
	if p.NoMoreRight {
		right = navOffStyle.Render(p.RightLabel)
	}
	title := titleStyle.Render(p.Title)
	inner := width - lipgloss.Width(left) - lipgloss.Width(right)
	if inner < lipgloss.Width(title) {
		return left + " " + title + " " + right
	}
	pad := inner - lipgloss.Width(title)
	lpad := pad / 2
	rpad := pad - lpad
	return left + strings.Repeat(" ", lpad) + title + strings.Repeat(" ", rpad) + right
}

func renderDayNames(p core.PanelParams, width int) string {
	names := append([]string(nil), p.DayNames...)
	if p.RTL {
		reverse(names)
	}
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = dayNameStyle.Render(padCell(n, 3))
	}
	return strings.Join(parts, " ")
}

func renderCellRows(p core.PanelParams, width, cellWidth int) []string {
	cols := p.Columns
	if cols <= 0 {
		cols = 7
	}
	var rows []string
	for rowStart := 0; rowStart < len(p.Cells); rowStart += cols {
		rowEnd := rowStart + cols
		if rowEnd > len(p.Cells) {
			rowEnd = len(p.Cells)
		}
		row := p.Cells[rowStart:rowEnd]
		parts := make([]string, len(row))
		for i, c := range row {
			parts[i] = renderCell(c, cellWidth)
		}
		if p.RTL {
			reverse(parts)
		}
		rows = append(rows, strings.Join(parts, " "))
	}
	return rows
}

func renderCell(c core.PanelCell, cellWidth int) string {
	text := padCell(c.Label, cellWidth)
	style := cellStyle
	switch {
	case c.GrayOut:
		style = grayOutStyle
	case c.Holiday:
		style = holidayStyle
	case c.Today:
		style = todayStyle
	}
	if c.Picked {
		style = pickedStyle
	}
	if c.Cursor {
		style = cursorStyle
	}
	return style.Render(text)
}

func monthCellWidth(p core.PanelParams) int {
	w := 0
	for _, c := range p.Cells {
		if n := len(c.Label); n > w {
			w = n
		}
	}
	if w < 3 {
		w = 3
	}
	return w
}

func padCell(s string, width int) string {
	return widgets.PadRightANSI(s, width)
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

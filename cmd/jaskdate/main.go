package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskdate/calendar"
	"github.com/jask/jaskdate/core"
	"github.com/jask/jaskdate/internal/config"
	"github.com/jask/jaskdate/screens"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var (
		sys  calendar.System
		holi *calendar.Table
	)
	switch cfg.Calendar.System {
	case "gregorian":
		sys = calendar.Gregorian{}
		holi = calendar.GregorianTable()
	default:
		sys = calendar.Jalali{}
		holi = calendar.JalaliTable()
	}
	if cfg.Calendar.HolidayFile != "" {
		if err := holi.LoadOverrides(cfg.Calendar.HolidayFile); err != nil {
			log.Fatalf("holiday overrides: %v", err)
		}
	}

	svc := calendar.NewService(sys, holi)
	ctx := core.NewContext()
	keys := core.NewKeyRegistry(core.DefaultBindings())

	inputs := make([]*core.Input, 0, len(cfg.UI.Labels))
	for _, label := range cfg.UI.Labels {
		inputs = append(inputs, core.NewInput(ctx, svc, label, cfg.UI.Placeholder))
	}

	m := core.NewModel(ctx, keys, inputs...)
	m.PanelView = screens.RenderCalendarPanel

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

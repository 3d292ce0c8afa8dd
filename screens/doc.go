// Package screens renders picker view-models into panel bodies.
//
// Allowed here:
// - concrete lipgloss rendering of core.PanelParams
//
// Not allowed here:
// - state transitions (core) or calendar arithmetic (calendar)
package screens

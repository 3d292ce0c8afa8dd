// Package core contains the picker state machines and app orchestration.
//
// Allowed here:
// - panel and input state machines, the shared open-panel context
// - model routing, message contracts, key registry, theme
//
// Not allowed here:
// - calendar arithmetic (calendar) or concrete panel rendering (screens)
package core

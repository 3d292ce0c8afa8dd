package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	scopeField = "field"
	scopePanel = "panel"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

// DefaultBindings covers the field and panel scopes of the demo app.
func DefaultBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"tab"}, Action: "next-field", Description: "next field", Scopes: []string{scopeField}},
		{Keys: []string{"enter", "o"}, Action: "open", Description: "open picker", Scopes: []string{scopeField}},
		{Keys: []string{"c"}, Action: "clear", Description: "clear", Scopes: []string{scopeField, scopePanel}},
		{Keys: []string{"q", "ctrl+c"}, Action: "quit", Description: "quit", Scopes: []string{scopeField}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{scopePanel}},
		{Keys: []string{"h", "j", "k", "l"}, Action: "move", Description: "move", Scopes: []string{scopePanel}},
		{Keys: []string{"[", "]"}, Action: "nav", Description: "prev/next", Scopes: []string{scopePanel}},
		{Keys: []string{"m"}, Action: "month-picker", Description: "months", Scopes: []string{scopePanel}},
		{Keys: []string{"y"}, Action: "year-picker", Description: "years", Scopes: []string{scopePanel}},
		{Keys: []string{"t"}, Action: "today", Description: "today", Scopes: []string{scopePanel}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{scopePanel}},
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

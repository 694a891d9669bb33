package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Aliases     []string
	Handler     KeyHandler
	Description string
	Zones       []int
	Priority    int
}

func (b KeyBinding) AppliesToZone(zone int) bool {
	if len(b.Zones) == 0 {
		return true
	}
	for _, z := range b.Zones {
		if z == zone {
			return true
		}
	}
	return false
}

func (b KeyBinding) matches(k string) bool {
	if b.Key == k {
		return true
	}
	for _, a := range b.Aliases {
		if a == k {
			return true
		}
	}
	return false
}

// Help converts the binding for the bubbles help view.
func (b KeyBinding) Help() key.Binding {
	keys := append([]string{b.Key}, b.Aliases...)
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(strings.Join(names, "/"), b.Description))
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, k string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.matches(k) && b.AppliesToZone(m.view.focus) {
			next, cmd, handled := b.Handler(m, k)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) GetBindingsForZone(zone int) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesToZone(zone) {
			out = append(out, b)
		}
	}
	return out
}

// HelpForZone lists the described bindings active in zone, one per key.
func (r *HandlerRegistry) HelpForZone(zone int) []key.Binding {
	seen := make(map[string]bool)
	var out []key.Binding
	for _, b := range r.GetBindingsForZone(zone) {
		if b.Description == "" || seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		out = append(out, b.Help())
	}
	return out
}

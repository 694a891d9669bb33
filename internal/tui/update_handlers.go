package tui

import (
	"github.com/akyairhashvil/ecoweek/internal/alert"
	"github.com/akyairhashvil/ecoweek/internal/calendar"
	"github.com/akyairhashvil/ecoweek/internal/config"
	"github.com/akyairhashvil/ecoweek/internal/util"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func newKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	calendarZone := []int{config.ZoneCalendar}
	trayZone := []int{config.ZoneTray}
	detailZone := []int{config.ZoneDetail}

	// Zone bindings win over globals with the same key.
	r.Register(KeyBinding{Key: "left", Aliases: []string{"h"}, Description: "day", Zones: calendarZone, Priority: 10, Handler: handleCellMove(-1)})
	r.Register(KeyBinding{Key: "right", Aliases: []string{"l"}, Description: "day", Zones: calendarZone, Priority: 10, Handler: handleCellMove(1)})
	r.Register(KeyBinding{Key: "enter", Aliases: []string{" "}, Description: "select/drop", Zones: calendarZone, Priority: 10, Handler: handleCellActivate})

	r.Register(KeyBinding{Key: "left", Aliases: []string{"h"}, Description: "card", Zones: trayZone, Priority: 10, Handler: handleCardMove(-1)})
	r.Register(KeyBinding{Key: "right", Aliases: []string{"l"}, Description: "card", Zones: trayZone, Priority: 10, Handler: handleCardMove(1)})
	r.Register(KeyBinding{Key: "enter", Description: "add to day", Zones: trayZone, Priority: 10, Handler: handleAdd})
	r.Register(KeyBinding{Key: "g", Aliases: []string{" "}, Description: "grab", Zones: trayZone, Priority: 10, Handler: handleGrab})

	r.Register(KeyBinding{Key: "up", Aliases: []string{"k"}, Description: "row", Zones: detailZone, Priority: 10, Handler: handleRowMove(-1)})
	r.Register(KeyBinding{Key: "down", Aliases: []string{"j"}, Description: "row", Zones: detailZone, Priority: 10, Handler: handleRowMove(1)})
	r.Register(KeyBinding{Key: "c", Aliases: []string{" "}, Description: "complete/undo", Zones: detailZone, Priority: 10, Handler: handleToggle})
	r.Register(KeyBinding{Key: "x", Aliases: []string{"delete"}, Description: "remove", Zones: detailZone, Priority: 10, Handler: handleRemove})

	r.Register(KeyBinding{Key: "esc", Description: "cancel", Priority: 5, Handler: handleEscape})
	r.Register(KeyBinding{Key: "tab", Description: "focus", Handler: handleFocus(1)})
	r.Register(KeyBinding{Key: "shift+tab", Handler: handleFocus(-1)})
	r.Register(KeyBinding{Key: "[", Aliases: []string{"p"}, Description: "prev week", Handler: handleNavigate(-1)})
	r.Register(KeyBinding{Key: "]", Aliases: []string{"n"}, Description: "next week", Handler: handleNavigate(1)})
	r.Register(KeyBinding{Key: "t", Description: "today", Handler: handleToday})
	r.Register(KeyBinding{Key: "a", Description: "add card", Handler: handleAdd})
	r.Register(KeyBinding{Key: "e", Description: "export pdf", Handler: handleExport})
	r.Register(KeyBinding{Key: "?", Description: "help", Handler: handleHelpToggle})
	r.Register(KeyBinding{Key: "q", Description: "quit", Handler: handleQuit})
	return r
}

func handleFocus(delta int) KeyHandler {
	return func(m Model, _ string) (Model, tea.Cmd, bool) {
		m.view.CycleFocus(delta)
		return m, nil, true
	}
}

func handleNavigate(delta int) KeyHandler {
	return func(m Model, _ string) (Model, tea.Cmd, bool) {
		return m.Navigate(delta), nil, true
	}
}

func handleToday(m Model, _ string) (Model, tea.Cmd, bool) {
	m.view.weekOffset = 0
	return m.Select(m.todayKey()), nil, true
}

func handleCellMove(delta int) KeyHandler {
	return func(m Model, _ string) (Model, tea.Cmd, bool) {
		next := m.view.cellCursor + delta
		switch {
		case next < 0:
			m = m.Navigate(-1)
			next = calendar.DaysPerWeek - 1
		case next >= calendar.DaysPerWeek:
			m = m.Navigate(1)
			next = 0
		}
		m.view.cellCursor = next
		if m.drag.Active() {
			m.drag.Over(m.weekKeys()[next])
		}
		return m, nil, true
	}
}

func handleCellActivate(m Model, _ string) (Model, tea.Cmd, bool) {
	date := m.weekKeys()[util.Clamp(m.view.cellCursor, 0, calendar.DaysPerWeek-1)]
	if m.drag.Active() {
		next, cmd := m.Drop(date)
		return next, cmd, true
	}
	return m.Select(date), nil, true
}

func handleEscape(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.drag.Active() {
		return m.EndDrag(), nil, true
	}
	if m.view.focus == config.ZoneCalendar && m.view.selectedDate != "" {
		m.view.selectedDate = ""
		return m, nil, true
	}
	return m, nil, false
}

func handleCardMove(delta int) KeyHandler {
	return func(m Model, _ string) (Model, tea.Cmd, bool) {
		m.view.moveCard(delta, len(m.templates), m.layout().visibleCards)
		return m, nil, true
	}
}

func handleAdd(m Model, _ string) (Model, tea.Cmd, bool) {
	next, cmd := m.AddFromTray(m.view.cardCursor)
	return next, cmd, true
}

func handleGrab(m Model, _ string) (Model, tea.Cmd, bool) {
	m = m.BeginDrag(m.view.cardCursor, true)
	if m.drag.Active() {
		m.drag.Over(m.weekKeys()[m.view.cellCursor])
	}
	return m, nil, true
}

func handleRowMove(delta int) KeyHandler {
	return func(m Model, _ string) (Model, tea.Cmd, bool) {
		n := len(m.store.ListFor(m.view.selectedDate))
		m.view.rowCursor = util.Clamp(m.view.rowCursor+delta, 0, max(0, n-1))
		return m, nil, true
	}
}

func handleToggle(m Model, _ string) (Model, tea.Cmd, bool) {
	e, ok := m.focusedEntry()
	if !ok {
		return m, nil, true
	}
	next, cmd := m.ToggleEntry(m.view.selectedDate, e.ID)
	return next, cmd, true
}

func handleRemove(m Model, _ string) (Model, tea.Cmd, bool) {
	e, ok := m.focusedEntry()
	if !ok {
		return m, nil, true
	}
	next, cmd := m.RemoveEntry(m.view.selectedDate, e.ID)
	return next, cmd, true
}

func handleHelpToggle(m Model, _ string) (Model, tea.Cmd, bool) {
	m.view.showHelp = !m.view.showHelp
	return m, nil, true
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	_, cmd := m.alerts.Confirm("Quit ecoweek?",
		"The schedule lives in memory only and will be lost.",
		alert.Options{
			ConfirmText: "Quit",
			CancelText:  "Stay",
			OnResolve: func(ok bool) tea.Cmd {
				if ok {
					return tea.Quit
				}
				return nil
			},
		})
	return m, cmd, true
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	l := m.layout()
	if l.tooNarrow {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			if l.inTray(msg.Y) {
				m.view.scrollCards(-1, len(m.templates), l.visibleCards)
			}
			return m, nil
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			if l.inTray(msg.Y) {
				m.view.scrollCards(1, len(m.templates), l.visibleCards)
			}
			return m, nil
		}
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if idx, onAdd, ok := l.cardAt(msg.X, msg.Y, m.view.cardScroll, len(m.templates)); ok && !onAdd {
			m.view.focus = config.ZoneTray
			return m.BeginDrag(idx, false), nil
		}
	case tea.MouseActionMotion:
		if m.drag.Active() && !m.drag.keyboard {
			if i, ok := l.cellAt(msg.X, msg.Y); ok {
				m.drag.Over(m.weekKeys()[i])
			} else {
				m.drag.Over("")
			}
		}
	case tea.MouseActionRelease:
		if m.drag.Active() && !m.drag.keyboard {
			if i, ok := l.cellAt(msg.X, msg.Y); ok {
				return m.Drop(m.weekKeys()[i])
			}
			return m.EndDrag(), nil
		}
		return m.handleClick(l, msg.X, msg.Y)
	}
	return m, nil
}

func (m Model) handleClick(l screenLayout, x, y int) (Model, tea.Cmd) {
	if y == headerRow {
		switch {
		case l.prev.contains(x):
			return m.Navigate(-1), nil
		case l.next.contains(x):
			return m.Navigate(1), nil
		}
		return m, nil
	}
	if i, ok := l.cellAt(x, y); ok {
		m.view.focus = config.ZoneCalendar
		return m.Select(m.weekKeys()[i]), nil
	}
	if idx, onAdd, ok := l.cardAt(x, y, m.view.cardScroll, len(m.templates)); ok {
		m.view.cardCursor = idx
		m.view.focus = config.ZoneTray
		if onAdd {
			return m.AddFromTray(idx)
		}
		return m, nil
	}
	if m.view.selectedDate != "" {
		if idx, ok := l.rowAt(y, len(m.store.ListFor(m.view.selectedDate))); ok {
			return m.clickDetail(idx, x)
		}
	}
	return m, nil
}

func chunk(bindings []key.Binding, size int) [][]key.Binding {
	var out [][]key.Binding
	for len(bindings) > size {
		out = append(out, bindings[:size])
		bindings = bindings[size:]
	}
	if len(bindings) > 0 {
		out = append(out, bindings)
	}
	return out
}

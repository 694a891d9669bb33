package tui

import (
	"testing"
	"time"

	"github.com/akyairhashvil/ecoweek/internal/alert"
	"github.com/akyairhashvil/ecoweek/internal/catalog"
	"github.com/akyairhashvil/ecoweek/internal/models"
	"github.com/akyairhashvil/ecoweek/internal/schedule"
	tea "github.com/charmbracelet/bubbletea"
)

// fixedNow is Wednesday of the seeded demo week.
var fixedNow = time.Date(2025, time.June, 11, 10, 0, 0, 0, time.Local)

func setupTestModel(t *testing.T) (Model, *schedule.Store) {
	t.Helper()
	store := schedule.New()
	store.Seed(catalog.Seed())
	m := NewModel(store, catalog.Default(), Options{
		Now:       func() time.Time { return fixedNow },
		ReportDir: t.TempDir(),
	})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 60})
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return mm, cmd
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func pressKeys(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = update(t, m, keyMsg(k))
	}
	return m, cmd
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

// drain runs cmd and every command nested in a batch, collecting messages.
func drain(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(t, c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func currentAlert(t *testing.T, m Model) alert.Request {
	t.Helper()
	req, _, ok := m.Alerts().Current()
	if !ok {
		t.Fatalf("expected an alert on screen")
	}
	return req
}

func dismissAlert(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, keyMsg("enter"))
	if m.Alerts().State() != alert.Idle {
		t.Fatalf("expected alert to close")
	}
	return m
}

func idsOf(entries []models.ScheduledChallenge) []int {
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

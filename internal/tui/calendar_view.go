package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/ecoweek/internal/alert"
	"github.com/akyairhashvil/ecoweek/internal/calendar"
	"github.com/akyairhashvil/ecoweek/internal/config"
	"github.com/akyairhashvil/ecoweek/internal/models"
	"github.com/akyairhashvil/ecoweek/internal/schedule"
	"github.com/akyairhashvil/ecoweek/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) today() time.Time { return m.now() }

func (m Model) todayKey() models.DateKey { return models.DateKeyOf(m.now()) }

func (m Model) weekDays() [calendar.DaysPerWeek]time.Time {
	return calendar.Week(m.today(), m.view.weekOffset)
}

func (m Model) weekKeys() []models.DateKey {
	return calendar.WeekKeys(m.today(), m.view.weekOffset)
}

// Navigate shifts the visible week. Selection is kept.
func (m Model) Navigate(delta int) Model {
	m.view.Navigate(delta)
	m.drag.Over("")
	util.Logger.Debug("navigate", "offset", m.view.weekOffset)
	return m
}

// Select makes date the active day and shows it in the detail panel.
func (m Model) Select(date models.DateKey) Model {
	m.view.Select(date)
	for i, k := range m.weekKeys() {
		if k == date {
			m.view.cellCursor = i
		}
	}
	return m
}

// Drop schedules the dragged template on date and ends the drag. Without a
// drag in flight it does nothing.
func (m Model) Drop(date models.DateKey) (Model, tea.Cmd) {
	tmpl, ok := m.drag.Template()
	m.drag.End()
	if !ok {
		return m, nil
	}
	return m.assign(date, tmpl)
}

// assign adds tmpl to date and reports the outcome through an alert. Both the
// drop target and the tray's add action land here.
func (m Model) assign(date models.DateKey, tmpl models.ChallengeTemplate) (Model, tea.Cmd) {
	res := m.store.Add(date, tmpl)
	var cmd tea.Cmd
	switch res.Outcome {
	case schedule.Added:
		util.Logger.Info("challenge added", "date", date, "id", tmpl.ID)
		m = m.Select(date)
		_, cmd = m.alerts.Success("Challenge Added!",
			fmt.Sprintf("%q has been added to your challenges for %s.", tmpl.Title, calendar.KeyShortDate(date)),
			alert.Options{Timeout: m.opts.AlertTimeout})
	case schedule.AlreadyPresent:
		util.Logger.Debug("add skipped", "err", res.Err())
		_, cmd = m.alerts.Info("Challenge Already Added",
			fmt.Sprintf("%q is already scheduled for this day.", tmpl.Title), alert.Options{})
	default:
		util.LogError("add challenge", res.Err())
		_, cmd = m.alerts.Error("", fmt.Sprintf("Could not add %q: invalid day.", tmpl.Title), alert.Options{})
	}
	return m, cmd
}

func (m Model) renderWeekHeader(l screenLayout) string {
	title := calendar.Title(m.weekDays()[0])
	prev, next := prevLabel, nextLabel
	if m.view.weekOffset != 0 {
		title += m.theme.Dim.Render(fmt.Sprintf(" (%+d)", m.view.weekOffset))
	}
	middle := l.next.start - l.prev.end
	return m.theme.Button.Render(prev) +
		lipgloss.PlaceHorizontal(middle, lipgloss.Center, m.theme.Header.Render(title)) +
		m.theme.Button.Render(next)
}

func (m Model) renderWeek(l screenLayout) string {
	days := m.weekDays()
	todayKey := m.todayKey()
	cells := make([]string, 0, len(days))
	for i, d := range days {
		cells = append(cells, m.renderCell(l, i, d, todayKey))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) renderCell(l screenLayout, idx int, day time.Time, todayKey models.DateKey) string {
	key := models.DateKeyOf(day)
	innerW := l.cellWidth - 2
	innerH := config.CellHeight - 2
	compact := l.width < config.CompactModeThreshold

	label := fmt.Sprintf("%d", day.Day())
	if !compact {
		label = day.Format("Mon") + " " + label
	}
	headStyle := m.theme.Entry.Bold(true)
	if key == todayKey {
		label = "● " + label
		headStyle = m.theme.Highlight.Bold(true)
	}
	if m.view.focus == config.ZoneCalendar && idx == m.view.cellCursor {
		label = "›" + label
		headStyle = m.theme.Focused
	}
	lines := []string{headStyle.Render(ansi.Truncate(label, innerW, config.TruncationSuffix))}

	entries := m.store.ListFor(key)
	room := min(config.MaxCellEntries, innerH-2)
	for i, e := range entries {
		if i == room-1 && len(entries) > room {
			lines = append(lines, m.theme.Dim.Render(fmt.Sprintf("+%d more", len(entries)-i)))
			break
		}
		text := ansi.Truncate(glyph(e.Icon)+" "+e.Title, innerW, config.TruncationSuffix)
		if e.Completed {
			lines = append(lines, m.theme.CompletedEntry.Render(text))
		} else {
			lines = append(lines, m.theme.Entry.Render(text))
		}
	}
	for len(lines) < innerH-1 {
		lines = append(lines, "")
	}
	hint := m.theme.Dim.Render(ansi.Truncate("drop here", innerW, config.TruncationSuffix))
	if m.drag.IsOver(key) {
		hint = m.theme.Focused.Render(ansi.Truncate("⤓ drop here", innerW, config.TruncationSuffix))
	}
	lines = append(lines, hint)

	style := m.theme.Cell
	switch {
	case m.drag.IsOver(key):
		style = m.theme.DragOver
	case key == m.view.selectedDate:
		style = m.theme.Selected
	case key == todayKey:
		style = m.theme.Today
	}
	return style.Width(innerW).Height(innerH).MaxHeight(config.CellHeight).
		Render(strings.Join(lines, "\n"))
}

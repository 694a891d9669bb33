package tui

import (
	"fmt"
	"strings"

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

const (
	detailNameWidth = 30
	detailIntro     = "Complete these sustainability challenges to earn eco-points and make a positive impact!"
	detailEmpty     = "No challenges scheduled for this day. Add some from the challenge cards below!"
)

// ToggleEntry flips completion of entry id on date. Only completing an entry
// raises an alert.
func (m Model) ToggleEntry(date models.DateKey, id int) (Model, tea.Cmd) {
	res := m.store.Toggle(date, id)
	if res.Outcome != schedule.Toggled {
		util.Logger.Warn("toggle missed", "date", date, "id", id, "err", res.Err())
		return m, nil
	}
	util.Logger.Info("challenge toggled", "date", date, "id", id, "completed", res.Entry.Completed)
	if !res.Entry.Completed {
		return m, nil
	}
	_, cmd := m.alerts.Success("Challenge Completed!",
		fmt.Sprintf("Great job completing %q! You've earned %d eco-points.", res.Entry.Title, res.Entry.Points),
		alert.Options{Timeout: m.opts.AlertTimeout})
	return m, cmd
}

// RemoveEntry deletes entry id from date and names it in an info alert.
func (m Model) RemoveEntry(date models.DateKey, id int) (Model, tea.Cmd) {
	res := m.store.Remove(date, id)
	if res.Outcome != schedule.Removed {
		util.Logger.Warn("remove missed", "date", date, "id", id, "err", res.Err())
		return m, nil
	}
	util.Logger.Info("challenge removed", "date", date, "id", id)
	if n := len(m.store.ListFor(date)); m.view.rowCursor >= n {
		m.view.rowCursor = max(0, n-1)
	}
	_, cmd := m.alerts.Info("Challenge Removed",
		fmt.Sprintf("%q has been removed from your challenges for %s.", res.Entry.Title, calendar.KeyShortDate(date)),
		alert.Options{})
	return m, cmd
}

// focusedEntry returns the entry under the detail cursor.
func (m Model) focusedEntry() (models.ScheduledChallenge, bool) {
	entries := m.store.ListFor(m.view.selectedDate)
	if len(entries) == 0 {
		return models.ScheduledChallenge{}, false
	}
	i := util.Clamp(m.view.rowCursor, 0, len(entries)-1)
	return entries[i], true
}

type detailRow struct {
	line   string
	toggle span
	remove span
}

func (m Model) buildDetailRow(i int, e models.ScheduledChallenge) detailRow {
	cursor := "  "
	if m.view.focus == config.ZoneDetail && i == m.view.rowCursor {
		cursor = m.theme.Focused.Render("› ")
	}
	name := ansi.Truncate(glyph(e.Icon)+" "+e.Title, detailNameWidth, config.TruncationSuffix)
	nameStyle := m.theme.Entry
	if e.Completed {
		nameStyle = m.theme.CompletedEntry
	}
	toggleLabel := "[Complete]"
	if e.Completed {
		toggleLabel = "[Undo]"
	}

	prefix := cursor + nameStyle.Width(detailNameWidth).Render(name) + "  " +
		m.theme.Points.Render(fmt.Sprintf("%7s", FormatPoints(e.Points))) + "  "
	toggleStart := lipgloss.Width(prefix)
	toggle := m.theme.Button.Render(toggleLabel)
	removeStart := toggleStart + lipgloss.Width(toggle) + 1
	remove := m.theme.Danger.Render("[Remove]")

	return detailRow{
		line:   prefix + toggle + " " + remove,
		toggle: span{toggleStart, toggleStart + lipgloss.Width(toggle)},
		remove: span{removeStart, removeStart + lipgloss.Width(remove)},
	}
}

func (m Model) renderDetail(l screenLayout) string {
	date := m.view.selectedDate
	if date == "" {
		return m.theme.Dim.Render("Select a day to see its challenges.")
	}
	p := m.store.Progress(date)
	lines := []string{
		m.theme.Header.Render("Challenges for " + calendar.KeyLongDate(date)),
		m.theme.Dim.Render(ansi.Truncate(detailIntro, l.width, config.TruncationSuffix)),
		m.progress.ViewAs(p.Ratio()),
		FormatProgress(p),
		"",
	}

	entries := m.store.ListFor(date)
	if len(entries) == 0 {
		lines = append(lines, m.theme.Dim.Render(detailEmpty))
	}
	for i, e := range entries {
		lines = append(lines, ansi.Truncate(m.buildDetailRow(i, e).line, l.width, ""))
	}

	sum := m.store.WeekSummary(m.weekKeys())
	lines = append(lines, "", m.theme.Dim.Render(FormatWeekSummary(sum)))
	return strings.Join(lines, "\n")
}

// clickDetail runs the row action under x on row idx.
func (m Model) clickDetail(idx, x int) (Model, tea.Cmd) {
	entries := m.store.ListFor(m.view.selectedDate)
	if idx >= len(entries) {
		return m, nil
	}
	m.view.focus = config.ZoneDetail
	m.view.rowCursor = idx
	row := m.buildDetailRow(idx, entries[idx])
	switch {
	case row.toggle.contains(x):
		return m.ToggleEntry(m.view.selectedDate, entries[idx].ID)
	case row.remove.contains(x):
		return m.RemoveEntry(m.view.selectedDate, entries[idx].ID)
	}
	return m, nil
}

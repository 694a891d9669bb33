package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/ecoweek/internal/alert"
	"github.com/akyairhashvil/ecoweek/internal/config"
	"github.com/akyairhashvil/ecoweek/internal/models"
	"github.com/akyairhashvil/ecoweek/internal/schedule"
	"github.com/akyairhashvil/ecoweek/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
)

const cardDescLines = 2

func (m Model) template(idx int) (models.ChallengeTemplate, bool) {
	if idx < 0 || idx >= len(m.templates) {
		return models.ChallengeTemplate{}, false
	}
	return m.templates[idx], true
}

// AddFromTray schedules card idx on the selected day. Without a selection it
// only tells the user to pick a day.
func (m Model) AddFromTray(idx int) (Model, tea.Cmd) {
	tmpl, ok := m.template(idx)
	if !ok {
		return m, nil
	}
	if m.view.selectedDate == "" {
		util.Logger.Debug("add refused", "err", &schedule.OpError{Op: "add", ID: tmpl.ID, Err: schedule.ErrNoDaySelected})
		_, cmd := m.alerts.Info("Select a Day First",
			"Please click on a day in the calendar to select it before adding challenges.", alert.Options{})
		return m, cmd
	}
	return m.assign(m.view.selectedDate, tmpl)
}

// BeginDrag picks up card idx. Keyboard drags move focus to the calendar so
// the cell cursor chooses the drop target.
func (m Model) BeginDrag(idx int, keyboard bool) Model {
	tmpl, ok := m.template(idx)
	if !ok {
		return m
	}
	m.drag.Begin(tmpl, idx, keyboard)
	m.view.cardCursor = idx
	if keyboard {
		m.view.focus = config.ZoneCalendar
	}
	util.Logger.Debug("drag start", "id", tmpl.ID, "keyboard", keyboard)
	return m
}

// EndDrag clears the drag without a drop.
func (m Model) EndDrag() Model {
	if m.drag.Active() {
		util.Logger.Debug("drag cancelled")
	}
	m.drag.End()
	return m
}

func (m Model) renderTray(l screenLayout) string {
	total := len(m.templates)
	first := m.view.cardScroll
	last := min(total, first+l.visibleCards)

	title := m.theme.Header.Render("Challenges")
	if total > 0 {
		title += m.theme.Dim.Render(fmt.Sprintf("  %d-%d of %d", first+1, last, total))
	}
	if first > 0 {
		title += m.theme.Dim.Render("  ‹")
	}
	if last < total {
		title += m.theme.Dim.Render("  ›")
	}
	title = ansi.Truncate(title, l.width, config.TruncationSuffix)
	if total == 0 {
		return title + "\n" + m.theme.Dim.Render("No challenges in the catalog.")
	}

	cards := make([]string, 0, last-first)
	for i := first; i < last; i++ {
		cards = append(cards, m.renderCard(i))
	}
	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) renderCard(idx int) string {
	t := m.templates[idx]
	innerW := config.CardWidth - 2
	innerH := config.CardHeight - 2

	head := ansi.Truncate(glyph(t.Icon)+" "+t.Title, innerW, config.TruncationSuffix)
	lines := []string{m.theme.Header.Render(head)}

	desc := strings.Split(wordwrap.String(t.Description, innerW), "\n")
	for i := 0; i < cardDescLines; i++ {
		line := ""
		if i < len(desc) {
			line = desc[i]
			if i == cardDescLines-1 && len(desc) > cardDescLines {
				line += config.TruncationSuffix
			}
		}
		lines = append(lines, m.theme.Dim.Render(ansi.Truncate(line, innerW, config.TruncationSuffix)))
	}
	lines = append(lines, m.theme.Points.Render(FormatPoints(t.Points)))
	lines = append(lines, m.theme.Button.Render(addLabel))

	style := m.theme.Card
	switch {
	case m.drag.IsSource(idx):
		style = m.theme.CardDragging
	case m.view.focus == config.ZoneTray && idx == m.view.cardCursor:
		style = m.theme.CardFocused
	}
	return style.Width(innerW).Height(innerH).Render(strings.Join(lines[:innerH], "\n"))
}

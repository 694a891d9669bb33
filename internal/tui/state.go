package tui

import (
	"github.com/akyairhashvil/ecoweek/internal/calendar"
	"github.com/akyairhashvil/ecoweek/internal/config"
	"github.com/akyairhashvil/ecoweek/internal/models"
	"github.com/akyairhashvil/ecoweek/internal/util"
)

// ViewState tracks the visible week, the selected day and cursor positions.
type ViewState struct {
	weekOffset   int
	selectedDate models.DateKey
	focus        int
	cellCursor   int
	cardCursor   int
	cardScroll   int
	rowCursor    int
	showHelp     bool
}

func newViewState(today models.DateKey, todayIdx int) *ViewState {
	return &ViewState{
		selectedDate: today,
		focus:        config.ZoneCalendar,
		cellCursor:   util.Clamp(todayIdx, 0, calendar.DaysPerWeek-1),
	}
}

// Navigate moves the visible week by delta weeks. The offset is unbounded.
func (v *ViewState) Navigate(delta int) {
	v.weekOffset += delta
}

func (v *ViewState) Select(date models.DateKey) {
	if v.selectedDate != date {
		v.rowCursor = 0
	}
	v.selectedDate = date
}

func (v *ViewState) CycleFocus(delta int) {
	v.focus = util.Wrap(v.focus+delta, config.ZoneCount)
}

// moveCard shifts the tray cursor and keeps it inside the visible window.
func (v *ViewState) moveCard(delta, total, visible int) {
	if total == 0 {
		v.cardCursor, v.cardScroll = 0, 0
		return
	}
	v.cardCursor = util.Clamp(v.cardCursor+delta, 0, total-1)
	if visible < 1 {
		visible = 1
	}
	if v.cardCursor < v.cardScroll {
		v.cardScroll = v.cardCursor
	}
	if v.cardCursor >= v.cardScroll+visible {
		v.cardScroll = v.cardCursor - visible + 1
	}
	v.cardScroll = util.Clamp(v.cardScroll, 0, max(0, total-visible))
}

func (v *ViewState) scrollCards(delta, total, visible int) {
	v.cardScroll = util.Clamp(v.cardScroll+delta, 0, max(0, total-visible))
	v.cardCursor = util.Clamp(v.cardCursor, v.cardScroll, max(v.cardScroll, v.cardScroll+visible-1))
	if total > 0 {
		v.cardCursor = util.Clamp(v.cardCursor, 0, total-1)
	}
}

// DragState is the template in flight between the tray and a day cell.
type DragState struct {
	template *models.ChallengeTemplate
	source   int
	over     models.DateKey
	keyboard bool
}

func (d *DragState) Begin(tmpl models.ChallengeTemplate, source int, keyboard bool) {
	t := tmpl
	d.template = &t
	d.source = source
	d.over = ""
	d.keyboard = keyboard
}

// End clears the drag, with or without a drop.
func (d *DragState) End() {
	d.template = nil
	d.source = -1
	d.over = ""
	d.keyboard = false
}

func (d *DragState) Active() bool { return d.template != nil }

func (d *DragState) Template() (models.ChallengeTemplate, bool) {
	if d.template == nil {
		return models.ChallengeTemplate{}, false
	}
	return *d.template, true
}

func (d *DragState) Over(date models.DateKey) {
	if d.template != nil {
		d.over = date
	}
}

func (d *DragState) IsOver(date models.DateKey) bool {
	return d.template != nil && d.over != "" && d.over == date
}

func (d *DragState) IsSource(idx int) bool {
	return d.template != nil && d.source == idx
}

package tui

import (
	"github.com/akyairhashvil/ecoweek/internal/calendar"
	"github.com/akyairhashvil/ecoweek/internal/config"
	"github.com/charmbracelet/lipgloss"
)

const (
	prevLabel    = "◀ prev"
	nextLabel    = "next ▶"
	addLabel     = "[+ add]"
	headerRow    = 0
	detailHeader = 5
)

type span struct{ start, end int }

func (s span) contains(x int) bool { return x >= s.start && x < s.end }

// screenLayout holds the rows and columns every region starts at. View and
// the mouse hit tests both derive from it.
type screenLayout struct {
	width        int
	tooNarrow    bool
	prev, next   span
	gridTop      int
	cellWidth    int
	trayTop      int
	cardsTop     int
	visibleCards int
	detailTop    int
	rowsTop      int
}

func (m Model) screenWidth() int {
	if m.width <= 0 {
		return calendar.DaysPerWeek * config.MinCellWidth
	}
	return m.width
}

func (m Model) layout() screenLayout {
	w := m.screenWidth()
	l := screenLayout{
		width:     w,
		tooNarrow: w < config.MinScreenWidth,
		gridTop:   2,
		cellWidth: max(config.MinCellWidth, w/calendar.DaysPerWeek),
	}
	l.prev = span{0, lipgloss.Width(prevLabel)}
	nextW := lipgloss.Width(nextLabel)
	l.next = span{max(l.prev.end+1, w-nextW), max(l.prev.end+1, w-nextW) + nextW}

	l.trayTop = l.gridTop + config.CellHeight
	l.cardsTop = l.trayTop + 1
	l.visibleCards = max(1, w/config.CardWidth)
	l.detailTop = l.cardsTop + config.CardHeight + 1
	l.rowsTop = l.detailTop + detailHeader
	return l
}

func (l screenLayout) cellAt(x, y int) (int, bool) {
	if y < l.gridTop || y >= l.gridTop+config.CellHeight || x < 0 {
		return 0, false
	}
	i := x / l.cellWidth
	if i >= calendar.DaysPerWeek {
		return 0, false
	}
	return i, true
}

// cardAt maps a point to a tray card index. onAdd reports a hit on the
// card's add button.
func (l screenLayout) cardAt(x, y, scroll, total int) (idx int, onAdd bool, ok bool) {
	if y < l.cardsTop || y >= l.cardsTop+config.CardHeight || x < 0 {
		return 0, false, false
	}
	col := x / config.CardWidth
	if col >= l.visibleCards {
		return 0, false, false
	}
	idx = scroll + col
	if idx >= total {
		return 0, false, false
	}
	inner := x - col*config.CardWidth - 1
	onAdd = y == l.addRow() && inner >= 0 && inner < lipgloss.Width(addLabel)
	return idx, onAdd, true
}

func (l screenLayout) addRow() int {
	return l.cardsTop + config.CardHeight - 2
}

func (l screenLayout) inTray(y int) bool {
	return y >= l.trayTop && y < l.cardsTop+config.CardHeight
}

func (l screenLayout) rowAt(y, total int) (int, bool) {
	i := y - l.rowsTop
	if i < 0 || i >= total {
		return 0, false
	}
	return i, true
}

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
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Options configures a planner Model.
type Options struct {
	Theme        string
	Now          func() time.Time
	AlertTimeout time.Duration
	ReportDir    string
}

// Model is the root bubbletea model of the weekly planner. Its managers are
// pointers so copies made by Update share state.
type Model struct {
	store     schedule.Scheduler
	templates []models.ChallengeTemplate
	now       func() time.Time
	opts      Options

	view   *ViewState
	drag   *DragState
	alerts *alert.Service
	keys   *HandlerRegistry

	theme    Theme
	progress progress.Model
	help     help.Model

	width  int
	height int
}

func NewModel(store schedule.Scheduler, templates []models.ChallengeTemplate, opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	theme := themeByName(opts.Theme)

	todayIdx := 0
	for i, k := range calendar.WeekKeys(now(), 0) {
		if k == models.DateKeyOf(now()) {
			todayIdx = i
		}
	}

	alerts := alert.New()
	st := alert.DefaultStyles()
	st.Focused = st.Focused.Background(theme.Border)
	alerts.SetStyles(st)

	h := help.New()
	h.ShortSeparator = " | "

	drag := &DragState{}
	drag.End()

	return Model{
		store:     store,
		templates: templates,
		now:       now,
		opts:      opts,
		view:      newViewState(models.DateKeyOf(now()), todayIdx),
		drag:      drag,
		alerts:    alerts,
		keys:      newKeyRegistry(),
		theme:     theme,
		progress: progress.New(
			progress.WithGradient(theme.ProgressFrom, theme.ProgressTo),
			progress.WithWidth(config.DefaultProgressWidth),
			progress.WithoutPercentage(),
		),
		help: h,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("ecoweek")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.alerts.SetSize(msg.Width, msg.Height)
		m.progress.Width = util.Clamp(msg.Width-4, 10, config.DefaultProgressWidth)
		m.help.Width = msg.Width
		m.view.moveCard(0, len(m.templates), m.layout().visibleCards)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}

	if handled, cmd := m.alerts.Update(msg); handled {
		return m, cmd
	}

	switch msg := msg.(type) {
	case alert.ResolvedMsg:
		util.Logger.Debug("alert resolved", "ticket", msg.Ticket, "outcome", msg.Outcome)
		return m, nil
	case exportedMsg:
		return m.handleExported(msg)
	case tea.KeyMsg:
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) View() string {
	if m.alerts.State() == alert.Showing {
		return m.alerts.View()
	}

	l := m.layout()
	if l.tooNarrow {
		return m.renderTooNarrow(l)
	}
	body := strings.Join([]string{
		m.renderWeekHeader(l),
		"",
		m.renderWeek(l),
		m.renderTray(l),
		"",
		m.renderDetail(l),
	}, "\n")

	lines := strings.Split(body, "\n")
	footer := m.renderFooter(l)
	if m.height > 0 {
		room := max(0, m.height-lipgloss.Height(footer))
		if len(lines) > room {
			lines = lines[:room]
		}
		for len(lines) < room {
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n") + "\n" + footer
}

// renderTooNarrow replaces the planner while the week grid cannot fit.
func (m Model) renderTooNarrow(l screenLayout) string {
	msg := strings.Join([]string{
		m.theme.Header.Render("Terminal too narrow"),
		fmt.Sprintf("Current: %d columns", l.width),
		fmt.Sprintf("Minimum: %d columns", config.MinScreenWidth),
		"Resize the terminal to continue.",
	}, "\n")
	lines := strings.Split(msg, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, l.width, config.TruncationSuffix)
	}
	return lipgloss.Place(l.width, max(m.height, len(lines)), lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}

func (m Model) renderFooter(l screenLayout) string {
	status := m.theme.Focused.Render(zoneName(m.view.focus))
	if tmpl, ok := m.drag.Template(); ok {
		hint := "release on a day"
		if m.drag.keyboard {
			hint = "enter to drop, esc to cancel"
		}
		status += m.theme.Highlight.Render("  dragging " + glyph(tmpl.Icon) + " " + tmpl.Title + " (" + hint + ")")
	}
	bindings := m.keys.HelpForZone(m.view.focus)
	var keys string
	if m.view.showHelp {
		keys = m.help.FullHelpView(chunk(bindings, 4))
	} else {
		keys = m.help.ShortHelpView(bindings)
	}
	return ansi.Truncate(status, l.width, config.TruncationSuffix) + "\n" + keys
}

// Selected is the day shown in the detail panel.
func (m Model) Selected() models.DateKey { return m.view.selectedDate }

func (m Model) WeekOffset() int { return m.view.weekOffset }

func (m Model) Alerts() *alert.Service { return m.alerts }

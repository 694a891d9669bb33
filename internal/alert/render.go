package alert

import (
	"math"
	"strings"

	"github.com/akyairhashvil/ecoweek/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const (
	dialogWidth   = 48
	borderSize    = 1
	paddingTop    = 1
	paddingLeft   = 2
	buttonSpacing = "  "
)

type Styles struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Message  lipgloss.Style
	Button   lipgloss.Style
	Focused  lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Backdrop lipgloss.Color
}

func DefaultStyles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(paddingTop, paddingLeft).
			Width(dialogWidth),
		Title:    lipgloss.NewStyle().Bold(true),
		Message:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Button:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Backdrop: lipgloss.Color("236"),
	}
}

// Icon returns the glyph for kind. Unknown kinds get the success icon.
func Icon(kind models.AlertKind) string {
	switch kind {
	case models.AlertWarning:
		return "⚠"
	case models.AlertError:
		return "✖"
	case models.AlertInfo:
		return "ℹ"
	case models.AlertSuccess:
		return "✔"
	default:
		return "✔"
	}
}

func (st Styles) accent(kind models.AlertKind) lipgloss.Style {
	switch kind {
	case models.AlertWarning:
		return st.Warning
	case models.AlertError:
		return st.Error
	case models.AlertInfo:
		return st.Info
	default:
		return st.Success
	}
}

type span struct{ start, end int }

// dialogLayout places the box on a width x height screen. Coordinates are
// absolute screen cells.
type dialogLayout struct {
	box       string
	x, y      int
	w, h      int
	footerRow int
	buttons   []span
}

func (l dialogLayout) inside(x, y int) bool {
	return x >= l.x && x < l.x+l.w && y >= l.y && y < l.y+l.h
}

func (l dialogLayout) buttonAt(x, y int) (int, bool) {
	if y != l.footerRow {
		return 0, false
	}
	for i, b := range l.buttons {
		if x >= b.start && x < b.end {
			return i, true
		}
	}
	return 0, false
}

func centerOffset(outer, inner int) int {
	gap := outer - inner
	if gap <= 0 {
		return 0
	}
	return gap - int(math.Round(float64(gap)*0.5))
}

func (s *Service) layout() dialogLayout {
	if s.current == nil {
		return dialogLayout{}
	}
	req := s.current.req
	st := s.styles
	accent := st.accent(req.Kind)

	msgWidth := dialogWidth - 2*paddingLeft
	title := ansi.Truncate(req.Title, msgWidth-2, "…")
	header := accent.Render(Icon(req.Kind)) + " " + st.Title.Render(title)
	message := st.Message.Render(wrap.String(wordwrap.String(req.Message, msgWidth), msgWidth))

	actions := actionsFor(req.Options)
	var parts []string
	var spans []span
	cursor := 0
	for i, a := range actions {
		label := "[ " + a.label + " ]"
		style := st.Button
		if i == s.focus {
			style = st.Focused
		}
		rendered := style.Render(label)
		if i > 0 {
			parts = append(parts, buttonSpacing)
			cursor += lipgloss.Width(buttonSpacing)
		}
		w := lipgloss.Width(rendered)
		spans = append(spans, span{start: cursor, end: cursor + w})
		parts = append(parts, rendered)
		cursor += w
	}
	footer := strings.Join(parts, "")

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", message, "", footer)
	box := st.Frame.BorderForeground(accent.GetForeground()).Render(content)

	l := dialogLayout{
		box: box,
		w:   lipgloss.Width(box),
		h:   lipgloss.Height(box),
	}
	l.x = centerOffset(s.width, l.w)
	l.y = centerOffset(s.height, l.h)
	l.footerRow = l.y + borderSize + paddingTop + lipgloss.Height(content) - 1
	left := l.x + borderSize + paddingLeft
	for _, sp := range spans {
		l.buttons = append(l.buttons, span{start: left + sp.start, end: left + sp.end})
	}
	return l
}

// View renders the dialog centred on the screen, or "" when Idle.
func (s *Service) View() string {
	if s.current == nil {
		return ""
	}
	l := s.layout()
	if s.width <= 0 || s.height <= 0 {
		return l.box
	}
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, l.box,
		lipgloss.WithWhitespaceChars("·"),
		lipgloss.WithWhitespaceForeground(s.styles.Backdrop),
	)
}

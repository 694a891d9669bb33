package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name           string
	Border         lipgloss.Color
	Header         lipgloss.Style
	Entry          lipgloss.Style
	CompletedEntry lipgloss.Style
	Cell           lipgloss.Style
	Today          lipgloss.Style
	Selected       lipgloss.Style
	DragOver       lipgloss.Style
	Card           lipgloss.Style
	CardDragging   lipgloss.Style
	CardFocused    lipgloss.Style
	Button         lipgloss.Style
	Danger         lipgloss.Style
	Points         lipgloss.Style
	Focused        lipgloss.Style
	Dim            lipgloss.Style
	Highlight      lipgloss.Style
	ProgressFrom   string
	ProgressTo     string
}

func newTheme(name string, border, accent, today, selected, drag, points, dim string, from, to string) Theme {
	cell := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(dim))
	card := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(border))
	return Theme{
		Name:           name,
		Border:         lipgloss.Color(border),
		Header:         lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		Entry:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CompletedEntry: lipgloss.NewStyle().Foreground(lipgloss.Color(dim)).Strikethrough(true),
		Cell:           cell,
		Today:          cell.BorderForeground(lipgloss.Color(today)).BorderStyle(lipgloss.ThickBorder()),
		Selected:       cell.BorderForeground(lipgloss.Color(selected)).BorderStyle(lipgloss.DoubleBorder()),
		DragOver:       cell.BorderForeground(lipgloss.Color(drag)).BorderStyle(lipgloss.DoubleBorder()),
		Card:           card,
		CardDragging:   card.BorderForeground(lipgloss.Color(drag)).Faint(true),
		CardFocused:    card.BorderForeground(lipgloss.Color(accent)).BorderStyle(lipgloss.ThickBorder()),
		Button:         lipgloss.NewStyle().Foreground(lipgloss.Color(accent)),
		Danger:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Points:         lipgloss.NewStyle().Foreground(lipgloss.Color(points)),
		Focused:        lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color(dim)),
		Highlight:      lipgloss.NewStyle().Foreground(lipgloss.Color(selected)),
		ProgressFrom:   from,
		ProgressTo:     to,
	}
}

var Themes = map[string]Theme{
	"default": newTheme("Default", "63", "205", "214", "42", "81", "120", "240", "#5A56E0", "#EE6FF8"),
	"forest":  newTheme("Forest", "28", "114", "220", "42", "150", "186", "241", "#1B5E20", "#9CCC65"),
	"ocean":   newTheme("Ocean", "25", "81", "222", "45", "117", "159", "60", "#01579B", "#4FC3F7"),
}

func themeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

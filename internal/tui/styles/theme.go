package styles

import (
	"logbook/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the core UI styles
var Theme = build(config.New())

type theme struct {
	App          lipgloss.Style
	Title        lipgloss.Style
	Selected     lipgloss.Style
	Unselected   lipgloss.Style
	Help         lipgloss.Style
	Box          lipgloss.Style
	Input        lipgloss.Style
	InputEditing lipgloss.Style
	CommandName  lipgloss.Style
	Error        lipgloss.Style
}

// Apply rebuilds Theme from the colors in cfg.
func Apply(cfg *config.Config) {
	Theme = build(cfg)
}

func build(cfg *config.Config) theme {
	c := cfg.Theme
	return theme{
		App: lipgloss.NewStyle().
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Primary)),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color(c.Primary)).
			Bold(true),
		Unselected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Info)),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Border)).
			Padding(0, 1),
		Input: lipgloss.NewStyle(),
		InputEditing: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Success)),
		CommandName: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Emphasis)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Error)),
	}
}

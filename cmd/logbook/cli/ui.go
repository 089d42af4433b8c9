// Package cli holds the output helpers shared by the logbook subcommands.
package cli

import (
	"fmt"
	"io"
	"strings"

	"logbook/internal/config"

	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	success lipgloss.Style
	err     lipgloss.Style
	warning lipgloss.Style
	info    lipgloss.Style
	header  lipgloss.Style
	logo    lipgloss.Style
	box     lipgloss.Style
}

var current = newPalette(config.New())

// SetTheme switches the CLI colors to the theme in cfg.
func SetTheme(cfg *config.Config) {
	current = newPalette(cfg)
}

func newPalette(cfg *config.Config) palette {
	c := cfg.Theme
	return palette{
		success: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Success)),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color(c.Error)),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Warning)),
		info:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Info)),
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Primary)),
		logo:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Primary)),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Border)).
			Padding(0, 1),
	}
}

// PrintSuccess prints a success message
func PrintSuccess(w io.Writer, message string) {
	fmt.Fprintln(w, current.success.Render("✓ "+message))
}

// PrintError prints an error message
func PrintError(w io.Writer, message string) {
	fmt.Fprintln(w, current.err.Render("Error: "+message))
}

// PrintWarning prints a warning message
func PrintWarning(w io.Writer, message string) {
	fmt.Fprintln(w, current.warning.Render("Warning: "+message))
}

// PrintInfo prints an info message
func PrintInfo(w io.Writer, message string) {
	fmt.Fprintln(w, current.info.Render(message))
}

// PrintHeader prints a header
func PrintHeader(w io.Writer, message string) {
	fmt.Fprintln(w, current.header.Render(message))
}

// DrawBox frames content with the theme's border color.
func DrawBox(content string) string {
	return current.box.Render(strings.TrimRight(content, "\n"))
}

// DrawLogo returns the banner shown above the command help.
func DrawLogo() string {
	logo := strings.Join([]string{
		" _             _                 _    ",
		"| | ___   __ _| |__   ___   ___ | | __",
		"| |/ _ \\ / _' | '_ \\ / _ \\ / _ \\| |/ /",
		"| | (_) | (_| | |_) | (_) | (_) |   < ",
		"|_|\\___/ \\__, |_.__/ \\___/ \\___/|_|\\_\\",
		"         |___/                        ",
	}, "\n")
	return current.logo.Render(logo)
}

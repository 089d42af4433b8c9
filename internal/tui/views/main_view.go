package views

import (
	"fmt"
	"strings"

	"logbook/internal/tui/styles"
	"logbook/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// SelectedMark prefixes the highlighted row.
	SelectedMark = "-> "
	cursorMark   = "█"
)

// RenderMainView stacks the help line, the list box and the input box.
func RenderMainView(m types.ModelReader) string {
	width, height := m.Size()
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	app := styles.Theme.App
	innerWidth := max(width-app.GetHorizontalFrameSize(), 1)
	innerHeight := max(height-app.GetVerticalFrameSize(), 1)

	header := RenderHelpLine(m)
	input := RenderInput(m, innerWidth)
	listHeight := innerHeight - lipgloss.Height(header) - lipgloss.Height(input)
	list := RenderList(m, innerWidth, listHeight)

	return app.Render(lipgloss.JoinVertical(lipgloss.Left, header, list, input))
}

// RenderHelpLine shows the keys that apply to the current input mode.
func RenderHelpLine(m types.ModelReader) string {
	h := help.New()
	h.ShortSeparator = ", "
	h.Styles.ShortKey = styles.Theme.Title
	h.Styles.ShortDesc = styles.Theme.Help
	h.Styles.ShortSeparator = styles.Theme.Help

	line := styles.Theme.Help.Render("Press ") + h.ShortHelpView(m.Keys().ShortHelp(m.InputMode()))
	if m.ContentMode() == types.Reference {
		line += styles.Theme.Help.Render(" | " + selectionNote(m))
	}
	return line
}

// selectionNote names the node selected in the listing, since the reference
// table does not show it.
func selectionNote(m types.ModelReader) string {
	if name, ok := m.SelectedItem(); ok {
		return "selected node: " + name
	}
	return "no node selected"
}

// RenderList draws the titled list box. The viewport follows the selected
// row so it stays visible in long listings.
func RenderList(m types.ModelReader, width, height int) string {
	box := styles.Theme.Box
	rowsWidth := max(width-box.GetHorizontalFrameSize(), 1)
	// one line for the title
	rowsHeight := max(height-box.GetVerticalFrameSize()-1, 1)

	vp := viewport.New(rowsWidth, rowsHeight)
	vp.SetContent(strings.Join(renderRows(m), "\n"))
	if sel, ok := m.Selected(); ok && m.ContentMode() == types.Browsing && sel >= rowsHeight {
		vp.SetYOffset(sel - rowsHeight + 1)
	}

	body := lipgloss.JoinVertical(lipgloss.Left, styles.Theme.Title.Render(m.Title()), vp.View())
	return box.Width(max(width-box.GetHorizontalBorderSize(), 1)).Render(body)
}

func renderRows(m types.ModelReader) []string {
	rows := m.Rows()
	if len(rows) == 0 {
		return []string{styles.Theme.Unselected.Render("(empty)")}
	}

	sel, hasSel := m.Selected()
	pad := strings.Repeat(" ", len(SelectedMark))

	lines := make([]string, len(rows))
	for i, r := range rows {
		switch m.ContentMode() {
		case types.Reference:
			lines[i] = styles.Theme.CommandName.Render(r.Name) + ": " + r.Description
		default:
			if hasSel && i == sel {
				lines[i] = styles.Theme.Selected.Render(SelectedMark + r.Name)
			} else {
				lines[i] = pad + styles.Theme.Unselected.Render(r.Name)
			}
		}
	}
	return lines
}

// RenderInput draws the input box with the line being typed.
func RenderInput(m types.ModelReader, width int) string {
	text := m.Input()
	style := styles.Theme.Input
	if m.InputMode() == types.Editing {
		style = styles.Theme.InputEditing
		text += cursorMark
	}

	label := styles.Theme.Title.Render("Input")
	if n := len(m.History()); n > 0 {
		label += styles.Theme.Help.Render(fmt.Sprintf(" (%d recorded)", n))
	}

	box := styles.Theme.Box
	return box.Width(max(width-box.GetHorizontalBorderSize(), 1)).Render(label + " " + style.Render(text))
}

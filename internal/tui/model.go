package tui

import (
	"slices"

	"logbook/internal/content"
	"logbook/internal/errors"
	"logbook/internal/log"
	"logbook/internal/tui/components"
	"logbook/internal/tui/views"
	"logbook/pkg/types"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Model struct {
	keys    *types.KeyMap
	builder *content.Builder

	// Core state
	input       InputBuffer
	contentMode types.ContentMode
	list        *components.SelectableList[string]
	content     content.Content

	// err is the fatal error that stopped the loop, if any
	err      error
	quitting bool

	width  int
	height int
}

// New builds the model and its first frame of content. The selectable list
// follows the entries of the root directory whenever they are listed.
func New(builder *content.Builder) (*Model, error) {
	entries, err := builder.Entries()
	if err != nil {
		return nil, err
	}

	m := &Model{
		keys:        types.DefaultKeyMap(),
		builder:     builder,
		contentMode: types.Browsing,
		list:        components.NewSelectableList(entries...),
	}
	if err := m.refresh(); err != nil {
		return nil, err
	}
	return m, nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return views.RenderMainView(m)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var quit bool
	switch m.input.Mode() {
	case types.Editing:
		m.handleEditingKeys(msg)
	default:
		quit = m.handleNormalKeys(msg)
	}

	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	if err := m.refresh(); err != nil {
		log.LogError(err, "Cannot build content")
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleNormalKeys reports whether the application should quit.
func (m *Model) handleNormalKeys(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Edit):
		m.input.SetMode(types.Editing)
	case key.Matches(msg, m.keys.Quit):
		return true
	case key.Matches(msg, m.keys.ToggleHelp):
		m.contentMode = m.contentMode.Toggle()
		log.Debug("Switched content to %s", m.contentMode)
	case key.Matches(msg, m.keys.Up):
		m.move(m.list.Previous())
	case key.Matches(msg, m.keys.Down):
		m.move(m.list.Next())
	}
	return false
}

func (m *Model) handleEditingKeys(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Commit):
		line := m.input.Commit()
		log.LogWithFields(log.F("line", line)).Debug("Recorded input")
	case key.Matches(msg, m.keys.Backspace):
		m.input.Backspace()
	case key.Matches(msg, m.keys.Exit):
		m.input.SetMode(types.Normal)
	case msg.Type == tea.KeyRunes && !msg.Alt:
		m.input.Append(msg.Runes...)
	case msg.Type == tea.KeySpace:
		m.input.Append(' ')
	}
}

// move absorbs navigation on an empty list.
func (m *Model) move(err error) {
	if err == nil {
		return
	}
	if errors.IsRecoverable(err) {
		log.LogWithFields(log.F("error", err)).Debug("Ignoring navigation")
		return
	}
	log.LogError(err, "Navigation failed")
}

func (m *Model) refresh() error {
	c, err := m.builder.Build(m.contentMode)
	if err != nil {
		return err
	}
	m.content = c
	if m.contentMode == types.Browsing {
		m.syncList(c.Names())
	}
	return nil
}

// syncList reseeds the selectable list when the root listing changed.
func (m *Model) syncList(names []string) {
	if slices.Equal(m.list.Items(), names) {
		return
	}
	m.list.Reset(names...)
	log.LogWithFields(log.F("count", len(names))).Debug("Listing changed")
}

// Err returns the fatal error that stopped the loop, if any.
func (m *Model) Err() error {
	return m.err
}

// Getters

func (m *Model) InputMode() types.InputMode {
	return m.input.Mode()
}

func (m *Model) ContentMode() types.ContentMode {
	return m.contentMode
}

func (m *Model) Title() string {
	return m.content.Title
}

func (m *Model) Rows() []types.Row {
	return m.content.Rows
}

func (m *Model) Selected() (int, bool) {
	return m.list.Selected()
}

// SelectedItem returns the list entry under the selection.
func (m *Model) SelectedItem() (string, bool) {
	return m.list.SelectedItem()
}

func (m *Model) Input() string {
	return m.input.Current()
}

func (m *Model) History() []string {
	return m.input.History()
}

func (m *Model) Keys() *types.KeyMap {
	return m.keys
}

func (m *Model) Size() (int, int) {
	return m.width, m.height
}

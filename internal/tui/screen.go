package tui

import (
	"logbook/internal/errors"
	"logbook/internal/log"

	tea "github.com/charmbracelet/bubbletea"
)

// Screen owns the terminal for the lifetime of one session. The program
// enables raw mode and the alternate screen on Run and restores both on
// every exit path, including a panic in the update loop.
type Screen struct {
	program *tea.Program
}

// NewScreen prepares a full-screen program for model. Extra options are
// applied after the defaults, so tests can swap input and output.
// Panics are left to Run so they reach the caller after the terminal is
// released.
func NewScreen(model tea.Model, opts ...tea.ProgramOption) *Screen {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithoutCatchPanics()}, opts...)
	return &Screen{program: tea.NewProgram(model, opts...)}
}

// Run blocks until the model quits and returns its final state.
func (s *Screen) Run() (final tea.Model, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.Release()
			panic(r)
		}
	}()

	final, err = s.program.Run()
	if err != nil {
		return final, errors.NewTerminalError("terminal session failed", err)
	}
	if final == nil {
		return nil, errors.NewTerminalError("terminal session ended without a model", nil)
	}
	return final, nil
}

// Release hands the terminal back to the shell.
func (s *Screen) Release() {
	if err := s.program.ReleaseTerminal(); err != nil {
		log.Warn("Cannot restore terminal: %v", err)
	}
}

// Run drives m on a fresh screen and reports the error that ended the
// session, if any.
func Run(m *Model, opts ...tea.ProgramOption) error {
	final, err := NewScreen(m, opts...).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(*Model); ok {
		return fm.Err()
	}
	return m.Err()
}

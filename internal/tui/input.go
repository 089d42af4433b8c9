package tui

import "logbook/pkg/types"

// InputBuffer holds the text being typed and the lines recorded so far.
type InputBuffer struct {
	mode    types.InputMode
	current []rune
	history []string
}

func (b *InputBuffer) Mode() types.InputMode {
	return b.mode
}

func (b *InputBuffer) SetMode(mode types.InputMode) {
	b.mode = mode
}

// Append adds typed characters to the current line.
func (b *InputBuffer) Append(r ...rune) {
	b.current = append(b.current, r...)
}

// Backspace removes the last character, if any.
func (b *InputBuffer) Backspace() {
	if len(b.current) > 0 {
		b.current = b.current[:len(b.current)-1]
	}
}

// Commit moves the current line into the history and clears it.
func (b *InputBuffer) Commit() string {
	line := string(b.current)
	b.history = append(b.history, line)
	b.current = b.current[:0]
	return line
}

func (b *InputBuffer) Current() string {
	return string(b.current)
}

// History returns a copy of the recorded lines, oldest first.
func (b *InputBuffer) History() []string {
	history := make([]string, len(b.history))
	copy(history, b.history)
	return history
}

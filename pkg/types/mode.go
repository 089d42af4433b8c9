package types

// InputMode is the text-entry state of the input box.
type InputMode int

const (
	// Normal is the default mode: keys navigate and switch views
	Normal InputMode = iota
	// Editing sends printable keys to the input box
	Editing
)

func (m InputMode) String() string {
	switch m {
	case Editing:
		return "editing"
	default:
		return "normal"
	}
}

// ContentMode selects what the list area shows.
type ContentMode int

const (
	// Browsing lists the entries of the root directory
	Browsing ContentMode = iota
	// Reference lists the command reference table
	Reference
)

// Toggle returns the other content mode.
func (m ContentMode) Toggle() ContentMode {
	if m == Browsing {
		return Reference
	}
	return Browsing
}

func (m ContentMode) String() string {
	switch m {
	case Reference:
		return "reference"
	default:
		return "browsing"
	}
}

// Row is one line of the list area.
type Row struct {
	Name        string
	Description string
}

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	InputMode() InputMode
	ContentMode() ContentMode
	Title() string
	Rows() []Row
	Selected() (int, bool)
	SelectedItem() (string, bool)
	Input() string
	History() []string
	Keys() *KeyMap
	Size() (width, height int)
}

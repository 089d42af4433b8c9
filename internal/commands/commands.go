// Package commands reads the command reference file: one command per line,
// usage text and description separated by a single '-'.
package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"logbook/internal/errors"
)

// Delimiter separates the usage text from the description.
const Delimiter = "-"

// DefaultLines is the reference content written on first run.
var DefaultLines = []string{
	"mkdir <Node Name>-Create new Node",
	"rm <Node Name>-Remove empty Nodes",
}

// Entry is one command of the reference table.
type Entry struct {
	Name        string
	Description string
}

// String returns the entry in its on-disk form.
func (e Entry) String() string {
	return e.Name + Delimiter + e.Description
}

// Table is a parsed reference file.
type Table struct {
	Path    string
	Entries []Entry
}

// ParseLine splits one line into an Entry. Lines that do not split into
// exactly two fields are rejected.
func ParseLine(line string) (Entry, error) {
	fields := strings.Split(line, Delimiter)
	if len(fields) != 2 {
		return Entry{}, fmt.Errorf("expected 2 fields separated by %q, got %d", Delimiter, len(fields))
	}
	return Entry{Name: fields[0], Description: fields[1]}, nil
}

// Parse reads every line of r. name identifies the source in errors.
func Parse(r io.Reader, name string) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		entry, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, errors.NewConfigError("malformed command line", fmt.Sprintf("%s:%d", name, lineNo), errors.ConfigParseFailed, err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewFileError("error reading command file", name, errors.FileOperationFailed, err)
	}

	return entries, nil
}

// Load opens and parses the reference file at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.FromOS("cannot open command file", path, errors.FileOperationFailed, err)
	}
	defer f.Close()

	entries, err := Parse(f, path)
	if err != nil {
		return nil, err
	}
	return &Table{Path: path, Entries: entries}, nil
}

// WriteDefaults writes DefaultLines to w, one per line.
func WriteDefaults(w io.Writer) error {
	for _, line := range DefaultLines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Package content builds what the list area shows: the entries of the root
// directory while browsing, or the command reference table.
package content

import (
	"os"
	"path/filepath"
	"sort"

	"logbook/internal/commands"
	"logbook/internal/config"
	"logbook/internal/errors"
	"logbook/internal/log"
	"logbook/internal/metadata"
	"logbook/pkg/types"

	"github.com/gobwas/glob"
)

// ReferenceTitle is the list box title in Reference mode.
const ReferenceTitle = "Commands"

// Content is one frame's worth of list rows.
type Content struct {
	Title string
	Rows  []types.Row
}

// Names returns the first column of every row.
func (c Content) Names() []string {
	names := make([]string, len(c.Rows))
	for i, r := range c.Rows {
		names[i] = r.Name
	}
	return names
}

type Option func(*Builder)

// WithSort sets the listing order (config.SortByName or config.SortNone).
func WithSort(order string) Option {
	return func(b *Builder) {
		b.sortByName = order != config.SortNone
	}
}

// WithHidden drops entries whose name matches any pattern.
func WithHidden(patterns []glob.Glob) Option {
	return func(b *Builder) {
		b.hide = patterns
	}
}

// FromConfig applies the listing section of cfg.
func FromConfig(cfg *config.Config) Option {
	return func(b *Builder) {
		WithSort(cfg.Listing.Sort)(b)
		WithHidden(cfg.HidePatterns())(b)
	}
}

type Builder struct {
	paths      metadata.Paths
	sortByName bool
	hide       []glob.Glob

	// table stays nil until the first Reference build; it is never reloaded.
	table *commands.Table
}

func NewBuilder(paths metadata.Paths, opts ...Option) *Builder {
	b := &Builder{
		paths:      paths,
		sortByName: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) Paths() metadata.Paths {
	return b.paths
}

// Build produces the rows for mode.
func (b *Builder) Build(mode types.ContentMode) (Content, error) {
	switch mode {
	case types.Reference:
		return b.buildReference()
	default:
		return b.buildListing()
	}
}

func (b *Builder) buildListing() (Content, error) {
	names, err := b.Entries()
	if err != nil {
		return Content{}, err
	}

	rows := make([]types.Row, len(names))
	for i, name := range names {
		rows[i] = types.Row{Name: name}
	}
	return Content{Title: filepath.Base(b.paths.RootDir), Rows: rows}, nil
}

func (b *Builder) buildReference() (Content, error) {
	entries, err := b.Commands()
	if err != nil {
		return Content{}, err
	}

	rows := make([]types.Row, len(entries))
	for i, e := range entries {
		rows[i] = types.Row{Name: e.Name, Description: e.Description}
	}
	return Content{Title: ReferenceTitle, Rows: rows}, nil
}

// Entries lists the names of the files and directories directly under the
// root directory.
func (b *Builder) Entries() ([]string, error) {
	return b.list(func(os.DirEntry) bool { return true })
}

// Nodes lists only the directories directly under the root directory.
func (b *Builder) Nodes() ([]string, error) {
	return b.list(os.DirEntry.IsDir)
}

func (b *Builder) list(keep func(os.DirEntry) bool) ([]string, error) {
	dir, err := os.Open(b.paths.RootDir)
	if err != nil {
		return nil, errors.FromOS("cannot read directory", b.paths.RootDir, errors.DirectoryReadFailed, err)
	}
	defer dir.Close()

	// ReadDir on the handle keeps enumeration order; os.ReadDir would sort.
	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, errors.FromOS("cannot read directory", b.paths.RootDir, errors.DirectoryReadFailed, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !keep(entry) || b.hidden(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}

	if b.sortByName {
		sort.Strings(names)
	}
	return names, nil
}

func (b *Builder) hidden(name string) bool {
	for _, g := range b.hide {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Commands returns the reference table, reading the command file on the
// first call only.
func (b *Builder) Commands() ([]commands.Entry, error) {
	if b.table == nil {
		table, err := commands.Load(b.paths.CommandFile)
		if err != nil {
			return nil, err
		}
		log.LogWithFields(log.F("file", table.Path), log.F("count", len(table.Entries))).Debug("Loaded command reference")
		b.table = table
	}
	return b.table.Entries, nil
}

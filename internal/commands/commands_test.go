package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"logbook/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Entry
		wantErr bool
	}{
		{
			name: "default mkdir line",
			line: "mkdir <Node Name>-Create new Node",
			want: Entry{Name: "mkdir <Node Name>", Description: "Create new Node"},
		},
		{
			name: "empty description",
			line: "ls-",
			want: Entry{Name: "ls", Description: ""},
		},
		{name: "no delimiter", line: "mkdir <Node Name>", wantErr: true},
		{name: "two delimiters", line: "rm -r-Remove recursively", wantErr: true},
		{name: "blank line", line: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("default content", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteDefaults(&buf))

		entries, err := Parse(&buf, "commands.txt")
		require.NoError(t, err)
		assert.Equal(t, []Entry{
			{Name: "mkdir <Node Name>", Description: "Create new Node"},
			{Name: "rm <Node Name>", Description: "Remove empty Nodes"},
		}, entries)
	})

	t.Run("crlf line endings", func(t *testing.T) {
		entries, err := Parse(strings.NewReader("cd <Node>-Enter a Node\r\n"), "commands.txt")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Enter a Node", entries[0].Description)
	})

	t.Run("malformed line reports its position", func(t *testing.T) {
		input := "mkdir <Node Name>-Create new Node\nbroken line\n"
		entries, err := Parse(strings.NewReader(input), "commands.txt")
		require.Error(t, err)
		assert.Nil(t, entries)
		assert.True(t, errors.IsConfigParse(err))

		var configErr *errors.ConfigError
		require.True(t, errors.As(err, &configErr))
		assert.Equal(t, "commands.txt:2", configErr.Param())
	})

	t.Run("empty input", func(t *testing.T) {
		entries, err := Parse(strings.NewReader(""), "commands.txt")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestEntryString(t *testing.T) {
	for _, line := range DefaultLines {
		entry, err := ParseLine(line)
		require.NoError(t, err)
		assert.Equal(t, line, entry.String())
	}
}

func TestLoad(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "commands.txt")
		require.NoError(t, os.WriteFile(path, []byte("touch <File>-Create empty file\n"), 0644))

		table, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, path, table.Path)
		assert.Equal(t, []Entry{{Name: "touch <File>", Description: "Create empty file"}}, table.Entries)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
		require.Error(t, err)
		assert.True(t, errors.IsFileNotFound(err))
	})
}

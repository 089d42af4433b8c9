package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	// Test creating a new error
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	// Test creating a new formatted error
	err = Newf("formatted %s", "error")
	assert.NotNil(t, err)
	assert.Equal(t, "formatted error", err.Error())

	// Check that the error is an ApplicationError
	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, "formatted error", appErr.Error())
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	// Test wrapping an error
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.NotNil(t, wrappedErr)
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())

	// Test unwrapping
	unwrappedErr := Unwrap(wrappedErr)
	assert.Equal(t, origErr, unwrappedErr)

	// Test wrapped formatted error
	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.NotNil(t, wrappedFormatted)
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	// Test wrapping nil returns nil
	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	// Test deeper wrapping
	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.Equal(t, "deeper: wrapped: original error", deepWrapped.Error())

	// Test Is function
	assert.True(t, Is(wrappedErr, origErr))
	assert.True(t, Is(deepWrapped, origErr))
}

func TestFileError(t *testing.T) {
	// Test creating a file error
	fileErr := NewFileError("cannot access", "/path/to/file", FileAccessDenied, nil)
	assert.NotNil(t, fileErr)
	assert.Equal(t, "cannot access: /path/to/file", fileErr.Error())
	assert.Equal(t, "/path/to/file", fileErr.Path())
	assert.Equal(t, FileAccessDenied, fileErr.Kind())

	// Test with wrapped error
	origErr := fmt.Errorf("permission denied")
	fileErr = NewFileError("cannot access", "/path/to/file", FileAccessDenied, origErr)
	assert.Equal(t, "cannot access: /path/to/file: permission denied", fileErr.Error())
	assert.Equal(t, origErr, Unwrap(fileErr))

	// Test IsFileNotFound predicate
	notFoundErr := NewFileError("file not found", "/missing/file", FileNotFound, nil)
	assert.True(t, IsFileNotFound(notFoundErr))
	assert.False(t, IsFileNotFound(fileErr)) // This is FileAccessDenied

	// Test IsFileAccessDenied predicate
	assert.True(t, IsFileAccessDenied(fileErr))
	assert.False(t, IsFileAccessDenied(notFoundErr))

	// Test As for FileError
	var fe *FileError
	assert.True(t, As(fileErr, &fe))
	assert.Equal(t, "/path/to/file", fe.Path())
}

func TestConfigError(t *testing.T) {
	// Test creating a config error
	configErr := NewConfigError("invalid value", "listing.sort", InvalidConfig, nil)
	assert.NotNil(t, configErr)
	assert.Equal(t, "invalid value: listing.sort", configErr.Error())
	assert.Equal(t, "listing.sort", configErr.Param())
	assert.Equal(t, InvalidConfig, configErr.Kind())

	// Test with wrapped error
	origErr := fmt.Errorf("value out of range")
	configErr = NewConfigError("invalid value", "listing.sort", InvalidConfig, origErr)
	assert.Equal(t, "invalid value: listing.sort: value out of range", configErr.Error())
	assert.Equal(t, origErr, Unwrap(configErr))

	// Test IsInvalidConfig predicate
	assert.True(t, IsInvalidConfig(configErr))
	assert.False(t, IsInvalidConfig(New("some other error")))

	// Test As for ConfigError
	var ce *ConfigError
	assert.True(t, As(configErr, &ce))
	assert.Equal(t, "listing.sort", ce.Param())
}

func TestFromOS(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"missing", fs.ErrNotExist, FileNotFound},
		{"permission", fs.ErrPermission, FileAccessDenied},
		{"wrapped missing", fmt.Errorf("open x: %w", fs.ErrNotExist), FileNotFound},
		{"other", fmt.Errorf("disk full"), FileCreateFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileErr := FromOS("cannot create", "/meta", FileCreateFailed, tt.err)
			assert.Equal(t, tt.want, fileErr.Kind())
			assert.Equal(t, "/meta", fileErr.Path())
			assert.True(t, IsFilesystem(fileErr))
			assert.False(t, IsRecoverable(fileErr))
		})
	}
}

func TestListError(t *testing.T) {
	listErr := NewListError("cannot move selection", 0)
	assert.Equal(t, "cannot move selection: items length: 0", listErr.Error())
	assert.Equal(t, EmptyCollection, listErr.Kind())
	assert.Equal(t, 0, listErr.Length())

	// Any list error matches the sentinel
	assert.True(t, Is(listErr, ErrEmptyCollection))
	assert.True(t, IsEmptyCollection(listErr))
	assert.True(t, IsRecoverable(listErr))

	wrapped := Wrap(listErr, "navigation")
	assert.True(t, IsEmptyCollection(wrapped))
	assert.True(t, IsRecoverable(wrapped))

	assert.False(t, IsEmptyCollection(New("other")))
	assert.False(t, IsRecoverable(nil))
}

func TestConfigParseError(t *testing.T) {
	parseErr := NewConfigError("malformed command line", "commands.txt:3", ConfigParseFailed, nil)
	assert.Equal(t, "malformed command line: commands.txt:3", parseErr.Error())
	assert.True(t, IsConfigParse(parseErr))
	assert.False(t, IsInvalidConfig(parseErr))
	assert.False(t, IsRecoverable(parseErr))
}

func TestTerminalError(t *testing.T) {
	cause := errors.New("not a tty")
	termErr := NewTerminalError("terminal session failed", cause)
	assert.Equal(t, "terminal session failed: not a tty", termErr.Error())
	assert.Equal(t, TerminalFailed, termErr.Kind())
	assert.True(t, IsTerminal(termErr))
	assert.True(t, Is(termErr, cause))
	assert.False(t, IsTerminal(cause))
}

func TestErrorChains(t *testing.T) {
	// Create a chain of errors
	baseErr := errors.New("base error")
	fileErr := NewFileError("file error", "/path/to/file", FileNotFound, baseErr)
	configErr := NewConfigError("config error", "commands.txt", ConfigParseFailed, fileErr)
	outer := Wrap(configErr, "building content")

	// Test complete error message
	assert.Equal(t, "building content: config error: commands.txt: file error: /path/to/file: base error", outer.Error())

	// Test Is function through the chain
	assert.True(t, Is(outer, baseErr))
	assert.True(t, Is(outer, fileErr))
	assert.True(t, Is(outer, configErr))

	// Test As function through the chain
	var fe *FileError
	assert.True(t, As(outer, &fe))
	assert.Equal(t, "/path/to/file", fe.Path())

	var ce *ConfigError
	assert.True(t, As(outer, &ce))
	assert.Equal(t, "commands.txt", ce.Param())

	// Test error predicates through the chain
	assert.True(t, IsFileNotFound(outer))
	assert.True(t, IsConfigParse(outer))
	assert.False(t, IsRecoverable(outer))
}

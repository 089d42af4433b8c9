// Package errors provides standardized error handling for logbook.
// It defines the error kinds the application distinguishes, typed errors for
// each failure domain, and helpers to create, wrap and classify them.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrEmptyCollection matches every navigation error on an empty list.
var ErrEmptyCollection = NewListError("no items to navigate", 0)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// File error kinds
	FileNotFound
	FileAccessDenied
	InvalidPath
	FileCreateFailed
	FileOperationFailed
	DirectoryReadFailed
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	ConfigParseFailed
	// List error kinds
	EmptyCollection
	// Terminal error kinds
	TerminalFailed
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors related to file operations
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// FromOS wraps an error returned by the os package, picking the kind from the
// underlying cause. fallback is used when the cause is neither a missing file
// nor a permission problem.
func FromOS(msg string, path string, fallback ErrorKind, err error) *FileError {
	kind := fallback
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = FileNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = FileAccessDenied
	}
	return NewFileError(msg, path, kind, err)
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration, including the
// command reference file.
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// ListError is returned by list navigation.
type ListError struct {
	ApplicationError
	length int
}

// NewListError creates a new empty-collection error for a list of the given length.
func NewListError(msg string, length int) *ListError {
	return &ListError{
		ApplicationError: ApplicationError{
			msg:  msg,
			kind: EmptyCollection,
		},
		length: length,
	}
}

// Error returns the list error message
func (e *ListError) Error() string {
	return fmt.Sprintf("%s: items length: %d", e.msg, e.length)
}

// Is matches any other ListError of the same kind, so callers can compare
// against ErrEmptyCollection.
func (e *ListError) Is(target error) bool {
	var other *ListError
	if errors.As(target, &other) {
		return other.kind == e.kind
	}
	return false
}

// Length returns the number of items the list held when navigation failed
func (e *ListError) Length() int {
	return e.length
}

// TerminalError represents failures of the terminal backend.
type TerminalError struct {
	ApplicationError
}

// NewTerminalError creates a new terminal error
func NewTerminalError(msg string, err error) *TerminalError {
	return &TerminalError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: TerminalFailed,
		},
	}
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// IsFileNotFound checks if the error is a file not found error
func IsFileNotFound(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == FileNotFound
	}
	return false
}

// IsFileAccessDenied checks if the error is a file access denied error
func IsFileAccessDenied(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == FileAccessDenied
	}
	return false
}

// IsFilesystem checks if the error came from a filesystem operation
func IsFilesystem(err error) bool {
	var fileErr *FileError
	return errors.As(err, &fileErr)
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsConfigParse checks if the error is a malformed command reference line
func IsConfigParse(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == ConfigParseFailed
	}
	return false
}

// IsEmptyCollection checks if the error is a navigation on an empty list
func IsEmptyCollection(err error) bool {
	return errors.Is(err, ErrEmptyCollection)
}

// IsTerminal checks if the error came from the terminal backend
func IsTerminal(err error) bool {
	var termErr *TerminalError
	return errors.As(err, &termErr)
}

// IsRecoverable reports whether err may be absorbed where it occurred.
// Everything except an empty-collection navigation is fatal.
func IsRecoverable(err error) bool {
	return IsEmptyCollection(err)
}

// Package metadata locates, and on first run creates, the hidden directory
// that holds the browsable root and the command reference file.
package metadata

import (
	"os"
	"path/filepath"

	"logbook/internal/commands"
	"logbook/internal/errors"
	"logbook/internal/log"
)

const (
	DirName         = ".metadata"
	RootDirName     = "root"
	CommandFileName = "commands.txt"
)

// Paths are resolved once at startup and never change afterwards.
type Paths struct {
	MetaDir     string
	RootDir     string
	CommandFile string
}

// Resolve computes the paths under baseDir without touching the filesystem.
func Resolve(baseDir string) Paths {
	metaDir := filepath.Join(baseDir, DirName)
	return Paths{
		MetaDir:     metaDir,
		RootDir:     filepath.Join(metaDir, RootDirName),
		CommandFile: filepath.Join(metaDir, CommandFileName),
	}
}

// Ensure returns the metadata paths under baseDir. When the metadata
// directory is missing it is created together with the root directory and
// the default command file. An existing metadata directory is trusted as is
// and nothing is written.
func Ensure(baseDir string) (Paths, error) {
	paths := Resolve(baseDir)

	info, err := os.Stat(paths.MetaDir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return Paths{}, errors.NewFileError("metadata path is not a directory", paths.MetaDir, errors.InvalidPath, nil)
		}
		log.LogWithFields(log.F("dir", paths.MetaDir)).Debug("Using existing metadata")
		return paths, nil
	case !os.IsNotExist(err):
		return Paths{}, errors.FromOS("cannot access metadata directory", paths.MetaDir, errors.FileOperationFailed, err)
	}

	if err := create(paths); err != nil {
		return Paths{}, err
	}
	log.Info("Created metadata directory %s", paths.MetaDir)
	return paths, nil
}

func create(paths Paths) error {
	if err := os.Mkdir(paths.MetaDir, 0755); err != nil {
		return errors.FromOS("cannot create metadata directory", paths.MetaDir, errors.FileCreateFailed, err)
	}
	if err := os.Mkdir(paths.RootDir, 0755); err != nil {
		return errors.FromOS("cannot create root directory", paths.RootDir, errors.FileCreateFailed, err)
	}

	f, err := os.Create(paths.CommandFile)
	if err != nil {
		return errors.FromOS("cannot create command file", paths.CommandFile, errors.FileCreateFailed, err)
	}
	if err := commands.WriteDefaults(f); err != nil {
		f.Close()
		return errors.FromOS("cannot write command file", paths.CommandFile, errors.FileCreateFailed, err)
	}
	if err := f.Close(); err != nil {
		return errors.FromOS("cannot write command file", paths.CommandFile, errors.FileCreateFailed, err)
	}
	return nil
}

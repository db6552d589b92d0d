package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	// DefaultDirName defines the folder under the user's home directory.
	DefaultDirName = ".campusplan"

	dirPermissions  = 0o755
	filePermissions = 0o644
)

// FileKV stores one file per key under a base directory. Writes go
// through a temp file and rename so a crash never leaves a truncated
// collection behind.
type FileKV struct {
	basePath string
}

// NewFileKV constructs a FileKV rooted at the provided directory. If
// basePath is empty, it falls back to ~/.campusplan (or another
// location determined by ResolveBasePath).
func NewFileKV(basePath string) (*FileKV, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}
	return &FileKV{basePath: abs}, nil
}

// BasePath returns the root directory holding all key files.
func (f *FileKV) BasePath() string {
	return f.basePath
}

func (f *FileKV) keyPath(key string) string {
	return filepath.Join(f.basePath, key+".json")
}

// Load reads the blob stored for key. A file that does not exist is
// reported as absent, not as an error.
func (f *FileKV) Load(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "read key %s", key)
	}
	return data, true, nil
}

// Save atomically replaces the blob stored for key.
func (f *FileKV) Save(key string, data []byte) error {
	if err := os.MkdirAll(f.basePath, dirPermissions); err != nil {
		return errors.Wrap(err, "create storage directory")
	}

	temp, err := os.CreateTemp(f.basePath, "campusplan-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer os.Remove(temp.Name())

	if _, err := temp.Write(data); err != nil {
		temp.Close()
		return errors.Wrapf(err, "write key %s", key)
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return errors.Wrapf(err, "sync key %s", key)
	}
	if err := temp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(temp.Name(), filePermissions); err != nil {
		return err
	}

	return os.Rename(temp.Name(), f.keyPath(key))
}

// ResolveBasePath determines where campusplan stores its data,
// defaulting to ~/.campusplan. The location can be overridden by
// exporting CAMPUSPLAN_HOME.
func ResolveBasePath() (string, error) {
	if override, ok := os.LookupEnv("CAMPUSPLAN_HOME"); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return normalizePath(override)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

func normalizePath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}

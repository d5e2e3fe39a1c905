// Package fileio holds the file write used for every generated artifact.
package fileio

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// Modes for created files and directories.
const (
	FileMode fs.FileMode = 0o644
	DirMode  fs.FileMode = 0o750
)

// WriteFile replaces path with data, creating parent directories as needed.
// Readers never observe a partially written file. An existing file keeps its
// mode; a new file gets FileMode.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DirMode); err != nil {
			return err
		}
	}

	mode := FileMode
	info, err := os.Stat(path)
	switch {
	case err == nil:
		mode = info.Mode().Perm()
	case !stderrors.Is(err, fs.ErrNotExist):
		return err
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return err
	}
	// the temp file behind the rename is created 0600
	return os.Chmod(path, mode)
}

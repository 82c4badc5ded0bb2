package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// NewOS creates a new OS filesystem implementation
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// ReadFile reads the named file, refusing directories
func ReadFile(fsys afero.Fs, name string) ([]byte, error) {
	info, err := fsys.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(fsys, name)
}

// resolveTarget follows symlinks on the OS filesystem so a rewrite replaces
// the linked file rather than the link itself.
func resolveTarget(fsys afero.Fs, name string) string {
	if _, ok := fsys.(*afero.OsFs); !ok {
		return name
	}
	resolved, err := filepath.EvalSymlinks(name)
	if err != nil {
		return name
	}
	return resolved
}

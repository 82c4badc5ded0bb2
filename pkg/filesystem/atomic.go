package filesystem

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

const defaultFileMode fs.FileMode = 0644

// WriteFileAtomic replaces the contents of name with data.
//
// The data is written to a temporary file in the same directory, flushed to
// stable storage and renamed over the original. The original file mode is
// preserved, and so is the owner where the platform reports one. Hard links
// to the original keep pointing at the old contents. On any failure the
// temporary file is removed and name is left exactly as it was.
func WriteFileAtomic(fsys afero.Fs, name string, data []byte) error {
	target := resolveTarget(fsys, name)

	perm := defaultFileMode
	info, statErr := fsys.Stat(target)
	if statErr == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(target)
	tmp, err := afero.TempFile(fsys, dir, "."+filepath.Base(target)+".envfill-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	fail := func(step string, err error) error {
		_ = tmp.Close()
		_ = fsys.Remove(tmpName)
		return fmt.Errorf("failed to %s %s: %w", step, tmpName, err)
	}

	n, err := tmp.Write(data)
	if err != nil {
		return fail("write", err)
	}
	if n != len(data) {
		return fail("write", fmt.Errorf("short write: %d of %d bytes", n, len(data)))
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := tmp.Close(); err != nil {
		_ = fsys.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := fsys.Chmod(tmpName, perm); err != nil {
		_ = fsys.Remove(tmpName)
		return fmt.Errorf("failed to set mode on %s: %w", tmpName, err)
	}
	if statErr == nil {
		preserveOwner(fsys, tmpName, info)
	}
	if err := fsys.Rename(tmpName, target); err != nil {
		_ = fsys.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", target, err)
	}

	syncDir(fsys, dir)
	return nil
}

// syncDir flushes the directory entry after a rename. Not every platform
// supports syncing a directory, so failures are ignored.
func syncDir(fsys afero.Fs, dir string) {
	d, err := fsys.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}

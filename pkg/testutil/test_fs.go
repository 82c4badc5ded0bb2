package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// NewTestFS creates an in-memory filesystem with files created under root.
// Keys of files are slash-separated paths relative to root.
func NewTestFS(t *testing.T, root string, files map[string]string) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll(root, 0755); err != nil {
		t.Fatalf("Failed to create root %s: %v", root, err)
	}
	for name, content := range files {
		WriteMemFile(t, fsys, filepath.Join(root, filepath.FromSlash(name)), content)
	}
	return fsys
}

// WriteMemFile writes content to path on fsys, creating parent directories.
func WriteMemFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := afero.WriteFile(fsys, path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
}

// ReadMemFile reads path from fsys and fails the test on error.
func ReadMemFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(data)
}

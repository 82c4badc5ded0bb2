package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic_MemFS(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/work/app.conf", []byte("name={{APP_NAME}}"), 0600))

	err := WriteFileAtomic(fsys, "/work/app.conf", []byte("name=World"))
	require.NoError(t, err)

	data, err := afero.ReadFile(fsys, "/work/app.conf")
	require.NoError(t, err)
	assert.Equal(t, "name=World", string(data))

	info, err := fsys.Stat("/work/app.conf")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := afero.ReadDir(fsys, "/work")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestWriteFileAtomic_OS(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(path, []byte("old contents that are long"), 0640))

	err := WriteFileAtomic(NewOS(), path, []byte("new"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomic_FollowsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.txt")
	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.WriteFile(target, []byte("{{APP_X}}"), 0644))
	require.NoError(t, os.Symlink(target, link))

	require.NoError(t, WriteFileAtomic(NewOS(), link, []byte("x")))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "link must stay a link")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestWriteFileAtomic_FailureLeavesOriginal(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/work/a.txt", []byte("original"), 0644))
	fsys := afero.NewReadOnlyFs(base)

	err := WriteFileAtomic(fsys, "/work/a.txt", []byte("replacement"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "/work"), "error should name the directory: %v", err)

	data, err := afero.ReadFile(base, "/work/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}

func TestReadFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/a.txt", []byte("hello"), 0644))

	data, err := ReadFile(fsys, "/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	_, err = ReadFile(fsys, "/missing.txt")
	assert.Error(t, err)

	require.NoError(t, fsys.MkdirAll("/dir", 0755))
	_, err = ReadFile(fsys, "/dir")
	assert.Error(t, err)
}

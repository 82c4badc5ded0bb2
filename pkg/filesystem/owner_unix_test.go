//go:build unix

package filesystem

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ownerOf(t *testing.T, path string) (uint32, uint32) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	st, ok := info.Sys().(*syscall.Stat_t)
	require.True(t, ok)
	return st.Uid, st.Gid
}

func TestWriteFileAtomic_KeepsOwner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.conf")
	require.NoError(t, os.WriteFile(path, []byte("{{APP_NAME}}"), 0644))

	if os.Geteuid() == 0 {
		require.NoError(t, os.Chown(path, 1, 1))
	}
	uid, gid := ownerOf(t, path)

	require.NoError(t, WriteFileAtomic(NewOS(), path, []byte("World")))

	gotUID, gotGID := ownerOf(t, path)
	assert.Equal(t, uid, gotUID)
	assert.Equal(t, gid, gotGID)
}

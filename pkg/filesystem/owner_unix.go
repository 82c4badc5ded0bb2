//go:build unix

package filesystem

import (
	"io/fs"
	"syscall"

	"github.com/spf13/afero"
)

// preserveOwner copies the uid and gid of orig onto name. Only privileged
// processes can give a file away, so a failed chown keeps the new file
// owned by the caller.
func preserveOwner(fsys afero.Fs, name string, orig fs.FileInfo) {
	st, ok := orig.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}
	_ = fsys.Chown(name, int(st.Uid), int(st.Gid))
}

//go:build !unix

package filesystem

import (
	"io/fs"

	"github.com/spf13/afero"
)

func preserveOwner(afero.Fs, string, fs.FileInfo) {}

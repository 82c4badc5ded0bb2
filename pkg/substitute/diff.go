package substitute

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders the change from before to after as a unified-style patch
// with the path in the header. It returns an empty string when nothing
// changed.
func Diff(path, before, after string) string {
	if before == after {
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	patches := dmp.PatchMake(before, diffs)
	return "--- " + path + "\n+++ " + path + "\n" + dmp.PatchToText(patches)
}

package engine

// FileResult describes what happened to a single matched file
type FileResult struct {
	Path     string   `json:"path"`
	Tokens   []string `json:"tokens"`
	Unknown  []string `json:"unknown,omitempty"`
	Replaced int      `json:"replaced"`
	Changed  bool     `json:"changed"`
	Written  bool     `json:"written"`
}

// SkippedEntry is a glob entry that failed to resolve and was ignored
type SkippedEntry struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Result summarizes a run
type Result struct {
	Pattern   string         `json:"pattern"`
	Variables []string       `json:"variables"`
	Files     []FileResult   `json:"files"`
	Skipped   []SkippedEntry `json:"skipped,omitempty"`
	DryRun    bool           `json:"dryRun"`
}

// Changed returns the number of files whose content differs after substitution
func (r *Result) Changed() int {
	n := 0
	for _, f := range r.Files {
		if f.Changed {
			n++
		}
	}
	return n
}

// Written returns the number of files rewritten on disk
func (r *Result) Written() int {
	n := 0
	for _, f := range r.Files {
		if f.Written {
			n++
		}
	}
	return n
}

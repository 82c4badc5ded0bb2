// Package resolver expands a glob pattern into the files it selects.
//
// Patterns use doublestar syntax (*, ?, [...], {a,b} and ** across
// directories) and are always relative to the resolver root. Validation is
// separate from expansion: Validate never touches the filesystem.
package resolver

import (
	stderrors "errors"
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/arthur-debert/envfill/pkg/errors"
	"github.com/arthur-debert/envfill/pkg/logging"
)

var errStop = stderrors.New("stop")

// Normalize turns a user supplied pattern into the slash-separated form
// matched against the root. Leading "/" and "./" are dropped, so both
// "/conf/*.tmpl" and "./conf/*.tmpl" mean conf/*.tmpl under the root.
func Normalize(pattern string) string {
	p := filepath.ToSlash(pattern)
	for {
		switch {
		case strings.HasPrefix(p, "/"):
			p = p[1:]
		case strings.HasPrefix(p, "./"):
			p = p[2:]
		default:
			return p
		}
	}
}

// Validate checks pattern syntax without any filesystem access
func Validate(pattern string) error {
	p := Normalize(pattern)
	if p == "" {
		return errors.New(errors.ErrGlobInvalid, "failed to parse glob: pattern is empty").
			WithDetail("pattern", pattern)
	}
	if !doublestar.ValidatePattern(p) {
		return errors.Newf(errors.ErrGlobInvalid, "failed to parse glob %q", pattern).
			WithDetail("pattern", pattern)
	}
	for _, segment := range strings.Split(p, "/") {
		if segment == ".." {
			return errors.Newf(errors.ErrGlobInvalid, "glob %q must not leave the working directory", pattern).
				WithDetail("pattern", pattern)
		}
	}
	return nil
}

// Resolver enumerates the files matched by a pattern under a root directory
type Resolver struct {
	fs      afero.Fs
	root    string
	pattern string
}

// New validates pattern and returns a Resolver for it
func New(fsys afero.Fs, root, pattern string) (*Resolver, error) {
	if err := Validate(pattern); err != nil {
		return nil, err
	}
	return &Resolver{
		fs:      fsys,
		root:    root,
		pattern: Normalize(pattern),
	}, nil
}

// Pattern returns the normalized pattern
func (r *Resolver) Pattern() string {
	return r.pattern
}

// Root returns the directory the pattern is resolved against
func (r *Resolver) Root() string {
	return r.root
}

// Paths yields every matched file in lexical walk order.
//
// Each element is a path joined onto the root, with a nil error, or a
// resolution error for an entry that could not be turned into a readable
// file (broken symlink, permission problem, unreadable directory). Matched
// directories are skipped. Iteration is lazy; stopping early stops the walk.
func (r *Resolver) Paths() iter.Seq2[string, error] {
	logger := logging.GetLogger("resolver")

	return func(yield func(string, error) bool) {
		fsys := afero.NewIOFS(afero.NewBasePathFs(r.fs, r.root))

		walkErr := doublestar.GlobWalk(fsys, r.pattern, func(match string, d fs.DirEntry) error {
			full := filepath.Join(r.root, filepath.FromSlash(match))

			info, err := r.fs.Stat(full)
			if err != nil {
				resolveErr := errors.Wrapf(err, errors.ErrResolve, "failed to resolve glob entry %s", full).
					WithDetail("path", full)
				if !yield(full, resolveErr) {
					return errStop
				}
				return nil
			}
			if info.IsDir() {
				logger.Debug().Str("path", full).Msg("skipping directory match")
				return nil
			}
			if !yield(full, nil) {
				return errStop
			}
			return nil
		}, doublestar.WithFailOnIOErrors())

		if walkErr != nil && !stderrors.Is(walkErr, errStop) {
			where := r.root
			var pathErr *fs.PathError
			if stderrors.As(walkErr, &pathErr) {
				where = filepath.FromSlash(pathErr.Path)
				if !filepath.IsAbs(where) {
					where = filepath.Join(r.root, where)
				}
			}
			yield(where, errors.Wrapf(walkErr, errors.ErrResolve, "failed to read glob entries under %s", where).
				WithDetail("path", where))
		}
	}
}

package engine

import (
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/arthur-debert/envfill/pkg/errors"
	"github.com/arthur-debert/envfill/pkg/filesystem"
	"github.com/arthur-debert/envfill/pkg/logging"
	"github.com/arthur-debert/envfill/pkg/resolver"
	"github.com/arthur-debert/envfill/pkg/substitute"
	"github.com/arthur-debert/envfill/pkg/tokens"
	"github.com/arthur-debert/envfill/pkg/variables"
)

// Options configures a run
type Options struct {
	// FS is the filesystem to operate on; the OS filesystem when nil
	FS afero.Fs
	// Root is the directory the pattern is resolved against
	Root string
	// Pattern selects the files to process
	Pattern string
	// Prefix filters Environ down to the variable mapping
	Prefix string
	// Environ holds KEY=VALUE pairs, typically os.Environ()
	Environ []string
	// IgnoreMissing skips glob entries that fail to resolve
	IgnoreMissing bool
	// AllowUnknown leaves tokens without a variable in place instead of failing
	AllowUnknown bool
	// DryRun validates and substitutes in memory without writing
	DryRun bool
	// Diff receives a patch for every changed file when set
	Diff io.Writer
}

// FileJob is one resolved file held in memory between the two passes
type FileJob struct {
	Path     string
	Content  string
	Tokens   tokens.Set
	Unknown  tokens.Set
	Output   string
	Replaced int
}

// Changed reports whether substitution altered the content
func (j *FileJob) Changed() bool {
	return j.Output != j.Content
}

// Run substitutes variables into every file matched by opts.Pattern.
// The returned Result is never nil; on error it describes the work done
// before the failure.
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("engine")
	result := &Result{Pattern: opts.Pattern, DryRun: opts.DryRun}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	res, err := resolver.New(fsys, opts.Root, opts.Pattern)
	if err != nil {
		return result, err
	}

	mapping, err := variables.FromEnviron(opts.Environ, opts.Prefix)
	if err != nil {
		return result, err
	}
	result.Variables = mapping.Names()

	logger.Debug().
		Str("root", res.Root()).
		Str("pattern", res.Pattern()).
		Str("prefix", opts.Prefix).
		Strs("variables", result.Variables).
		Msg("Starting substitution")

	jobs, err := plan(fsys, res, mapping, opts, result)
	if err != nil {
		return result, err
	}

	if err := apply(fsys, jobs, opts, result); err != nil {
		return result, err
	}

	return result, nil
}

// plan is the validate pass: read, analyse and substitute in memory
func plan(fsys afero.Fs, res *resolver.Resolver, mapping variables.Mapping, opts Options, result *Result) ([]*FileJob, error) {
	logger := logging.GetLogger("engine")
	done := logging.LogOperationStart(logger, "validate")
	defer done()

	var jobs []*FileJob
	for path, resolveErr := range res.Paths() {
		if resolveErr != nil {
			if !opts.IgnoreMissing {
				return nil, resolveErr
			}
			logger.Info().Err(resolveErr).Str("path", path).Msg("Skipping glob entry")
			result.Skipped = append(result.Skipped, SkippedEntry{Path: path, Reason: resolveErr.Error()})
			continue
		}

		job, err := analyse(fsys, path, mapping)
		if err != nil {
			return nil, err
		}

		if job.Unknown.Len() > 0 {
			if !opts.AllowUnknown {
				return nil, errors.Newf(errors.ErrCoverage,
					"file %s references unknown tokens: %s", path, job.Unknown).
					WithDetail("path", path).
					WithDetail("tokens", job.Unknown.Sorted())
			}
			logger.Info().
				Str("path", path).
				Strs("tokens", job.Unknown.Sorted()).
				Msg("Leaving unknown tokens in place")
		}

		jobs = append(jobs, job)
		result.Files = append(result.Files, FileResult{
			Path:     path,
			Tokens:   job.Tokens.Sorted(),
			Unknown:  nonEmpty(job.Unknown.Sorted()),
			Replaced: job.Replaced,
			Changed:  job.Changed(),
		})
	}

	logger.Debug().Int("files", len(jobs)).Int("skipped", len(result.Skipped)).Msg("All files validated")
	return jobs, nil
}

func analyse(fsys afero.Fs, path string, mapping variables.Mapping) (*FileJob, error) {
	logger := logging.GetLogger("engine")

	data, err := filesystem.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read file %s", path).
			WithDetail("path", path)
	}
	content := string(data)

	set := tokens.Extract(content)
	job := &FileJob{
		Path:    path,
		Content: content,
		Tokens:  set,
		Unknown: tokens.Unknown(set, mapping.Has),
	}
	job.Output, job.Replaced = substitute.Apply(content, set, mapping)

	logger.Debug().
		Str("path", path).
		Strs("tokens", set.Sorted()).
		Str("content", content).
		Msg("Read file")

	return job, nil
}

// apply is the write pass
func apply(fsys afero.Fs, jobs []*FileJob, opts Options, result *Result) error {
	logger := logging.GetLogger("engine")
	done := logging.LogOperationStart(logger, "write")
	defer done()

	for i, job := range jobs {
		if !job.Changed() {
			logger.Debug().Str("path", job.Path).Msg("No changes, leaving file untouched")
			continue
		}

		if opts.Diff != nil {
			if _, err := fmt.Fprint(opts.Diff, substitute.Diff(job.Path, job.Content, job.Output)); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to write diff")
			}
		}

		if opts.DryRun {
			logger.Info().Str("path", job.Path).Int("replaced", job.Replaced).Msg("Would rewrite file")
			continue
		}

		if err := filesystem.WriteFileAtomic(fsys, job.Path, []byte(job.Output)); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to update file %s", job.Path).
				WithDetail("path", job.Path).
				WithDetail("written", result.Written())
		}
		result.Files[i].Written = true

		logger.Debug().Str("path", job.Path).Int("replaced", job.Replaced).Msg("Rewrote file")
	}

	return nil
}

func nonEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

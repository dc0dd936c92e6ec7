package find

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/emarcon/srccat/internal"
	"github.com/emarcon/srccat/internal/slice"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// DefaultSuffix is the file name suffix a Finder matches when none is
// configured.
const DefaultSuffix = ".js"

// Finder walks a file system and collects the paths of files whose name ends
// with a configured suffix. Create a Finder with New, then call Find to get
// the matching paths in walk order.
type Finder struct {
	repo     fs.FS
	suffix   string
	skip     *Skip
	globs    []string
	excludes []string
	log      *slog.Logger
}

// Option configures a Finder.
type Option interface {
	apply(*Finder)
}

type optionFunc func(*Finder)

func (opt optionFunc) apply(f *Finder) {
	opt(f)
}

// WithLogger returns an Option that sets the logger for a Finder.
func WithLogger(h slog.Handler) Option {
	return optionFunc(func(f *Finder) {
		f.log = slog.New(h)
	})
}

// Suffix returns an Option that sets the file name suffix a Finder matches.
// An empty suffix matches every file.
func Suffix(suffix string) Option {
	return optionFunc(func(f *Finder) {
		f.suffix = suffix
	})
}

// Glob adds file glob pattern(s) to the Finder. When at least one pattern is
// configured, the Finder only returns files that match one of them.
func Glob(pattern ...string) Option {
	pattern = slice.Map(pattern, strings.TrimSpace)
	pattern = slice.NoZero(pattern)
	return optionFunc(func(f *Finder) {
		f.globs = append(f.globs, pattern...)
	})
}

// Exclude adds glob pattern(s) for files the Finder must not return, even if
// they match the suffix and the Glob patterns.
func Exclude(pattern ...string) Option {
	pattern = slice.Map(pattern, strings.TrimSpace)
	pattern = slice.NoZero(pattern)
	return optionFunc(func(f *Finder) {
		f.excludes = append(f.excludes, pattern...)
	})
}

// New creates a new Finder that searches the given fs.FS.
func New(repo fs.FS, opts ...Option) *Finder {
	f := &Finder{repo: repo, suffix: DefaultSuffix}
	for _, opt := range opts {
		opt.apply(f)
	}
	if f.skip == nil {
		skip := SkipNone()
		f.skip = &skip
	}
	if f.log == nil {
		f.log = internal.NopLogger()
	}
	return f
}

// Find walks the file system and returns the paths of all files whose name
// ends with the configured suffix, in walk order. Paths are slash-separated
// and relative to the root of the fs.FS.
func (f *Finder) Find() ([]string, error) {
	f.log.Debug("Searching for files ...", "suffix", f.suffix)

	globExclude, err := f.parseGlobOptions()
	if err != nil {
		return nil, fmt.Errorf("parse glob options: %w", err)
	}

	var files []string

	if err := fs.WalkDir(f.repo, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.Name() == "." || d.Name() == "" {
			return nil
		}

		exclude := Exclusion{
			DirEntry: d,
			Path:     path,
		}

		if d.IsDir() {
			if f.skip.ExcludeDir(exclude) {
				f.log.Debug("Skipping directory", "dir", path)
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(d.Name(), f.suffix) {
			f.log.Debug("Skipping file", "path", path, "reason", "suffix")
			return nil
		}

		if globExclude(path) {
			f.log.Debug("Skipping file", "path", path, "reason", "glob")
			return nil
		}

		if excluded, err := f.excludedByPattern(path); err != nil {
			return err
		} else if excluded {
			f.log.Debug("Skipping file", "path", path, "reason", "exclude")
			return nil
		}

		if f.skip.ExcludeFile(exclude) {
			f.log.Debug("Skipping file", "path", path)
			return nil
		}

		files = append(files, path)

		return nil
	}); err != nil {
		return nil, err
	}

	f.log.Debug(fmt.Sprintf("Found %d files", len(files)), "files", files)

	return files, nil
}

func (f *Finder) parseGlobOptions() (func(string) bool, error) {
	if len(f.globs) == 0 {
		return func(string) bool { return false }, nil
	}

	var allowed []string
	for _, pattern := range f.globs {
		files, err := doublestar.Glob(f.repo, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		allowed = append(allowed, files...)
	}
	allowed = slice.Unique(allowed)

	return func(path string) bool {
		return !slices.Contains(allowed, filepath.Clean(path))
	}, nil
}

func (f *Finder) excludedByPattern(path string) (bool, error) {
	for _, pattern := range f.excludes {
		ok, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("match %q against %q: %w", path, pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

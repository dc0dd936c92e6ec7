package srccat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/emarcon/srccat/find"
	"github.com/emarcon/srccat/internal"
	"github.com/spf13/afero"
	"golang.org/x/exp/slog"
)

// readErrorFormat is the comment written in place of a file's content when
// the file cannot be read.
const readErrorFormat = "// Impossibile leggere %s: %v\n"

// Bundler concatenates the files of a repository into a single output. Each
// file's content is preceded by a comment header line carrying the file's
// base name. Create a Bundler with New and run it with Bundle or BundleFile.
type Bundler struct {
	suffix     string
	findOpts   []find.Option
	logHandler slog.Handler
	log        *slog.Logger
}

// Option configures a Bundler.
type Option func(*Bundler)

// Suffix returns an Option that sets the file name suffix the Bundler
// matches. Defaults to find.DefaultSuffix.
func Suffix(suffix string) Option {
	return func(b *Bundler) {
		b.suffix = suffix
	}
}

// FindWith returns an Option that passes additional options to the
// find.Finder the Bundler uses to collect files.
func FindWith(opts ...find.Option) Option {
	return func(b *Bundler) {
		b.findOpts = append(b.findOpts, opts...)
	}
}

// WithLogger returns an Option that sets the logger for a Bundler. The
// handler is also passed down to the find.Finder.
func WithLogger(h slog.Handler) Option {
	return func(b *Bundler) {
		b.logHandler = h
		b.log = slog.New(h)
	}
}

// New returns a new *Bundler, configured by the given Options.
func New(opts ...Option) *Bundler {
	b := &Bundler{suffix: find.DefaultSuffix}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = internal.NopLogger()
	}
	return b
}

// Bundle walks repo, finds the files matching the configured suffix and
// writes one block per file to out, in walk order. A block is the header line
// "//<basename>" followed by the file's content and a trailing newline. Files
// that cannot be read do not abort the run: a comment describing the error is
// written in place of the content and the remaining files are still
// processed. Bundle returns the number of blocks written.
func (b *Bundler) Bundle(ctx context.Context, repo fs.FS, out io.Writer) (int, error) {
	findOpts := append([]find.Option{find.Suffix(b.suffix)}, b.findOpts...)
	if b.logHandler != nil {
		findOpts = append(findOpts, find.WithLogger(b.logHandler))
	}

	files, err := find.New(repo, findOpts...).Find()
	if err != nil {
		return 0, fmt.Errorf("find files: %w", err)
	}

	w := bufio.NewWriter(out)

	var n int
	for _, file := range files {
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		default:
		}

		name := path.Base(file)

		if _, err := fmt.Fprintf(w, "//%s\n", name); err != nil {
			return n, fmt.Errorf("write header for %s: %w", file, err)
		}

		content, err := readFile(repo, file)
		if err != nil {
			b.log.Debug("Could not read file", "path", file, "error", err)
			if _, err := fmt.Fprintf(w, readErrorFormat, name, err); err != nil {
				return n, fmt.Errorf("write read error for %s: %w", file, err)
			}
			n++
			continue
		}

		if _, err := w.Write(content); err != nil {
			return n, fmt.Errorf("write content of %s: %w", file, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return n, fmt.Errorf("write content of %s: %w", file, err)
		}

		n++

		b.log.Debug("Bundled file", "path", file, "bytes", len(content))
	}

	if err := w.Flush(); err != nil {
		return n, fmt.Errorf("flush output: %w", err)
	}

	b.log.Info(fmt.Sprintf("Bundled %d files", n))

	return n, nil
}

// BundleFile bundles repo into the file at outputPath on outFS. The output
// file is created, or truncated if it already exists, and stays open for the
// whole run. BundleFile returns the number of blocks written.
func (b *Bundler) BundleFile(ctx context.Context, repo fs.FS, outFS afero.Fs, outputPath string) (int, error) {
	out, err := outFS.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", outputPath, err)
	}
	defer out.Close()

	n, err := b.Bundle(ctx, repo, out)
	if err != nil {
		return n, err
	}

	return n, out.Close()
}

func readFile(repo fs.FS, file string) ([]byte, error) {
	f, err := repo.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

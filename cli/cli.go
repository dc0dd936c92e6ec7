package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/emarcon/srccat"
	"github.com/spf13/afero"
	"golang.org/x/exp/slog"
)

// CLI is the command-line surface of srccat. It takes exactly two positional
// arguments: the root directory to scan and the output file to write.
type CLI struct {
	Root string `arg:"" help:"Directory to scan for source files."`
	Out  string `arg:"" help:"File to write the bundled output to."`
}

// Run bundles the source files under the root directory into the output
// file. It returns an error if the root is not a directory or if the bundle
// fails; no output file is created in the former case.
func (cfg *CLI) Run(kctx *kong.Context) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	info, err := os.Stat(cfg.Root)
	if err != nil {
		return fmt.Errorf("%s is not a valid directory: %w", cfg.Root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a valid directory", cfg.Root)
	}

	logHandler := slog.HandlerOptions{Level: slog.LevelWarn}.NewTextHandler(os.Stdout)

	bundler := srccat.New(srccat.WithLogger(logHandler))

	n, err := bundler.BundleFile(ctx, os.DirFS(cfg.Root), afero.NewOsFs(), cfg.Out)
	if err != nil {
		return fmt.Errorf("bundle %s: %w", cfg.Root, err)
	}

	fmt.Fprintf(kctx.Stdout, "Done. Bundled %d files into %s.\n", n, cfg.Out)

	return nil
}

// New parses the command-line arguments and returns the resulting
// *kong.Context. Usage and error output go to standard output.
func New() *kong.Context {
	var cfg CLI
	return kong.Parse(&cfg,
		kong.Name("srccat"),
		kong.Description("Bundle the source files of a directory tree into a single file."),
		kong.Writers(os.Stdout, os.Stdout),
		kong.UsageOnError(),
	)
}

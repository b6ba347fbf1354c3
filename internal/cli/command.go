package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/pflag"

	"github.com/idelchi/duscan/internal/config"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// options collects everything the flag and config layers decide before the
// core scan starts.
type options struct {
	// Paths are the filesystem entries to scan.
	Paths []string
	// Threads is the worker count (0 = 3 x num cores).
	Threads int
	// SizeFormat is "decimal" (MB) or "binary" (MiB).
	SizeFormat string
	// Total prints the total size section after the per-entry results.
	Total bool
	// Verbose prints every filesystem error as it is discovered.
	Verbose bool
	// ApparentSize reports logical sizes instead of allocated storage.
	ApparentSize bool
	// Sort collects the whole scan and prints entries ascending by size
	// instead of streaming them as they finish.
	Sort bool
}

func help() {
	//nolint:forbidigo // Help output to console
	fmt.Println(heredoc.Doc(`
		duscan computes disk usage for the given filesystem entries.

		Usage:

			duscan [flags] [path...]

		Positional Arguments:
		  path                   Filesystem entries to scan. Defaults to the current directory.

		Modes:
		  Default mode reports the storage actually allocated on disk, counting
		  hard-linked data once. Use -b to report apparent (logical) sizes instead.

		Results print as soon as each entry finishes. Use --sort to wait for the
		whole scan and print entries ascending by size.

		Flags:
	`))
	pflag.PrintDefaults()
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var (
		opts        options
		configPath  string
		showVersion bool
	)

	pflag.IntVarP(&opts.Threads, "threads", "j", 0,
		"Number of worker threads (default: 3 x num cores)")
	pflag.StringVar(&opts.SizeFormat, "size-format", "decimal",
		"Output format for file sizes: decimal (MB) or binary (MiB)")
	pflag.BoolVarP(&opts.Total, "total", "t", false, "Print the total size")
	pflag.BoolVarP(&opts.Verbose, "verbose", "v", false, "Do not hide filesystem errors")
	pflag.BoolVarP(&opts.ApparentSize, "apparent-size", "b", false,
		"Compute apparent size instead of disk usage")
	pflag.BoolVar(&opts.Sort, "sort", false,
		"Collect the full scan, then print entries ascending by size")
	pflag.StringVar(&configPath, "config", "", "Defaults file (default: "+config.DefaultPath()+")")
	pflag.BoolVar(&showVersion, "version", false, "Show version and exit")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = help
	pflag.Parse()

	if showVersion {
		//nolint:forbidigo // Version output to console
		fmt.Println(c.version)

		return nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Flags win over the defaults file; file values apply only to flags the
	// user left untouched.
	if !pflag.Lookup("threads").Changed && cfg.Threads > 0 {
		opts.Threads = cfg.Threads
	}

	if !pflag.Lookup("size-format").Changed && cfg.SizeFormat != "" {
		opts.SizeFormat = cfg.SizeFormat
	}

	if !pflag.Lookup("total").Changed {
		opts.Total = cfg.Total
	}

	if !pflag.Lookup("verbose").Changed {
		opts.Verbose = cfg.Verbose
	}

	if !pflag.Lookup("apparent-size").Changed {
		opts.ApparentSize = cfg.ApparentSize
	}

	allowedFormats := []string{"decimal", "binary"}
	if !slices.Contains(allowedFormats, opts.SizeFormat) {
		return fmt.Errorf("invalid size format %q: must be one of %v", opts.SizeFormat, allowedFormats)
	}

	if opts.Threads < 0 {
		return errors.New("threads cannot be negative")
	}

	opts.Paths = pflag.Args()
	if len(opts.Paths) == 0 {
		opts.Paths = []string{"."}
	}

	return logic(opts)
}

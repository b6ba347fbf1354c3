package cli

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/duscan/internal/duscan"
)

func logic(opts options) error {
	filesizeType := duscan.DiskUsage
	if opts.ApparentSize {
		filesizeType = duscan.ApparentSize
	}

	form := newFormatter(
		os.Stdout,
		os.Stderr,
		opts.SizeFormat == "binary",
		isatty.IsTerminal(os.Stdout.Fd()),
	)

	walk := duscan.New(opts.Paths, opts.Threads, filesizeType)

	if opts.Sort {
		return batch(walk, opts, form)
	}

	return stream(walk, opts, form)
}

// stream prints each entry as soon as its subtree finishes; entries complete
// in any order.
func stream(walk *duscan.Walk, opts options, form *formatter) error {
	callbacks := duscan.Callbacks{
		OnRoot: form.printRoot,
	}
	if opts.Verbose {
		callbacks.OnError = form.printError
	}

	result, err := walk.RunWithCallbacks(callbacks)
	if err != nil {
		return err
	}

	finish(result, opts, form)

	return nil
}

// batch waits for the whole scan, then prints entries ascending by size.
func batch(walk *duscan.Walk, opts options, form *formatter) error {
	var callbacks duscan.Callbacks
	if opts.Verbose {
		callbacks.OnError = form.printError
	}

	result, err := walk.RunWithCallbacks(callbacks)
	if err != nil {
		return err
	}

	result.SortBySize()

	for _, entry := range result.Sizes {
		form.printRoot(entry.Path, entry.Size)
	}

	finish(result, opts, form)

	return nil
}

// finish emits the aggregate warning and the optional total section.
func finish(result duscan.Result, opts options, form *formatter) {
	if len(result.Errors) > 0 && !opts.Verbose {
		form.printWarning()
	}

	if opts.Total {
		form.printTotal(result.Total())
	}
}

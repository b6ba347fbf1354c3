package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/idelchi/duscan/internal/duscan"
)

// Styles degrade to plain text automatically when the writer is not a
// terminal, so piped output stays clean.
//
//nolint:gochecknoglobals // Style constants
var (
	errPrefixStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	warningStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	totalStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

// formatter renders scan output. Interactive mode prints humanized sizes;
// pipes get raw byte counts separated by a tab so the output stays
// scriptable.
type formatter struct {
	out         io.Writer
	errOut      io.Writer
	binary      bool
	interactive bool
}

func newFormatter(out, errOut io.Writer, binary, interactive bool) *formatter {
	return &formatter{
		out:         out,
		errOut:      errOut,
		binary:      binary,
		interactive: interactive,
	}
}

// humanize renders a byte count in the selected unit system.
func (f *formatter) humanize(size uint64) string {
	if f.binary {
		return humanize.IBytes(size)
	}

	return humanize.Bytes(size)
}

func (f *formatter) printRoot(path string, size uint64) {
	if f.interactive {
		fmt.Fprintf(f.out, "%10s    %s\n", f.humanize(size), path)
	} else {
		fmt.Fprintf(f.out, "%d\t%s\n", size, path)
	}
}

func (f *formatter) printError(err duscan.Error) {
	fmt.Fprintf(f.errOut, "%s %s\n", errPrefixStyle.Render("duscan:"), err.Error())
}

func (f *formatter) printWarning() {
	fmt.Fprintf(f.errOut, "%s the results may be tainted. Re-run with -v/--verbose to print all errors.\n",
		warningStyle.Render("[duscan warning]"))
}

func (f *formatter) printTotal(size uint64) {
	fmt.Fprintf(f.out, "\n%s\n", totalStyle.Render("Total:"))
	f.printRoot("", size)
}

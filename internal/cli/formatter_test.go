package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idelchi/duscan/internal/duscan"
)

func TestPrintRootPipe(t *testing.T) {
	var out bytes.Buffer
	form := newFormatter(&out, &bytes.Buffer{}, false, false)

	form.printRoot("/some/path", 1234)

	assert.Equal(t, "1234\t/some/path\n", out.String())
}

func TestPrintRootInteractiveDecimal(t *testing.T) {
	var out bytes.Buffer
	form := newFormatter(&out, &bytes.Buffer{}, false, true)

	form.printRoot("/some/path", 1000)

	assert.Equal(t, "    1.0 kB    /some/path\n", out.String())
}

func TestPrintRootInteractiveBinary(t *testing.T) {
	var out bytes.Buffer
	form := newFormatter(&out, &bytes.Buffer{}, true, true)

	form.printRoot("/some/path", 1024)

	assert.Equal(t, "   1.0 KiB    /some/path\n", out.String())
}

func TestPrintError(t *testing.T) {
	var errOut bytes.Buffer
	form := newFormatter(&bytes.Buffer{}, &errOut, false, true)

	form.printError(duscan.Error{Kind: duscan.ErrReadDir, Path: "/locked"})

	assert.Contains(t, errOut.String(), "duscan:")
	assert.Contains(t, errOut.String(), "could not read contents of directory '/locked'")
}

func TestPrintWarning(t *testing.T) {
	var errOut bytes.Buffer
	form := newFormatter(&bytes.Buffer{}, &errOut, false, true)

	form.printWarning()

	assert.Contains(t, errOut.String(), "[duscan warning]")
	assert.Contains(t, errOut.String(), "Re-run with -v/--verbose")
}

func TestPrintTotal(t *testing.T) {
	var out bytes.Buffer
	form := newFormatter(&out, &bytes.Buffer{}, false, false)

	form.printTotal(42)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Contains(t, lines[1], "Total:")
	assert.Equal(t, "42\t", lines[2])
}

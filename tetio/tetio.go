// Package tetio converts TetGen node/element file pairs into the custom
// .tet text format used by the downstream simulation tooling.
package tetio

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
)

// Error classes reported by the converter. Callers classify with errors.Is;
// the CLI collapses them all to a nonzero exit code.
var (
	// ErrFormat indicates a structurally invalid node or element file,
	// e.g. a non-3D mesh or non-tetrahedral elements.
	ErrFormat = errors.New("format error")
	// ErrIO indicates a file open/create failure on any of the three paths.
	ErrIO = errors.New("i/o error")
)

// nextInt reads the next whitespace-separated token as an integer. The
// scanner must be in ScanWords mode; records are token streams and may
// wrap across lines.
func nextInt(sc *bufio.Scanner, what string) (int, error) {
	if !sc.Scan() {
		return 0, fmt.Errorf("%w: unexpected EOF reading %s", ErrFormat, what)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", ErrFormat, what, sc.Text())
	}
	return n, nil
}

// nextFloat reads the next whitespace-separated token as a float64.
func nextFloat(sc *bufio.Scanner, what string) (float64, error) {
	if !sc.Scan() {
		return 0, fmt.Errorf("%w: unexpected EOF reading %s", ErrFormat, what)
	}
	v, err := strconv.ParseFloat(sc.Text(), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", ErrFormat, what, sc.Text())
	}
	return v, nil
}

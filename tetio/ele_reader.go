package tetio

import (
	"bufio"
	"fmt"
	"os"
)

// ReadEleFile reads a TetGen .ele file and returns one 4-tuple of vertex
// indices per tetrahedron, in record order. The header is
// `<nTets> <vertsPerTet> <nAttrs>`; only vertsPerTet=4 is supported.
// When oneBased is true the input indices are 1-based and 1 is subtracted
// from each so the result is always a 0-based positional reference.
// Per-element attributes are consumed and discarded.
func ReadEleFile(filename string, oneBased bool) ([][4]int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open .ele file %s: %v", ErrIO, filename, err)
	}
	defer file.Close()

	sc := bufio.NewScanner(file)
	sc.Split(bufio.ScanWords)

	numTets, err := nextInt(sc, "element count")
	if err != nil {
		return nil, err
	}
	vertsPerTet, err := nextInt(sc, "vertices per element")
	if err != nil {
		return nil, err
	}
	numAttrs, err := nextInt(sc, "element attribute count")
	if err != nil {
		return nil, err
	}

	if numTets < 0 {
		return nil, fmt.Errorf("%w: .ele file declares %d elements", ErrFormat, numTets)
	}
	if vertsPerTet != 4 {
		return nil, fmt.Errorf("%w: .ele file declares %d vertices per element, each tetrahedron must have 4", ErrFormat, vertsPerTet)
	}

	offset := 0
	if oneBased {
		offset = 1
	}

	// Cap the pre-allocation; the declared count is untrusted input.
	tets := make([][4]int, 0, min(numTets, 4096))
	for i := 0; i < numTets; i++ {
		if _, err = nextInt(sc, "element id"); err != nil {
			return nil, err
		}
		var t [4]int
		for j := 0; j < 4; j++ {
			v, err := nextInt(sc, "vertex index")
			if err != nil {
				return nil, err
			}
			t[j] = v - offset
		}
		tets = append(tets, t)

		for a := 0; a < numAttrs; a++ {
			if _, err = nextFloat(sc, "element attribute"); err != nil {
				return nil, err
			}
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrIO, filename, err)
	}
	return tets, nil
}

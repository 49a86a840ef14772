package tetio

import (
	"bufio"
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
)

// ReadNodeFile reads a TetGen .node file and returns the vertex coordinates
// in record order. The header is `<nVertices> <dim> <nMarkers> <nAttrs>`;
// only dim=3 is supported. Per-vertex boundary markers and attributes are
// consumed to keep the token stream aligned, then discarded. The vertex id
// leading each record is read but not validated against its position.
func ReadNodeFile(filename string) ([]r3.Vec, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open .node file %s: %v", ErrIO, filename, err)
	}
	defer file.Close()

	sc := bufio.NewScanner(file)
	sc.Split(bufio.ScanWords)

	numNodes, err := nextInt(sc, "vertex count")
	if err != nil {
		return nil, err
	}
	dim, err := nextInt(sc, "dimension")
	if err != nil {
		return nil, err
	}
	numMarkers, err := nextInt(sc, "boundary marker count")
	if err != nil {
		return nil, err
	}
	numAttrs, err := nextInt(sc, "attribute count")
	if err != nil {
		return nil, err
	}

	if numNodes < 0 {
		return nil, fmt.Errorf("%w: .node file declares %d vertices", ErrFormat, numNodes)
	}
	if dim != 3 {
		return nil, fmt.Errorf("%w: .node file dimension is %d, only 3D meshes (dim=3) are supported", ErrFormat, dim)
	}

	// The declared count is untrusted input; cap the pre-allocation so a
	// bogus header cannot reserve gigabytes before the record loop fails.
	vertices := make([]r3.Vec, 0, min(numNodes, 4096))
	for i := 0; i < numNodes; i++ {
		if _, err = nextInt(sc, "vertex id"); err != nil {
			return nil, err
		}
		var v r3.Vec
		if v.X, err = nextFloat(sc, "x coordinate"); err != nil {
			return nil, err
		}
		if v.Y, err = nextFloat(sc, "y coordinate"); err != nil {
			return nil, err
		}
		if v.Z, err = nextFloat(sc, "z coordinate"); err != nil {
			return nil, err
		}
		vertices = append(vertices, v)

		for m := 0; m < numMarkers; m++ {
			if _, err = nextInt(sc, "boundary marker"); err != nil {
				return nil, err
			}
		}
		for a := 0; a < numAttrs; a++ {
			if _, err = nextFloat(sc, "vertex attribute"); err != nil {
				return nil, err
			}
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrIO, filename, err)
	}
	return vertices, nil
}

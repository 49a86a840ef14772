package tetio

import (
	"fmt"

	"github.com/airy1236/obj2tet-toolchain/logger"
)

// Convert reads a TetGen node/element pair and writes the merged .tet file.
// oneBased selects the index base of the element file; the output is always
// 0-based. Every corrected index must land inside the vertex array or the
// conversion fails with a format error before any output is written.
func Convert(nodePath, elePath, tetPath string, oneBased bool) error {
	vertices, err := ReadNodeFile(nodePath)
	if err != nil {
		return err
	}
	logger.Sugar.Infof("parsed .node file: total %d vertices", len(vertices))

	tets, err := ReadEleFile(elePath, oneBased)
	if err != nil {
		return err
	}
	logger.Sugar.Infof("parsed .ele file: total %d tetrahedrons", len(tets))

	base := "0-based"
	if oneBased {
		base = "1-based"
	}
	logger.Sugar.Infof("indexing mode: %s", base)

	for i, t := range tets {
		for _, v := range t {
			if v < 0 || v >= len(vertices) {
				return fmt.Errorf("%w: tetrahedron %d references vertex %d, out of range [0,%d)",
					ErrFormat, i, v, len(vertices))
			}
		}
	}

	if err := WriteTetFile(tetPath, vertices, tets); err != nil {
		return err
	}
	logger.Sugar.Infof("conversion completed, .tet file generated at %s", tetPath)
	return nil
}

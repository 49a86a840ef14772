package tetio

import (
	"bufio"
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
)

// WriteTetFile writes the .tet text format: one `v x y z` line per vertex
// with coordinates fixed to 6 decimal places, followed by one `t i j k l`
// line per tetrahedron with 0-based indices. Record order matches the
// input slices. On any write failure the partially written file is removed
// so a failed conversion leaves no output behind.
func WriteTetFile(filename string, vertices []r3.Vec, tets [][4]int) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w: failed to create .tet file %s: %v", ErrIO, filename, err)
	}

	fail := func(err error) error {
		file.Close()
		os.Remove(filename)
		return fmt.Errorf("%w: writing %s: %v", ErrIO, filename, err)
	}

	w := bufio.NewWriter(file)
	for _, v := range vertices {
		if _, err := fmt.Fprintf(w, "v %.6f %.6f %.6f\n", v.X, v.Y, v.Z); err != nil {
			return fail(err)
		}
	}
	for _, t := range tets {
		if _, err := fmt.Fprintf(w, "t %d %d %d %d\n", t[0], t[1], t[2], t[3]); err != nil {
			return fail(err)
		}
	}
	if err := w.Flush(); err != nil {
		return fail(err)
	}
	if err := file.Close(); err != nil {
		os.Remove(filename)
		return fmt.Errorf("%w: closing %s: %v", ErrIO, filename, err)
	}
	return nil
}

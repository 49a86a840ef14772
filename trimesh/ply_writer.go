package trimesh

import (
	"bufio"
	"fmt"
	"os"
)

// WritePLY writes the mesh as ASCII PLY with per-vertex positions and
// normals. The repaired surface goes to the tetrahedralization engine in
// this form.
func WritePLY(filename string, m *Mesh) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", filename, err)
	}

	fail := func(err error) error {
		file.Close()
		os.Remove(filename)
		return fmt.Errorf("writing %s: %v", filename, err)
	}

	w := bufio.NewWriter(file)
	_, err = fmt.Fprintf(w, "ply\nformat ascii 1.0\ncomment generated by obj2tet\n"+
		"element vertex %d\n"+
		"property float x\nproperty float y\nproperty float z\n"+
		"property float nx\nproperty float ny\nproperty float nz\n"+
		"element face %d\n"+
		"property list uchar int vertex_indices\n"+
		"end_header\n", m.VN(), m.FN())
	if err != nil {
		return fail(err)
	}

	for _, v := range m.Verts {
		if _, err := fmt.Fprintf(w, "%g %g %g %g %g %g\n",
			v.P.X, v.P.Y, v.P.Z, v.N.X, v.N.Y, v.N.Z); err != nil {
			return fail(err)
		}
	}
	for _, f := range m.Faces {
		if _, err := fmt.Fprintf(w, "3 %d %d %d\n", f.V[0], f.V[1], f.V[2]); err != nil {
			return fail(err)
		}
	}
	if err := w.Flush(); err != nil {
		return fail(err)
	}
	if err := file.Close(); err != nil {
		os.Remove(filename)
		return fmt.Errorf("closing %s: %v", filename, err)
	}
	return nil
}

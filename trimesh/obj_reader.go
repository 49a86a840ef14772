package trimesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadOBJ reads a Wavefront OBJ surface mesh. Only the `v` and `f`
// directives are consumed; everything else (normals, texture coordinates,
// groups, materials) is skipped. Faces with more than three vertices are
// fan-triangulated. Indices may be 1-based or negative (relative to the
// vertices read so far), and `a/b/c` forms contribute their vertex
// component only.
func ReadOBJ(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	m := NewMesh()
	sc := bufio.NewScanner(file)
	sc.Buffer(make([]byte, 1024), 1024*1024)
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%s:%d: vertex needs 3 coordinates", filename, lineNo)
			}
			var c [3]float64
			for j := 0; j < 3; j++ {
				c[j], err = strconv.ParseFloat(fields[j+1], 64)
				if err != nil {
					return nil, fmt.Errorf("%s:%d: invalid coordinate %q", filename, lineNo, fields[j+1])
				}
			}
			m.AddVertex(vec(c[0], c[1], c[2]))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%s:%d: face needs at least 3 vertices", filename, lineNo)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				i, err := parseOBJIndex(tok, m.VN())
				if err != nil {
					return nil, fmt.Errorf("%s:%d: %v", filename, lineNo, err)
				}
				idx = append(idx, i)
			}
			for j := 1; j+1 < len(idx); j++ {
				m.AddFace(idx[0], idx[j], idx[j+1])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %v", filename, err)
	}
	if m.FN() == 0 {
		return nil, fmt.Errorf("%s: no faces found", filename)
	}
	return m, nil
}

// parseOBJIndex resolves one face-vertex token to a 0-based vertex index.
func parseOBJIndex(tok string, numVerts int) (int, error) {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("invalid vertex index %q", tok)
	}
	switch {
	case n > 0:
		n-- // OBJ indices are 1-based
	case n < 0:
		n += numVerts // relative to the vertices read so far
	default:
		return 0, fmt.Errorf("vertex index 0 is not valid")
	}
	if n < 0 || n >= numVerts {
		return 0, fmt.Errorf("vertex index %s out of range [1,%d]", tok, numVerts)
	}
	return n, nil
}

package trimesh

import "gonum.org/v1/gonum/spatial/r3"

// RemoveDuplicateVertices merges vertices whose coordinates are exactly
// identical (zero tolerance) and remaps face references to the surviving
// vertex. Returns the number of vertices removed.
func (m *Mesh) RemoveDuplicateVertices() int {
	seen := make(map[r3.Vec]int, len(m.Verts))
	remap := make([]int, len(m.Verts))
	kept := make([]Vertex, 0, len(m.Verts))

	for i, v := range m.Verts {
		if j, ok := seen[v.P]; ok {
			remap[i] = j
			continue
		}
		seen[v.P] = len(kept)
		remap[i] = len(kept)
		kept = append(kept, v)
	}

	removed := len(m.Verts) - len(kept)
	if removed == 0 {
		return 0
	}
	m.Verts = kept
	for i := range m.Faces {
		for j := 0; j < 3; j++ {
			m.Faces[i].V[j] = remap[m.Faces[i].V[j]]
		}
	}
	return removed
}

// RemoveUnreferencedVertices deletes vertices used by no face and remaps
// face references. Returns the number of vertices removed.
func (m *Mesh) RemoveUnreferencedVertices() int {
	used := make([]bool, len(m.Verts))
	for _, f := range m.Faces {
		for _, v := range f.V {
			used[v] = true
		}
	}

	remap := make([]int, len(m.Verts))
	kept := make([]Vertex, 0, len(m.Verts))
	for i, v := range m.Verts {
		if !used[i] {
			remap[i] = -1
			continue
		}
		remap[i] = len(kept)
		kept = append(kept, v)
	}

	removed := len(m.Verts) - len(kept)
	if removed == 0 {
		return 0
	}
	m.Verts = kept
	for i := range m.Faces {
		for j := 0; j < 3; j++ {
			m.Faces[i].V[j] = remap[m.Faces[i].V[j]]
		}
	}
	return removed
}

// RemoveDuplicateFaces deletes faces that reference the same three vertices
// as an earlier face, regardless of winding. Returns the number removed.
func (m *Mesh) RemoveDuplicateFaces() int {
	seen := make(map[[3]int]bool, len(m.Faces))
	kept := make([]Face, 0, len(m.Faces))

	for _, f := range m.Faces {
		key := sortedTriple(f.V)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, f)
	}

	removed := len(m.Faces) - len(kept)
	m.Faces = kept
	return removed
}

// RemoveDegenerateFaces deletes faces with a repeated vertex reference or
// exactly zero area. Returns the number removed.
func (m *Mesh) RemoveDegenerateFaces() int {
	kept := make([]Face, 0, len(m.Faces))
	for _, f := range m.Faces {
		if f.V[0] == f.V[1] || f.V[1] == f.V[2] || f.V[0] == f.V[2] {
			continue
		}
		a := m.Verts[f.V[0]].P
		b := m.Verts[f.V[1]].P
		c := m.Verts[f.V[2]].P
		n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
		if n.X == 0 && n.Y == 0 && n.Z == 0 {
			continue
		}
		kept = append(kept, f)
	}

	removed := len(m.Faces) - len(kept)
	m.Faces = kept
	return removed
}

func sortedTriple(v [3]int) [3]int {
	if v[0] > v[1] {
		v[0], v[1] = v[1], v[0]
	}
	if v[1] > v[2] {
		v[1], v[2] = v[2], v[1]
	}
	if v[0] > v[1] {
		v[0], v[1] = v[1], v[0]
	}
	return v
}

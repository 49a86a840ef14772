package trimesh

// BuildTopology recomputes face-face adjacency from the current vertex and
// face arrays. An edge with exactly two incident faces links them through
// their FF slots; border edges and edges with more than two incident faces
// are left unlinked. Adjacency must be rebuilt after any operation that
// changes face membership; hole detection and orientation both read it.
func (m *Mesh) BuildTopology() {
	type incidence struct {
		face, edge int
	}
	edges := make(map[[2]int][]incidence, 3*len(m.Faces)/2)

	for i := range m.Faces {
		f := &m.Faces[i]
		f.FF = [3]int{-1, -1, -1}
		for j := 0; j < 3; j++ {
			k := edgeKey(f.V[j], f.V[(j+1)%3])
			edges[k] = append(edges[k], incidence{i, j})
		}
	}

	for _, inc := range edges {
		if len(inc) != 2 {
			continue
		}
		m.Faces[inc[0].face].FF[inc[0].edge] = inc[1].face
		m.Faces[inc[1].face].FF[inc[1].edge] = inc[0].face
	}
}

// RemoveNonManifoldFaces deletes every face incident to an edge shared by
// more than two faces. The offending face is removed whole; edges are never
// split and vertices are never duplicated. Returns the number of faces
// removed. The caller must rebuild topology afterward.
func (m *Mesh) RemoveNonManifoldFaces() int {
	count := make(map[[2]int]int, 3*len(m.Faces)/2)
	for _, f := range m.Faces {
		for j := 0; j < 3; j++ {
			count[edgeKey(f.V[j], f.V[(j+1)%3])]++
		}
	}

	kept := make([]Face, 0, len(m.Faces))
	for _, f := range m.Faces {
		bad := false
		for j := 0; j < 3; j++ {
			if count[edgeKey(f.V[j], f.V[(j+1)%3])] > 2 {
				bad = true
				break
			}
		}
		if !bad {
			kept = append(kept, f)
		}
	}

	removed := len(m.Faces) - len(kept)
	m.Faces = kept
	return removed
}

// CountNonManifoldEdges returns the number of edges with more than two
// incident faces.
func (m *Mesh) CountNonManifoldEdges() int {
	count := make(map[[2]int]int, 3*len(m.Faces)/2)
	for _, f := range m.Faces {
		for j := 0; j < 3; j++ {
			count[edgeKey(f.V[j], f.V[(j+1)%3])]++
		}
	}
	n := 0
	for _, c := range count {
		if c > 2 {
			n++
		}
	}
	return n
}

// MarkBorders sets the border flag on every face edge whose adjacency slot
// is empty, and on the vertices of those edges. Requires current topology.
func (m *Mesh) MarkBorders() {
	for i := range m.Verts {
		m.Verts[i].Flags &^= VertexBorder
	}
	for i := range m.Faces {
		f := &m.Faces[i]
		f.Flags &^= FaceBorder0 | FaceBorder1 | FaceBorder2
		for j := 0; j < 3; j++ {
			if f.FF[j] == -1 {
				f.Flags |= FaceBorder0 << uint(j)
				m.Verts[f.V[j]].Flags |= VertexBorder
				m.Verts[f.V[(j+1)%3]].Flags |= VertexBorder
			}
		}
	}
}

// CountBorderEdges returns the number of face edges flagged as border.
// Zero after hole filling means the mesh is closed.
func (m *Mesh) CountBorderEdges() int {
	n := 0
	for _, f := range m.Faces {
		for j := 0; j < 3; j++ {
			if f.Flags&(FaceBorder0<<uint(j)) != 0 {
				n++
			}
		}
	}
	return n
}

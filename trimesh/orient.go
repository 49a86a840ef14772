package trimesh

// OrientCoherently propagates a consistent winding across the face
// adjacency graph, flipping faces whose winding disagrees with an
// already-oriented neighbor across a shared edge. Propagation starts from
// an arbitrary seed in each connected component (BFS over the dual graph).
//
// orientable is false iff some component cannot be wound consistently, the
// Möbius-strip case. oriented is true iff, after the pass, every interior
// edge is traversed in opposite directions by its two faces. A
// non-orientable mesh is a warning for the caller, not an error.
//
// Flipping invalidates face-face adjacency; the caller must rebuild
// topology afterward.
func (m *Mesh) OrientCoherently() (oriented, orientable bool) {
	// Work from a fresh undirected edge map rather than FF slots: flips
	// permute a face's edge ordering, which would desync stored slot
	// indices mid-walk.
	pairs := make(map[[2]int][2]int, 3*len(m.Faces)/2)
	count := make(map[[2]int]int, 3*len(m.Faces)/2)
	for i, f := range m.Faces {
		for j := 0; j < 3; j++ {
			k := edgeKey(f.V[j], f.V[(j+1)%3])
			c := count[k]
			if c < 2 {
				p := pairs[k]
				p[c] = i
				pairs[k] = p
			}
			count[k] = c + 1
		}
	}

	orientable = true
	visited := make([]bool, len(m.Faces))

	for seed := range m.Faces {
		if visited[seed] {
			continue
		}
		visited[seed] = true
		queue := []int{seed}
		for len(queue) > 0 {
			fi := queue[0]
			queue = queue[1:]
			f := &m.Faces[fi]
			for j := 0; j < 3; j++ {
				a, b := f.V[j], f.V[(j+1)%3]
				k := edgeKey(a, b)
				if count[k] != 2 {
					continue // border or non-manifold leftover
				}
				p := pairs[k]
				ni := p[0]
				if ni == fi {
					ni = p[1]
				}
				same := m.hasDirectedEdge(ni, a, b)
				if !visited[ni] {
					if same {
						m.flipFace(ni)
					}
					visited[ni] = true
					queue = append(queue, ni)
				} else if same {
					orientable = false
				}
			}
		}
	}

	// Verify the result independently: every interior edge must be
	// traversed once in each direction.
	oriented = true
	dir := make(map[[2]int]int, 3*len(m.Faces)/2)
	for _, f := range m.Faces {
		for j := 0; j < 3; j++ {
			a, b := f.V[j], f.V[(j+1)%3]
			if count[edgeKey(a, b)] != 2 {
				continue
			}
			dir[[2]int{a, b}]++
		}
	}
	for k, c := range dir {
		if c > 1 || dir[[2]int{k[1], k[0]}] != 1 {
			oriented = false
			break
		}
	}
	return oriented, orientable
}

// hasDirectedEdge reports whether face fi contains the directed edge a->b.
func (m *Mesh) hasDirectedEdge(fi, a, b int) bool {
	v := m.Faces[fi].V
	for j := 0; j < 3; j++ {
		if v[j] == a && v[(j+1)%3] == b {
			return true
		}
	}
	return false
}

// flipFace reverses the winding of face fi.
func (m *Mesh) flipFace(fi int) {
	f := &m.Faces[fi]
	f.V[1], f.V[2] = f.V[2], f.V[1]
}

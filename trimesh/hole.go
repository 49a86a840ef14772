package trimesh

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// FindBorderLoops traces the border edges into closed vertex loops. Each
// loop follows the direction of the existing faces' half-edges. Requires
// MarkBorders to have run on current topology. Open chains (possible only
// on meshes that still carry non-manifold junctions) are discarded.
func (m *Mesh) FindBorderLoops() [][]int {
	type halfEdge struct {
		to   int
		used bool
	}
	out := make(map[int][]*halfEdge)
	total := 0
	for _, f := range m.Faces {
		for j := 0; j < 3; j++ {
			if f.Flags&(FaceBorder0<<uint(j)) != 0 {
				a, b := f.V[j], f.V[(j+1)%3]
				out[a] = append(out[a], &halfEdge{to: b})
				total++
			}
		}
	}

	var loops [][]int
	used := 0
	for start := range out {
		if used == total {
			break
		}
		for _, he := range out[start] {
			if he.used {
				continue
			}
			loop := []int{start}
			he.used = true
			used++
			cur := he.to
			closed := false
			for cur != start {
				var next *halfEdge
				for _, cand := range out[cur] {
					if !cand.used {
						next = cand
						break
					}
				}
				if next == nil {
					break // open chain, abandon
				}
				loop = append(loop, cur)
				next.used = true
				used++
				cur = next.to
			}
			if cur == start {
				closed = true
			}
			if closed && len(loop) >= 3 {
				loops = append(loops, loop)
			}
		}
	}
	return loops
}

// FillHoles triangulates every border loop whose edge count does not exceed
// maxLoopEdges using ear cutting. Before an ear is accepted the candidate
// triangle is tested for intersection against the rest of the mesh; ears
// that would self-intersect are skipped and another candidate is tried.
// Loops that cannot be closed are left as they are. Returns the number of
// loops completely filled and the number of loops found. The caller must
// rebuild topology afterward.
func (m *Mesh) FillHoles(maxLoopEdges int) (filled, found int) {
	loops := m.FindBorderLoops()
	found = len(loops)

	for _, loop := range loops {
		if len(loop) > maxLoopEdges {
			continue
		}
		if m.fillLoop(loop) {
			filled++
		}
	}
	return filled, found
}

// fillLoop ear-cuts a single border loop. The loop runs in the direction of
// the existing half-edges, so each new triangle is wound opposite to the
// traversal to stay consistent with its neighbors. Reports whether the loop
// was closed completely.
func (m *Mesh) fillLoop(loop []int) bool {
	ring := append([]int(nil), loop...)

	for len(ring) > 3 {
		// Rank candidate ears by the interior angle at the tip; flatter
		// corners produce better-shaped triangles and fail the
		// intersection test less often.
		order := make([]int, len(ring))
		for i := range order {
			order[i] = i
		}
		angles := make([]float64, len(ring))
		for i := range ring {
			p := m.Verts[ring[(i+len(ring)-1)%len(ring)]].P
			c := m.Verts[ring[i]].P
			n := m.Verts[ring[(i+1)%len(ring)]].P
			angles[i] = vertexAngle(p, c, n)
		}
		sort.Slice(order, func(a, b int) bool { return angles[order[a]] < angles[order[b]] })

		cut := -1
		for _, i := range order {
			pi := ring[(i+len(ring)-1)%len(ring)]
			ci := ring[i]
			ni := ring[(i+1)%len(ring)]
			if m.earAcceptable(pi, ci, ni) {
				cut = i
				break
			}
		}
		if cut == -1 {
			return false
		}

		pi := ring[(cut+len(ring)-1)%len(ring)]
		ci := ring[cut]
		ni := ring[(cut+1)%len(ring)]
		m.AddFace(ni, ci, pi)
		ring = append(ring[:cut], ring[cut+1:]...)
	}

	if !m.earAcceptable(ring[0], ring[1], ring[2]) {
		return false
	}
	m.AddFace(ring[2], ring[1], ring[0])
	return true
}

// earAcceptable reports whether triangle (p,c,n) is non-degenerate and does
// not cross any existing face that shares no vertex with it. The ear's
// vertices are tagged with a fresh generation mark so faces touching them
// can be skipped without clearing flags between candidates.
func (m *Mesh) earAcceptable(p, c, n int) bool {
	if p == c || c == n || p == n {
		return false
	}
	tri := [3]r3.Vec{m.Verts[p].P, m.Verts[c].P, m.Verts[n].P}
	nrm := faceNormal(tri[0], tri[1], tri[2])
	if nrm.X == 0 && nrm.Y == 0 && nrm.Z == 0 {
		return false
	}

	gen := m.NextMark()
	m.Verts[p].Mark = gen
	m.Verts[c].Mark = gen
	m.Verts[n].Mark = gen

	for _, f := range m.Faces {
		if m.Verts[f.V[0]].Mark == gen ||
			m.Verts[f.V[1]].Mark == gen ||
			m.Verts[f.V[2]].Mark == gen {
			continue
		}
		other := [3]r3.Vec{m.Verts[f.V[0]].P, m.Verts[f.V[1]].P, m.Verts[f.V[2]].P}
		if trianglesIntersect(tri, other) {
			return false
		}
	}
	return true
}

// Package trimesh holds a triangle surface mesh and the cleaning
// operations that turn an arbitrary imported mesh into a watertight,
// consistently oriented manifold suitable for tetrahedralization.
package trimesh

import "gonum.org/v1/gonum/spatial/r3"

// Vertex flag bits.
const (
	VertexBorder uint8 = 1 << iota
	VertexVisited
	VertexSelected
)

// Face flag bits. The three border bits correspond to the face edges
// (V[0],V[1]), (V[1],V[2]), (V[2],V[0]).
const (
	FaceBorder0 uint8 = 1 << iota
	FaceBorder1
	FaceBorder2
	FaceVisited
)

// Vertex is a mesh vertex: position, normal, flags and a generation mark.
// The mark is compared against Mesh.mark so per-pass visited state never
// goes stale between passes without an explicit clearing sweep.
type Vertex struct {
	P     r3.Vec
	N     r3.Vec
	Flags uint8
	Mark  int
}

// Face is a triangle: three vertex indices, a normal, flags, and face-face
// adjacency. FF[j] is the face on the other side of edge (V[j], V[(j+1)%3]),
// or -1 for a border edge. Adjacency is only valid after BuildTopology and
// goes stale whenever face membership changes.
type Face struct {
	V     [3]int
	N     r3.Vec
	Flags uint8
	FF    [3]int
}

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Verts []Vertex
	Faces []Face

	mark int
}

// NewMesh creates an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(p r3.Vec) int {
	m.Verts = append(m.Verts, Vertex{P: p})
	return len(m.Verts) - 1
}

// AddFace appends a triangle with unlinked adjacency.
func (m *Mesh) AddFace(a, b, c int) int {
	m.Faces = append(m.Faces, Face{V: [3]int{a, b, c}, FF: [3]int{-1, -1, -1}})
	return len(m.Faces) - 1
}

// VN returns the vertex count.
func (m *Mesh) VN() int { return len(m.Verts) }

// FN returns the face count.
func (m *Mesh) FN() int { return len(m.Faces) }

// NextMark advances the generation counter and returns it. A vertex whose
// Mark equals the returned value has been touched in the current pass.
func (m *Mesh) NextMark() int {
	m.mark++
	return m.mark
}

// edgeKey returns the undirected edge key with the lower index first.
func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

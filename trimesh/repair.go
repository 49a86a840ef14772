package trimesh

import "github.com/airy1236/obj2tet-toolchain/logger"

// MaxHoleEdges is the default upper bound on border-loop size for hole
// filling. Larger loops are left open.
const MaxHoleEdges = 10000

// MeshRepairer is the set of corrective operations the repair pipeline
// runs. Each operation reports what it changed; none of them can fail.
type MeshRepairer interface {
	Deduplicate(m *Mesh) DedupCounts
	RemoveNonManifold(m *Mesh) int
	FillHoles(m *Mesh) (filled, found int)
	Orient(m *Mesh) (oriented, orientable bool)
	RecomputeNormals(m *Mesh)
}

// DedupCounts reports what the deduplication stage removed.
type DedupCounts struct {
	DupVertices   int
	UnrefVertices int
	DupFaces      int
	DegFaces      int
}

// RepairReport collects the counts and flags from a full repair run.
type RepairReport struct {
	DedupCounts
	NonManifoldFaces int
	HolesFound       int
	HolesFilled      int
	Oriented         bool
	Orientable       bool
}

// Engine is the concrete MeshRepairer.
type Engine struct {
	// MaxHoleEdges bounds the border loops considered for filling.
	// Zero means MaxHoleEdges (the package default).
	MaxHoleEdges int
}

// Deduplicate removes exactly-duplicate vertices, unreferenced vertices,
// duplicate faces and degenerate faces, in that order.
func (e *Engine) Deduplicate(m *Mesh) DedupCounts {
	return DedupCounts{
		DupVertices:   m.RemoveDuplicateVertices(),
		UnrefVertices: m.RemoveUnreferencedVertices(),
		DupFaces:      m.RemoveDuplicateFaces(),
		DegFaces:      m.RemoveDegenerateFaces(),
	}
}

// RemoveNonManifold deletes faces on edges with more than two incident
// faces and rebuilds topology.
func (e *Engine) RemoveNonManifold(m *Mesh) int {
	n := m.RemoveNonManifoldFaces()
	m.BuildTopology()
	return n
}

// FillHoles marks borders, ear-cuts every fillable border loop, and
// rebuilds topology.
func (e *Engine) FillHoles(m *Mesh) (filled, found int) {
	m.MarkBorders()
	max := e.MaxHoleEdges
	if max <= 0 {
		max = MaxHoleEdges
	}
	filled, found = m.FillHoles(max)
	m.BuildTopology()
	return filled, found
}

// Orient propagates a coherent winding and rebuilds topology.
func (e *Engine) Orient(m *Mesh) (oriented, orientable bool) {
	oriented, orientable = m.OrientCoherently()
	m.BuildTopology()
	return oriented, orientable
}

// RecomputeNormals refreshes per-face and per-vertex normals.
func (e *Engine) RecomputeNormals(m *Mesh) {
	m.ComputeNormals()
}

// Repair runs the full repair sequence on m: deduplication, topology
// build, non-manifold removal, hole filling, coherent orientation and
// normal recomputation. The sequence is fixed; each step depends on the
// previous one's output. It cannot fail, it only reports counts.
func Repair(m *Mesh, r MeshRepairer) RepairReport {
	var rep RepairReport

	rep.DedupCounts = r.Deduplicate(m)
	logger.Sugar.Infof("cleaned: %d dup verts, %d unref verts, %d dup faces, %d deg faces",
		rep.DupVertices, rep.UnrefVertices, rep.DupFaces, rep.DegFaces)

	m.BuildTopology()

	rep.NonManifoldFaces = r.RemoveNonManifold(m)
	logger.Sugar.Infof("removed %d non-manifold faces", rep.NonManifoldFaces)

	rep.HolesFilled, rep.HolesFound = r.FillHoles(m)
	logger.Sugar.Infof("filled %d of %d holes", rep.HolesFilled, rep.HolesFound)

	rep.Oriented, rep.Orientable = r.Orient(m)
	if !rep.Orientable {
		logger.Sugar.Warn("mesh is non-orientable (Mobius-like)")
	}
	if rep.Oriented {
		logger.Sugar.Info("mesh oriented consistently")
	} else {
		logger.Sugar.Warn("orientation may still be inconsistent")
	}

	r.RecomputeNormals(m)
	return rep
}

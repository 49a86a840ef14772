package trimesh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gonum.org/v1/gonum/spatial/r3"
)

// TestRepairMessyMesh runs the full sequence on a cube carrying every
// defect class at once: a duplicated vertex, a duplicate face, a
// degenerate face, and a missing face leaving a hole.
func TestRepairMessyMesh(t *testing.T) {
	m := testCube()

	dup := m.AddVertex(r3.Vec{X: 0, Y: 0, Z: 0})
	// Route the bottom face through the duplicate, add a duplicate of a
	// top face and a degenerate face, then drop a back-face triangle.
	m.Faces[0].V[0] = dup
	m.AddFace(4, 5, 6)
	m.AddFace(1, 1, 2)
	m.Faces = append(m.Faces[:7], m.Faces[8:]...)

	rep := Repair(m, &Engine{})

	assert.Equal(t, 1, rep.DupVertices)
	assert.Equal(t, 1, rep.DupFaces)
	assert.Equal(t, 1, rep.DegFaces)
	assert.Equal(t, 0, rep.NonManifoldFaces)
	assert.Equal(t, 1, rep.HolesFound)
	assert.Equal(t, 1, rep.HolesFilled)
	assert.True(t, rep.Oriented)
	assert.True(t, rep.Orientable)

	m.MarkBorders()
	assert.Equal(t, 0, m.CountBorderEdges(), "repaired mesh is closed")
	assert.Equal(t, 0, m.CountNonManifoldEdges())
	assert.Equal(t, 8, m.VN())
	assert.Equal(t, 12, m.FN())

	for i, f := range m.Faces {
		assert.InDelta(t, 1, r3.Norm(f.N), 1e-12, "face %d has a unit normal", i)
	}
}

// TestRepairCleanMeshIsNoOp verifies an already-watertight mesh passes
// through untouched.
func TestRepairCleanMeshIsNoOp(t *testing.T) {
	m := testCube()
	rep := Repair(m, &Engine{})

	assert.Equal(t, DedupCounts{}, rep.DedupCounts)
	assert.Equal(t, 0, rep.NonManifoldFaces)
	assert.Equal(t, 0, rep.HolesFound)
	assert.True(t, rep.Oriented)
	assert.True(t, rep.Orientable)
	assert.Equal(t, 12, m.FN())
}

// TestRepairNonManifold feeds a closed tetrahedron with a fin; the fin and
// its edge-mates go, and the resulting hole is refilled.
func TestRepairNonManifold(t *testing.T) {
	m := testTetSurface()
	fin := m.AddVertex(r3.Vec{X: 0.4, Y: -1, Z: 0.2})
	m.AddFace(0, 1, fin)

	rep := Repair(m, &Engine{})

	assert.Equal(t, 3, rep.NonManifoldFaces)
	assert.Equal(t, 0, m.CountNonManifoldEdges())
	m.MarkBorders()
	assert.Equal(t, 0, m.CountBorderEdges(), "holes left by removal are refilled")
}

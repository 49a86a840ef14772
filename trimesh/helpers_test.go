package trimesh

import "gonum.org/v1/gonum/spatial/r3"

// testCube builds a unit cube as 12 consistently outward-wound triangles.
func testCube() *Mesh {
	m := NewMesh()
	for _, p := range []r3.Vec{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	} {
		m.AddVertex(p)
	}
	for _, f := range [][3]int{
		{0, 2, 1}, {0, 3, 2}, // bottom
		{4, 5, 6}, {4, 6, 7}, // top
		{0, 1, 5}, {0, 5, 4}, // front
		{2, 3, 7}, {2, 7, 6}, // back
		{0, 4, 7}, {0, 7, 3}, // left
		{1, 2, 6}, {1, 6, 5}, // right
	} {
		m.AddFace(f[0], f[1], f[2])
	}
	return m
}

// testTetSurface builds the closed surface of a single tetrahedron with
// outward winding.
func testTetSurface() *Mesh {
	m := NewMesh()
	for _, p := range []r3.Vec{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1},
	} {
		m.AddVertex(p)
	}
	for _, f := range [][3]int{
		{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3},
	} {
		m.AddFace(f[0], f[1], f[2])
	}
	return m
}

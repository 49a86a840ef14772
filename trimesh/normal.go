package trimesh

import "gonum.org/v1/gonum/spatial/r3"

// ComputeNormals recomputes per-face and per-vertex normals from the final
// geometry. Face normals follow the winding (outward once the mesh is
// coherently oriented); vertex normals are the normalized sum of incident
// face normals weighted by face area.
func (m *Mesh) ComputeNormals() {
	for i := range m.Verts {
		m.Verts[i].N = r3.Vec{}
	}
	for i := range m.Faces {
		f := &m.Faces[i]
		n := faceNormal(m.Verts[f.V[0]].P, m.Verts[f.V[1]].P, m.Verts[f.V[2]].P)
		for _, v := range f.V {
			// n's magnitude is twice the face area, which is exactly
			// the weight we want before normalizing.
			m.Verts[v].N = r3.Add(m.Verts[v].N, n)
		}
		if l := r3.Norm(n); l > 0 {
			f.N = r3.Scale(1/l, n)
		} else {
			f.N = r3.Vec{}
		}
	}
	for i := range m.Verts {
		if l := r3.Norm(m.Verts[i].N); l > 0 {
			m.Verts[i].N = r3.Scale(1/l, m.Verts[i].N)
		}
	}
}

package trimesh

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const geomEps = 1e-12

func vec(x, y, z float64) r3.Vec { return r3.Vec{X: x, Y: y, Z: z} }

// faceNormal returns the unnormalized normal of triangle (a,b,c).
func faceNormal(a, b, c r3.Vec) r3.Vec {
	return r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
}

// segTriIntersect reports whether the open segment p0-p1 crosses the
// interior of triangle (a,b,c). Touches at the segment endpoints or on the
// triangle boundary do not count, so triangles meeting along a shared edge
// are not flagged.
func segTriIntersect(p0, p1, a, b, c r3.Vec) bool {
	n := faceNormal(a, b, c)
	d := r3.Sub(p1, p0)
	denom := r3.Dot(n, d)
	if math.Abs(denom) < geomEps {
		return false // parallel to the plane
	}
	t := r3.Dot(n, r3.Sub(a, p0)) / denom
	if t <= geomEps || t >= 1-geomEps {
		return false
	}
	p := r3.Add(p0, r3.Scale(t, d))

	// Barycentric containment, strictly inside.
	v0 := r3.Sub(b, a)
	v1 := r3.Sub(c, a)
	v2 := r3.Sub(p, a)
	d00 := r3.Dot(v0, v0)
	d01 := r3.Dot(v0, v1)
	d11 := r3.Dot(v1, v1)
	d20 := r3.Dot(v2, v0)
	d21 := r3.Dot(v2, v1)
	den := d00*d11 - d01*d01
	if math.Abs(den) < geomEps {
		return false
	}
	u := (d11*d20 - d01*d21) / den
	w := (d00*d21 - d01*d20) / den
	return u > geomEps && w > geomEps && u+w < 1-geomEps
}

// trianglesIntersect reports whether two triangles cross each other. Each
// edge of one is tested against the interior of the other; coplanar overlap
// without edge crossings is not detected, which matches the conservative
// check used during ear acceptance.
func trianglesIntersect(ta, tb [3]r3.Vec) bool {
	for j := 0; j < 3; j++ {
		if segTriIntersect(ta[j], ta[(j+1)%3], tb[0], tb[1], tb[2]) {
			return true
		}
		if segTriIntersect(tb[j], tb[(j+1)%3], ta[0], ta[1], ta[2]) {
			return true
		}
	}
	return false
}

// vertexAngle returns the angle at vertex c formed by segments c-p and c-n.
func vertexAngle(p, c, n r3.Vec) float64 {
	u := r3.Sub(p, c)
	v := r3.Sub(n, c)
	nu := r3.Norm(u)
	nv := r3.Norm(v)
	if nu == 0 || nv == 0 {
		return math.Pi
	}
	cos := r3.Dot(u, v) / (nu * nv)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

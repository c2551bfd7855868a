package geometry

import (
	"github.com/df07/go-sprite-raytracer/pkg/core"
	"github.com/df07/go-sprite-raytracer/pkg/material"
)

// parallelEpsilon rejects rays nearly parallel to the triangle plane
const parallelEpsilon = 1e-7

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2   core.Vec3 // The three vertices
	Edge1, Edge2 core.Vec3 // V1-V0 and V2-V0
	Normal       core.Vec3 // Unit face normal, Edge1 × Edge2
	Centroid     core.Vec3
	Material     material.Material
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) Triangle {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	return Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Edge1:    edge1,
		Edge2:    edge2,
		Normal:   edge1.Cross(edge2).Normalize(),
		Centroid: v0.Add(v1).Add(v2).Divide(3),
		Material: mat,
	}
}

// Primitive wraps the triangle for use in a scene
func (t Triangle) Primitive() Primitive {
	return Primitive{Kind: KindTriangle, Triangle: t}
}

// Barycentric runs the Möller–Trumbore test and returns the barycentric
// coordinates (u, v) of the intersection together with its ray parameter.
// ok is false for parallel rays and for points outside the triangle; the
// ray parameter is not range checked.
func (t Triangle) Barycentric(ray core.Ray) (u, v, tParam float64, ok bool) {
	h := ray.Direction.Cross(t.Edge2)
	a := t.Edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if a > -parallelEpsilon && a < parallelEpsilon {
		return 0, 0, 0, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u = f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0, 0, 0, false
	}

	q := s.Cross(t.Edge1)
	v = f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0, 0, 0, false
	}

	return u, v, f * t.Edge2.Dot(q), true
}

// Hit tests if a ray intersects with the triangle
func (t Triangle) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	_, _, tParam, ok := t.Barycentric(ray)
	if !ok || tParam < tMin || tParam > tMax {
		return material.HitRecord{}, false
	}

	hitRecord := material.HitRecord{
		T:        tParam,
		Point:    ray.At(tParam),
		Material: t.Material,
	}
	hitRecord.SetFaceNormal(ray, t.Normal)

	return hitRecord, true
}

package geometry

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-sprite-raytracer/pkg/core"
	"github.com/df07/go-sprite-raytracer/pkg/material"
)

// Mesh is an owned collection of triangles sharing one material.
// Intersection is a linear scan over the triangles.
type Mesh struct {
	Triangles []Triangle
	Material  material.Material
	Center    core.Vec3 // Mean of the triangle centroids

	// CorrectNormals enables the experimental orientation correction.
	// When false the raw face normal of each triangle is used.
	CorrectNormals bool
}

// MeshOptions are the import-time adjustments applied to a mesh
type MeshOptions struct {
	Rotation       *core.Vec3 // Radians about X, then Y, then Z
	Pivot          *core.Vec3 // Point the rotation turns about, nil = world origin
	CorrectNormals bool
}

// NewMesh builds a mesh from vertex triples supplied by a mesh importer.
// options may be nil.
func NewMesh(faces []r3.Triangle, mat material.Material, options *MeshOptions) *Mesh {
	triangles := make([]Triangle, 0, len(faces))
	centers := core.Vec3{}

	var transform *vertexTransform
	if options != nil && options.Rotation != nil {
		transform = newVertexTransform(*options.Rotation, options.Pivot)
	}

	for _, face := range faces {
		v0, v1, v2 := fromR3(face[0]), fromR3(face[1]), fromR3(face[2])

		if transform != nil {
			v0, v1, v2 = transform.apply(v0), transform.apply(v1), transform.apply(v2)
		}

		triangle := NewTriangle(v0, v1, v2, mat)
		centers = centers.Add(triangle.Centroid)
		triangles = append(triangles, triangle)
	}

	var center core.Vec3
	if len(triangles) > 0 {
		center = centers.Divide(float64(len(triangles)))
	}

	return &Mesh{
		Triangles:      triangles,
		Material:       mat,
		Center:         center,
		CorrectNormals: options != nil && options.CorrectNormals,
	}
}

// Primitive wraps the mesh for use in a scene
func (m *Mesh) Primitive() Primitive {
	return Primitive{Kind: KindMesh, Mesh: m}
}

// Hit returns the closest triangle intersection in [tMin, tMax]
func (m *Mesh) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	var closest *Triangle
	closestSoFar := tMax

	for i := range m.Triangles {
		_, _, t, ok := m.Triangles[i].Barycentric(ray)
		if !ok || t < tMin || t > tMax {
			continue
		}
		// Strictly closer only, so the earlier triangle wins a tie
		if closest == nil || t < closestSoFar {
			closestSoFar = t
			closest = &m.Triangles[i]
		}
	}

	if closest == nil {
		return material.HitRecord{}, false
	}

	hitRecord := material.HitRecord{
		T:        closestSoFar,
		Point:    ray.At(closestSoFar),
		Material: m.Material,
	}

	normal := closest.Normal
	if m.CorrectNormals {
		normal = OrientNormal(hitRecord.Point, closest.Centroid, normal)
	}
	hitRecord.SetFaceNormal(ray, normal)

	return hitRecord, true
}

// TriangleCount returns the number of triangles in this mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

func fromR3(v r3.Vec) core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}

// vertexTransform rotates vertices about a fixed pivot
type vertexTransform struct {
	rotation mgl64.Mat3
	pivot    mgl64.Vec3
}

func newVertexTransform(rotation core.Vec3, pivot *core.Vec3) *vertexTransform {
	t := &vertexTransform{
		// Column vectors, so the X rotation is applied first
		rotation: mgl64.Rotate3DZ(rotation.Z).Mul3(mgl64.Rotate3DY(rotation.Y)).Mul3(mgl64.Rotate3DX(rotation.X)),
	}
	if pivot != nil {
		t.pivot = toMgl(*pivot)
	}
	return t
}

func (t *vertexTransform) apply(v core.Vec3) core.Vec3 {
	return fromMgl(t.rotation.Mul3x1(toMgl(v).Sub(t.pivot)).Add(t.pivot))
}

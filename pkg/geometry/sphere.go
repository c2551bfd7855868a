package geometry

import (
	"math"

	"github.com/df07/go-sprite-raytracer/pkg/core"
	"github.com/df07/go-sprite-raytracer/pkg/material"
)

// Sphere represents a sphere shape. A negative radius keeps the same
// surface but flips the outward normal inward, which models the inner
// wall of a hollow glass shell.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) Sphere {
	return Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Primitive wraps the sphere for use in a scene
func (s Sphere) Primitive() Primitive {
	return Primitive{Kind: KindSphere, Sphere: s}
}

// Hit tests if a ray intersects with the sphere
func (s Sphere) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 || a == 0 {
		return material.HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return material.HitRecord{}, false
		}
	}

	hitRecord := material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Dividing by the signed radius flips the normal for negative radii
	outwardNormal := hitRecord.Point.Subtract(s.Center).Divide(s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

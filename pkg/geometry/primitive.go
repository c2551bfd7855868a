package geometry

import (
	"fmt"

	"github.com/df07/go-sprite-raytracer/pkg/core"
	"github.com/df07/go-sprite-raytracer/pkg/material"
)

// Kind identifies the shape held by a Primitive
type Kind uint8

const (
	KindSphere Kind = iota
	KindTriangle
	KindMesh
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindTriangle:
		return "triangle"
	case KindMesh:
		return "mesh"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Primitive is a closed variant over the shapes the renderer can intersect.
// Only the field selected by Kind is populated.
type Primitive struct {
	Kind     Kind
	Sphere   Sphere
	Triangle Triangle
	Mesh     *Mesh
}

// Hit returns the nearest intersection with t in [tMin, tMax]
func (p Primitive) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	switch p.Kind {
	case KindSphere:
		return p.Sphere.Hit(ray, tMin, tMax)
	case KindTriangle:
		return p.Triangle.Hit(ray, tMin, tMax)
	case KindMesh:
		if p.Mesh == nil {
			return material.HitRecord{}, false
		}
		return p.Mesh.Hit(ray, tMin, tMax)
	default:
		return material.HitRecord{}, false
	}
}

// Material returns the material shared by every surface of the primitive
func (p Primitive) Material() material.Material {
	switch p.Kind {
	case KindSphere:
		return p.Sphere.Material
	case KindTriangle:
		return p.Triangle.Material
	case KindMesh:
		if p.Mesh != nil {
			return p.Mesh.Material
		}
	}
	return material.Material{}
}

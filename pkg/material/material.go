package material

import (
	"fmt"

	"github.com/df07/go-sprite-raytracer/pkg/core"
)

// Kind identifies which surface model a Material uses
type Kind uint8

const (
	KindLambertian Kind = iota // Diffuse
	KindMetal                  // Reflective, optionally fuzzy
	KindDielectric             // Refractive, clear
)

func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Material is a closed set of surface behaviors. Only the fields relevant
// to Kind are meaningful; values are immutable once attached to a shape.
type Material struct {
	Kind            Kind
	Albedo          core.Vec3 // Lambertian and Metal
	Fuzz            float64   // Metal, clamped to [0, 1]
	RefractiveIndex float64   // Dielectric
}

// Scatter decides how rayIn leaves the surface described by hit. A false
// return means the ray was absorbed.
func (m Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.Kind {
	case KindLambertian:
		return scatterLambertian(m, hit, sampler)
	case KindMetal:
		return scatterMetal(m, rayIn, hit, sampler)
	case KindDielectric:
		return scatterDielectric(m, rayIn, hit, sampler)
	default:
		return ScatterResult{}, false
	}
}

// Color returns the flat surface color used for unlit (diffuse map) shading
func (m Material) Color() core.Vec3 {
	if m.Kind == KindDielectric {
		return core.NewVec3(1, 1, 1)
	}
	return m.Albedo
}

func (m Material) String() string {
	switch m.Kind {
	case KindLambertian:
		return fmt.Sprintf("lambertian(albedo=%v)", m.Albedo)
	case KindMetal:
		return fmt.Sprintf("metal(albedo=%v, fuzz=%g)", m.Albedo, m.Fuzz)
	case KindDielectric:
		return fmt.Sprintf("dielectric(ior=%g)", m.RefractiveIndex)
	default:
		return m.Kind.String()
	}
}

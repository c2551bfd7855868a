package material

import (
	"github.com/df07/go-sprite-raytracer/pkg/core"
)

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzz float64) Material {
	// Clamp fuzz to valid range
	return Material{Kind: KindMetal, Albedo: albedo, Fuzz: max(0.0, min(1.0, fuzz))}
}

// scatterMetal reflects about the normal, perturbed by Fuzz. Rays perturbed
// below the surface are absorbed.
func scatterMetal(m Material, rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.SampleInUnitSphere(sampler).Multiply(m.Fuzz))
	}

	scattered := core.NewRay(hit.Point, reflected)
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, true
}

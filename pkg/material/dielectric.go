package material

import (
	"math"

	"github.com/df07/go-sprite-raytracer/pkg/core"
)

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) Material {
	return Material{Kind: KindDielectric, RefractiveIndex: refractiveIndex}
}

// scatterDielectric either reflects or refracts. Reflection happens on total
// internal reflection, or stochastically with Schlick's probability so that
// many samples converge to the Fresnel blend.
func scatterDielectric(m Material, rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Clear glass absorbs nothing
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	refractionRatio := m.RefractiveIndex
	if hit.FrontFace {
		refractionRatio = 1.0 / m.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, refractionRatio)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

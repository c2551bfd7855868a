package material

import (
	"github.com/df07/go-sprite-raytracer/pkg/core"
)

// NewLambertian creates a perfectly diffuse material
func NewLambertian(albedo core.Vec3) Material {
	return Material{Kind: KindLambertian, Albedo: albedo}
}

// scatterLambertian bounces the ray along normal + random unit vector,
// which approximates a cosine-weighted hemisphere distribution
func scatterLambertian(m Material, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.SampleUnitVector(sampler))

	// The random vector can nearly cancel the normal
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: m.Albedo,
	}, true
}

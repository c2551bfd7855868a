package scene

import (
	"math/rand"

	"github.com/df07/go-sprite-raytracer/pkg/core"
	"github.com/df07/go-sprite-raytracer/pkg/geometry"
	"github.com/df07/go-sprite-raytracer/pkg/material"
)

// gridExtent bounds the small sphere grid to [-gridExtent, gridExtent)
const gridExtent = 11

// NewRandomScene creates the large grid of small random spheres around
// three feature spheres. The layout is fully determined by seed.
func NewRandomScene(seed int64) *Scene {
	cameraConfig := geometry.CameraConfig{
		Eye:           core.NewVec3(13, 2, 3),
		Target:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFovDegrees:   20,
		Aperture:      0.1,
		FocusDistance: 10,
	}

	samplingConfig := DefaultSamplingConfig()
	samplingConfig.Seed = seed
	s := NewScene(cameraConfig, samplingConfig)

	random := rand.New(rand.NewSource(seed))
	randomVec := func(lo, hi float64) core.Vec3 {
		return core.NewVec3(
			lo+(hi-lo)*random.Float64(),
			lo+(hi-lo)*random.Float64(),
			lo+(hi-lo)*random.Float64(),
		)
	}

	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -gridExtent; a < gridExtent; a++ {
		for b := -gridExtent; b < gridExtent; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			// Keep the area around the metal feature sphere clear
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				mat = material.NewLambertian(randomVec(0, 1).MultiplyVec(randomVec(0, 1)))
			case chooseMat < 0.95:
				albedo := randomVec(0.5, 1)
				mat = material.NewMetal(albedo, 0.5+0.5*random.Float64())
			default:
				mat = material.NewDielectric(1.5)
			}
			s.AddSphere(center, 0.2, mat)
		}
	}

	s.AddSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5))
	s.AddSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	s.AddSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))

	return s
}

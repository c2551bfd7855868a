package scene

import (
	"github.com/df07/go-sprite-raytracer/pkg/core"
	"github.com/df07/go-sprite-raytracer/pkg/geometry"
	"github.com/df07/go-sprite-raytracer/pkg/material"
)

// NewDefaultScene creates the five sphere showcase: a ground sphere, a
// diffuse center sphere, a hollow glass sphere, a fuzzy gold sphere and a
// mirror sphere above them
func NewDefaultScene() *Scene {
	eye := core.NewVec3(3, 3, 2)
	target := core.NewVec3(0, 0, -1)

	cameraConfig := geometry.CameraConfig{
		Eye:           eye,
		Target:        target,
		Up:            core.NewVec3(0, 1, 0),
		VFovDegrees:   20,
		Aperture:      2.0,                            // Strong depth of field blur
		FocusDistance: eye.Subtract(target).Length(), // Focus on the center sphere
	}

	s := NewScene(cameraConfig, DefaultSamplingConfig())

	// Create materials
	groundYellow := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	centerBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.1)
	mirror := material.NewMetal(core.NewVec3(0.4, 0.4, 0.2), 0.0)

	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, groundYellow)
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, centerBlue)
	// Negative radius flips the normals, rendering a thin glass bubble
	s.AddSphere(core.NewVec3(-1, 0, -1), -0.4, glass)
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, gold)
	s.AddSphere(core.NewVec3(0, 1, -1.4), 0.6, mirror)

	return s
}

package renderer

import (
	"github.com/df07/go-sprite-raytracer/pkg/core"
	"github.com/df07/go-sprite-raytracer/pkg/geometry"
	"github.com/df07/go-sprite-raytracer/pkg/material"
	"github.com/df07/go-sprite-raytracer/pkg/scene"
)

// createSphereScene builds the 3x3 single sphere scene looking down -Z
func createSphereScene(samples, maxDepth int) *scene.Scene {
	cameraConfig := geometry.CameraConfig{
		Eye:         core.NewVec3(0, 0, 0),
		Target:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFovDegrees: 90,
		AspectRatio: 1,
	}
	s := scene.NewScene(cameraConfig, scene.SamplingConfig{
		Width:           3,
		Height:          3,
		SamplesPerPixel: samples,
		MaxDepth:        maxDepth,
		Seed:            42,
	})
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	return s
}

// createOrthographicScene builds an empty orthographic scene
func createOrthographicScene(width, height int) *scene.Scene {
	cameraConfig := geometry.CameraConfig{
		Eye:         core.NewVec3(0, 0, 5),
		Target:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFovDegrees: 45,
		Projection:  geometry.ProjectionOrthographic,
	}
	return scene.NewSpriteScene(nil, cameraConfig, width, height)
}

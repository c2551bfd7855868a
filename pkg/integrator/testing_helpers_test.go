package integrator

import (
	"github.com/df07/go-sprite-raytracer/pkg/core"
	"github.com/df07/go-sprite-raytracer/pkg/geometry"
	"github.com/df07/go-sprite-raytracer/pkg/scene"
)

// fixedSampler returns the same values on every call
type fixedSampler struct {
	value1D float64
	value2D core.Vec2
	value3D core.Vec3
}

func (f fixedSampler) Get1D() float64  { return f.value1D }
func (f fixedSampler) Get2D() core.Vec2 { return f.value2D }
func (f fixedSampler) Get3D() core.Vec3 { return f.value3D }

// createTestScene creates an empty scene looking down -Z
func createTestScene(maxDepth int) *scene.Scene {
	cameraConfig := geometry.CameraConfig{
		Eye:         core.NewVec3(0, 0, 0),
		Target:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFovDegrees: 90,
	}
	return scene.NewScene(cameraConfig, scene.SamplingConfig{
		Width:           3,
		Height:          3,
		SamplesPerPixel: 1,
		MaxDepth:        maxDepth,
	})
}

func colorsClose(a, b core.Color, tolerance float64) bool {
	return a.RGB().Subtract(b.RGB()).Length() <= tolerance && a.A == b.A
}

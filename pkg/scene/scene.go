package scene

import (
	"github.com/df07/go-sprite-raytracer/pkg/core"
	"github.com/df07/go-sprite-raytracer/pkg/geometry"
	"github.com/df07/go-sprite-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering.
// It is read-only while a render pass is running.
type Scene struct {
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	Primitives     []geometry.Primitive // Insertion ordered, earlier wins ties
	SamplingConfig SamplingConfig
	Background     Background
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width
	Height          int   // Image height
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base seed, each row derives its own generator from it
}

// DefaultSamplingConfig returns the settings used by the scene renderer
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           480,
		Height:          270,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            1,
	}
}

// AspectRatio returns width / height
func (c SamplingConfig) AspectRatio() float64 {
	if c.Height == 0 {
		return 1
	}
	return float64(c.Width) / float64(c.Height)
}

// Background is the vertical sky gradient seen by rays that miss
type Background struct {
	Horizon core.Vec3 // Color looking straight down
	Zenith  core.Vec3 // Color looking straight up
}

// DefaultBackground returns the white to sky blue gradient
func DefaultBackground() Background {
	return Background{
		Horizon: core.NewVec3(1.0, 1.0, 1.0),
		Zenith:  core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Color blends horizon and zenith by the height of the unit direction
func (b Background) Color(direction core.Vec3) core.Color {
	t := 0.5 * (direction.Normalize().Y + 1.0)
	sky := b.Horizon.Multiply(1.0 - t).Add(b.Zenith.Multiply(t))
	return core.ColorFromVec3(sky, 1.0)
}

// NewScene creates an empty scene. A zero aspect ratio in cameraConfig is
// filled in from the sampling resolution.
func NewScene(cameraConfig geometry.CameraConfig, samplingConfig SamplingConfig) *Scene {
	if cameraConfig.AspectRatio == 0 {
		cameraConfig.AspectRatio = samplingConfig.AspectRatio()
	}

	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		Primitives:     make([]geometry.Primitive, 0),
		SamplingConfig: samplingConfig,
		Background:     DefaultBackground(),
	}
}

// Add appends primitives, preserving their order
func (s *Scene) Add(primitives ...geometry.Primitive) {
	s.Primitives = append(s.Primitives, primitives...)
}

// AddSphere adds a sphere; a negative radius makes an inward facing shell
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) {
	s.Add(geometry.NewSphere(center, radius, mat).Primitive())
}

// AddMesh adds every triangle of a mesh as a single primitive
func (s *Scene) AddMesh(mesh *geometry.Mesh) {
	s.Add(mesh.Primitive())
}

// Resize changes the output resolution and rebuilds the camera for the
// new aspect ratio
func (s *Scene) Resize(width, height int) {
	s.SamplingConfig.Width = width
	s.SamplingConfig.Height = height
	s.CameraConfig.AspectRatio = s.SamplingConfig.AspectRatio()
	s.Camera = geometry.NewCamera(s.CameraConfig)
}

// Hit returns the nearest intersection across all primitives. Only a
// strictly closer hit replaces the current one, so ties keep the primitive
// that was added first.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	var closest material.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, primitive := range s.Primitives {
		hit, ok := primitive.Hit(ray, tMin, closestSoFar)
		if !ok {
			continue
		}
		if !hitAnything || hit.T < closest.T {
			closest = hit
			closestSoFar = hit.T
			hitAnything = true
		}
	}

	return closest, hitAnything
}

// PrimitiveCount returns the number of intersectable surfaces, counting
// each mesh triangle separately
func (s *Scene) PrimitiveCount() int {
	count := 0
	for _, primitive := range s.Primitives {
		if primitive.Kind == geometry.KindMesh && primitive.Mesh != nil {
			count += primitive.Mesh.TriangleCount()
			continue
		}
		count++
	}
	return count
}

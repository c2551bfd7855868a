package scene

import (
	"github.com/df07/go-sprite-raytracer/pkg/geometry"
)

// NewSpriteScene creates a single mesh scene for normal and diffuse map
// baking. Sprites are shaded with one unjittered sample and one bounce.
func NewSpriteScene(mesh *geometry.Mesh, cameraConfig geometry.CameraConfig, width, height int) *Scene {
	samplingConfig := SamplingConfig{
		Width:           width,
		Height:          height,
		SamplesPerPixel: 1,
		MaxDepth:        1,
	}

	s := NewScene(cameraConfig, samplingConfig)
	if mesh != nil {
		s.AddMesh(mesh)
	}
	return s
}

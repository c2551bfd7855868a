package integrator

import (
	"fmt"
	"math"

	"github.com/df07/go-sprite-raytracer/pkg/core"
	"github.com/df07/go-sprite-raytracer/pkg/scene"
)

// spriteTMin is smaller than the path tracer's since primary rays never
// start on a surface
const spriteTMin = 0.0001

// ShadingMode selects which map the sprite integrator produces
type ShadingMode uint8

const (
	ShadingDiffuse ShadingMode = iota // Flat material color
	ShadingNormal                     // Surface normal remapped to [0,1]
)

func (m ShadingMode) String() string {
	switch m {
	case ShadingDiffuse:
		return "diffuse"
	case ShadingNormal:
		return "normal"
	default:
		return fmt.Sprintf("ShadingMode(%d)", uint8(m))
	}
}

// SpriteIntegrator shades the first surface a ray hits without bouncing
type SpriteIntegrator struct {
	Mode ShadingMode
}

// NewSpriteIntegrator creates a single bounce integrator for the given map
func NewSpriteIntegrator(mode ShadingMode) *SpriteIntegrator {
	return &SpriteIntegrator{Mode: mode}
}

// RayColor returns an opaque shading color on hit and a fully transparent
// color on miss so the background can be composited out
func (si *SpriteIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Color {
	hit, isHit := s.Hit(ray, spriteTMin, math.MaxFloat64)
	if !isHit {
		return TransparentColor
	}

	switch si.Mode {
	case ShadingNormal:
		// Map each component from [-1,1] to [0,1]
		normal := hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
		return core.ColorFromVec3(normal, 1.0)
	default:
		return core.ColorFromVec3(hit.Material.Color(), 1.0)
	}
}

package integrator

import (
	"math"

	"github.com/df07/go-sprite-raytracer/pkg/core"
	"github.com/df07/go-sprite-raytracer/pkg/scene"
)

// pathTMin keeps scattered rays from re-hitting the surface they left
const pathTMin = 0.001

// PathTracingIntegrator implements unidirectional path tracing lit only by
// the scene background
type PathTracingIntegrator struct {
	MaxDepth int // Surface interactions per path, 0 renders every pixel as MissColor
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config scene.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth: config.MaxDepth,
	}
}

// SetMaxDepth updates the bounce limit
func (pt *PathTracingIntegrator) SetMaxDepth(maxDepth int) {
	pt.MaxDepth = maxDepth
}

// RayColor follows the ray through at most MaxDepth surface interactions.
// Attenuation is accumulated in a throughput multiplier instead of
// recursing, so each bounce costs constant stack space.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Color {
	throughput := core.NewVec3(1, 1, 1)

	for depth := pt.MaxDepth; depth > 0; depth-- {
		hit, isHit := s.Hit(ray, pathTMin, math.MaxFloat64)
		if !isHit {
			sky := s.Background.Color(ray.Direction)
			return core.ColorFromVec3(throughput.MultiplyVec(sky.RGB()), 1.0)
		}

		scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
		if !didScatter {
			return MissColor
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Bounce limit reached without escaping
	return MissColor
}

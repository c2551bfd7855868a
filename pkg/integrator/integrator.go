package integrator

import (
	"github.com/df07/go-sprite-raytracer/pkg/core"
	"github.com/df07/go-sprite-raytracer/pkg/scene"
)

// MissColor is returned when a path is absorbed or runs out of bounces
var MissColor = core.NewColor(0, 0, 0, 1)

// TransparentColor is returned by the sprite integrator for rays that miss
var TransparentColor = core.NewColor(0, 0, 0, 0)

// Integrator defines the interface for light transport algorithms.
// Implementations must not mutate the scene; all randomness comes from
// the sampler, which the caller owns.
type Integrator interface {
	RayColor(ray core.Ray, scene *scene.Scene, sampler core.Sampler) core.Color
}

// DepthLimited is implemented by integrators whose bounce limit follows the
// renderer's sampling config
type DepthLimited interface {
	SetMaxDepth(maxDepth int)
}

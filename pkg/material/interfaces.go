package material

import (
	"github.com/df07/go-sprite-raytracer/pkg/core"
)

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation, each component in [0, 1]
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always facing against the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether the geometric normal already opposed the ray
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	// A tangent ray (dot == 0) keeps the negated outward normal, so only
	// dot(Normal, Direction) <= 0 holds there
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

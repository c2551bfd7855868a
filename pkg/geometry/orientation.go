package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-sprite-raytracer/pkg/core"
)

// OrientNormal rotates normal by the rotation that carries the direction of
// point onto the direction of target (both taken as vectors from the world
// origin). Meshes only use it when CorrectNormals is set; it is an
// experimental hook for baking camera-facing normal maps.
//
// Degenerate inputs (zero or parallel directions) return normal unchanged.
func OrientNormal(point, target, normal core.Vec3) core.Vec3 {
	from := point.Normalize()
	to := target.Normalize()
	if from.NearZero() || to.NearZero() || from.Dot(to) > 1-1e-12 {
		return normal
	}

	q := mgl64.QuatBetweenVectors(toMgl(from), toMgl(to)).Normalize()
	return fromMgl(q.Rotate(toMgl(normal))).Normalize()
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

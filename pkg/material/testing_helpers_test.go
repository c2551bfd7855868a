package material

import "github.com/df07/go-sprite-raytracer/pkg/core"

// fixedSampler replays the same values on every call
type fixedSampler struct {
	v1 float64
	v3 core.Vec3
}

func (f fixedSampler) Get1D() float64 { return f.v1 }
func (f fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(f.v3.X, f.v3.Y)
}
func (f fixedSampler) Get3D() core.Vec3 { return f.v3 }

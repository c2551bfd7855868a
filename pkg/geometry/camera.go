package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-sprite-raytracer/pkg/core"
)

// Projection selects how the camera maps image coordinates to rays
type Projection uint8

const (
	ProjectionPerspective Projection = iota
	ProjectionOrthographic
)

func (p Projection) String() string {
	switch p {
	case ProjectionPerspective:
		return "perspective"
	case ProjectionOrthographic:
		return "orthographic"
	default:
		return fmt.Sprintf("Projection(%d)", uint8(p))
	}
}

// ParseProjection maps "perspective" or "orthographic" to a Projection
func ParseProjection(name string) (Projection, error) {
	switch name {
	case "perspective", "Perspective", "":
		return ProjectionPerspective, nil
	case "orthographic", "Orthographic":
		return ProjectionOrthographic, nil
	default:
		return ProjectionPerspective, fmt.Errorf("unknown projection %q", name)
	}
}

// CameraConfig contains the user-facing camera parameters
type CameraConfig struct {
	Eye           core.Vec3  // Camera position
	Target        core.Vec3  // Point the camera looks at
	Up            core.Vec3  // Up direction
	VFovDegrees   float64    // Vertical field of view in degrees
	AspectRatio   float64    // Width / height
	Aperture      float64    // Lens diameter, 0 = pinhole
	FocusDistance float64    // Distance to the sharp plane, 0 = distance from Eye to Target
	Projection    Projection // Perspective or orthographic
	Scale         float64    // Viewport scale factor, 0 = 1
}

// Camera generates rays for rendering. It is immutable after construction
// and safe to share between goroutines.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Orthonormal basis, w points from Target back to Eye
	lensRadius      float64
	projection      Projection
}

// NewCamera derives the camera basis from config
func NewCamera(config CameraConfig) *Camera {
	theta := core.DegreesToRadians(config.VFovDegrees)
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	scale := config.Scale
	if scale == 0 {
		scale = 1
	}

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Eye.Subtract(config.Target).Length()
	}

	w := config.Eye.Subtract(config.Target).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	camera := &Camera{
		origin:     config.Eye,
		u:          u,
		v:          v,
		w:          w,
		projection: config.Projection,
	}

	switch config.Projection {
	case ProjectionOrthographic:
		// The image plane sits behind the eye so geometry near the eye
		// is not clipped
		camera.horizontal = u.Multiply(scale * viewportWidth)
		camera.vertical = v.Multiply(scale * viewportHeight)
		camera.lowerLeftCorner = config.Eye.
			Subtract(camera.horizontal.Multiply(0.5)).
			Subtract(camera.vertical.Multiply(0.5)).
			Add(w.Multiply(focusDistance))
	default:
		camera.horizontal = u.Multiply(scale * viewportWidth * focusDistance)
		camera.vertical = v.Multiply(scale * viewportHeight * focusDistance)
		camera.lowerLeftCorner = config.Eye.
			Subtract(camera.horizontal.Multiply(0.5)).
			Subtract(camera.vertical.Multiply(0.5)).
			Subtract(w.Multiply(focusDistance))
		camera.lensRadius = config.Aperture / 2
	}

	return camera
}

// GetRay generates a ray for normalized image coordinates (s, t), with
// (0, 0) at the bottom-left. sampler is only consulted for lens sampling
// and may be nil for pinhole and orthographic cameras.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	planePoint := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t))

	if c.projection == ProjectionOrthographic {
		return core.NewRay(planePoint, c.w.Negate())
	}

	origin := c.origin
	if c.lensRadius > 0 && sampler != nil {
		rd := core.SampleInUnitDisk(sampler).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	return core.NewRay(origin, planePoint.Subtract(origin))
}

// Projection returns the camera's projection mode
func (c *Camera) Projection() Projection {
	return c.projection
}

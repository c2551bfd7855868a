package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-sprite-raytracer/pkg/core"
	"github.com/df07/go-sprite-raytracer/pkg/geometry"
)

// Vector is a JSON friendly 3D vector, written as {"x":..,"y":..,"z":..}
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec3 converts to the engine vector type
func (v Vector) Vec3() core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}

// Perspective selects the projection and its viewport scale
type Perspective struct {
	Kind  string  `json:"kind"`  // "perspective" or "orthographic"
	Scale float64 `json:"scale"` // 0 means 1
}

// UnmarshalJSON accepts both {"kind":"orthographic","scale":2} and the
// externally tagged form {"Orthographic":{"scale":2}}
func (p *Perspective) UnmarshalJSON(data []byte) error {
	type plain Perspective
	var flat plain
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	if flat.Kind != "" {
		*p = Perspective(flat)
		return nil
	}

	var tagged map[string]struct {
		Scale float64 `json:"scale"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil || len(tagged) != 1 {
		*p = Perspective(flat)
		return nil
	}
	for kind, body := range tagged {
		*p = Perspective{Kind: strings.ToLower(kind), Scale: body.Scale}
	}
	return nil
}

// CameraSettings are the user-facing camera parameters of a sprite render
type CameraSettings struct {
	VFov        float64     `json:"v_fov"`
	Eye         Vector      `json:"eye"`
	Target      Vector      `json:"target"`
	UpDir       Vector      `json:"up_dir"`
	Perspective Perspective `json:"perspective"`
	FocalLen    float64     `json:"focal_len"`          // Distance to the image plane, 0 = |eye - target|
	Aperture    float64     `json:"aperture,omitempty"` // Perspective only
}

// CameraConfig converts the settings into an engine camera configuration.
// The aspect ratio is left for the scene to derive from the resolution.
func (c CameraSettings) CameraConfig() (geometry.CameraConfig, error) {
	projection, err := geometry.ParseProjection(c.Perspective.Kind)
	if err != nil {
		return geometry.CameraConfig{}, err
	}

	return geometry.CameraConfig{
		Eye:           c.Eye.Vec3(),
		Target:        c.Target.Vec3(),
		Up:            c.UpDir.Vec3(),
		VFovDegrees:   c.VFov,
		Aperture:      c.Aperture,
		FocusDistance: c.FocalLen,
		Projection:    projection,
		Scale:         c.Perspective.Scale,
	}, nil
}

// RenderSettings is the sprite generator's JSON configuration file
type RenderSettings struct {
	CameraSettings   CameraSettings `json:"camera_settings"`
	ImageWidth       int            `json:"image_width"`
	ImageHeight      int            `json:"image_height"`
	MeshFile         string         `json:"mesh_file"`
	BlackenNormalMap bool           `json:"blacken_normal_map"`
	CorrectNormals   bool           `json:"correct_normals,omitempty"`
	Rotation         *Vector        `json:"rotation,omitempty"` // Degrees about X, then Y, then Z, around the world origin
}

// Parse decodes settings, fills defaults and validates them
func Parse(data []byte) (*RenderSettings, error) {
	var settings RenderSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to decode render settings: %w", err)
	}

	// Defaults
	if settings.CameraSettings.UpDir == (Vector{}) {
		settings.CameraSettings.UpDir = Vector{Y: 1}
	}
	if settings.CameraSettings.Perspective.Kind == "" {
		settings.CameraSettings.Perspective.Kind = geometry.ProjectionPerspective.String()
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid render settings: %w", err)
	}
	return &settings, nil
}

// Validate reports the first setting the renderer cannot work with
func (s *RenderSettings) Validate() error {
	camera := s.CameraSettings
	switch {
	case s.ImageWidth <= 0 || s.ImageHeight <= 0:
		return fmt.Errorf("image size must be positive, got %dx%d", s.ImageWidth, s.ImageHeight)
	case s.MeshFile == "":
		return fmt.Errorf("mesh_file is required")
	case camera.VFov <= 0 || camera.VFov >= 180:
		return fmt.Errorf("v_fov must be in (0, 180), got %g", camera.VFov)
	case camera.Eye == camera.Target:
		return fmt.Errorf("eye and target must differ")
	case camera.Perspective.Scale < 0:
		return fmt.Errorf("perspective scale must not be negative, got %g", camera.Perspective.Scale)
	}

	if _, err := geometry.ParseProjection(camera.Perspective.Kind); err != nil {
		return err
	}
	return nil
}

// MeshPath resolves MeshFile relative to the directory of the settings file
func (s *RenderSettings) MeshPath(settingsPath string) string {
	if filepath.IsAbs(s.MeshFile) {
		return s.MeshFile
	}
	return filepath.Join(filepath.Dir(settingsPath), s.MeshFile)
}

// MeshOptions converts the mesh import settings, turning rotation degrees
// into radians
func (s *RenderSettings) MeshOptions() *geometry.MeshOptions {
	options := &geometry.MeshOptions{CorrectNormals: s.CorrectNormals}
	if s.Rotation != nil {
		rotation := core.NewVec3(
			core.DegreesToRadians(s.Rotation.X),
			core.DegreesToRadians(s.Rotation.Y),
			core.DegreesToRadians(s.Rotation.Z),
		)
		options.Rotation = &rotation
	}
	return options
}

// Load reads and parses a settings file, returning its modification time
func Load(path string) (*RenderSettings, time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to stat config file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to read config file: %w", err)
	}

	settings, err := Parse(data)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return settings, info.ModTime(), nil
}

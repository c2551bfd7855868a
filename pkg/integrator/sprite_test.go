package integrator

import (
	"testing"

	"github.com/df07/go-sprite-raytracer/pkg/core"
	"github.com/df07/go-sprite-raytracer/pkg/material"
)

func TestSpriteIntegrator(t *testing.T) {
	albedo := core.NewVec3(0.2, 0.4, 0.6)

	tests := []struct {
		name     string
		mode     ShadingMode
		mat      material.Material
		ray      core.Ray
		expected core.Color
	}{
		{
			name:     "normal map front of sphere",
			mode:     ShadingNormal,
			mat:      material.NewLambertian(albedo),
			ray:      core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			expected: core.NewColor(0.5, 0.5, 1.0, 1),
		},
		{
			name:     "normal map side of sphere",
			mode:     ShadingNormal,
			mat:      material.NewLambertian(albedo),
			ray:      core.NewRay(core.NewVec3(2, 0, -1), core.NewVec3(-1, 0, 0)),
			expected: core.NewColor(1.0, 0.5, 0.5, 1),
		},
		{
			name:     "diffuse lambertian",
			mode:     ShadingDiffuse,
			mat:      material.NewLambertian(albedo),
			ray:      core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			expected: core.NewColor(0.2, 0.4, 0.6, 1),
		},
		{
			name:     "diffuse glass is white",
			mode:     ShadingDiffuse,
			mat:      material.NewDielectric(1.5),
			ray:      core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			expected: core.NewColor(1, 1, 1, 1),
		},
		{
			name:     "miss is transparent",
			mode:     ShadingNormal,
			mat:      material.NewLambertian(albedo),
			ray:      core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),
			expected: TransparentColor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := createTestScene(1)
			sc.AddSphere(core.NewVec3(0, 0, -1), 0.5, tt.mat)

			got := NewSpriteIntegrator(tt.mode).RayColor(tt.ray, sc, nil)
			if !colorsClose(got, tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSpriteIntegratorEmptyScene(t *testing.T) {
	sc := createTestScene(1)
	for _, mode := range []ShadingMode{ShadingDiffuse, ShadingNormal} {
		got := NewSpriteIntegrator(mode).RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), sc, nil)
		if got != TransparentColor {
			t.Errorf("%v: expected transparent miss, got %v", mode, got)
		}
	}
}

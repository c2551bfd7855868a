package integrator

import (
	"testing"

	"github.com/df07/go-sprite-raytracer/pkg/core"
	"github.com/df07/go-sprite-raytracer/pkg/material"
)

// TestPathTracingDepthTermination tests that ray depth is properly limited
func TestPathTracingDepthTermination(t *testing.T) {
	sc := createTestScene(0)
	sc.AddSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	sampler := core.NewSeededSampler(42)

	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), // hits sphere
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),  // sky
	}

	integrator := NewPathTracingIntegrator(sc.SamplingConfig)
	for _, ray := range rays {
		if got := integrator.RayColor(ray, sc, sampler); got != MissColor {
			t.Errorf("Expected miss color for depth 0, got %v", got)
		}
	}

	// One bounce: the sphere is hit but the scattered ray has no depth left
	integrator = NewPathTracingIntegrator(createTestScene(1).SamplingConfig)
	if got := integrator.RayColor(rays[0], sc, sampler); got != MissColor {
		t.Errorf("Expected miss color after exhausting depth, got %v", got)
	}
}

func TestPathTracingSetMaxDepth(t *testing.T) {
	sc := createTestScene(5)
	sampler := core.NewSeededSampler(1)
	skyRay := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	integrator := NewPathTracingIntegrator(sc.SamplingConfig)
	if got := integrator.RayColor(skyRay, sc, sampler); got == MissColor {
		t.Fatal("Expected sky color with depth 5")
	}

	var limited DepthLimited = integrator
	limited.SetMaxDepth(0)
	if integrator.MaxDepth != 0 {
		t.Errorf("Expected MaxDepth 0, got %d", integrator.MaxDepth)
	}
	if got := integrator.RayColor(skyRay, sc, sampler); got != MissColor {
		t.Errorf("Expected miss color after lowering depth to 0, got %v", got)
	}
}

func TestPathTracingSkyGradient(t *testing.T) {
	sc := createTestScene(5)
	integrator := NewPathTracingIntegrator(sc.SamplingConfig)
	sampler := core.NewSeededSampler(1)

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Color
	}{
		{"up", core.NewVec3(0, 2, 0), core.NewColor(0.5, 0.7, 1.0, 1)},
		{"down", core.NewVec3(0, -1, 0), core.NewColor(1, 1, 1, 1)},
		{"forward", core.NewVec3(0, 0, -1), core.NewColor(0.75, 0.85, 1.0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), tt.direction), sc, sampler)
			if !colorsClose(got, tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPathTracingMatchedGlassIsInvisible(t *testing.T) {
	sc := createTestScene(10)
	sc.AddSphere(core.NewVec3(0, 0, -1), 0.5, material.NewDielectric(1.0))
	integrator := NewPathTracingIntegrator(sc.SamplingConfig)
	sampler := core.NewSeededSampler(3)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	expected := sc.Background.Color(ray.Direction)

	for i := 0; i < 20; i++ {
		got := integrator.RayColor(ray, sc, sampler)
		if !colorsClose(got, expected, 1e-9) {
			t.Fatalf("Expected ray to pass straight through to %v, got %v", expected, got)
		}
	}
}

func TestPathTracingAbsorption(t *testing.T) {
	sc := createTestScene(10)
	sc.AddSphere(core.NewVec3(0, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 1.0))
	integrator := NewPathTracingIntegrator(sc.SamplingConfig)

	// Grazing hit near the top of the sphere; the fuzz vector (0,-0.9,0)
	// pushes the reflection below the surface
	sampler := fixedSampler{value3D: core.NewVec3(0.5, 0.05, 0.5)}
	ray := core.NewRay(core.NewVec3(0, 0.49, 0), core.NewVec3(0, 0, -1))

	if got := integrator.RayColor(ray, sc, sampler); got != MissColor {
		t.Errorf("Expected absorbed ray to return miss color, got %v", got)
	}
}

func TestPathTracingAttenuation(t *testing.T) {
	sc := createTestScene(5)
	// Perfect mirror facing the camera reflects the ray straight back at +Z
	sc.AddSphere(core.NewVec3(0, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.5, 0.25, 1.0), 0))
	integrator := NewPathTracingIntegrator(sc.SamplingConfig)
	sampler := core.NewSeededSampler(9)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := integrator.RayColor(ray, sc, sampler)

	sky := sc.Background.Color(core.NewVec3(0, 0, 1))
	expected := core.NewColor(0.5*sky.R, 0.25*sky.G, 1.0*sky.B, 1)
	if !colorsClose(got, expected, 1e-9) {
		t.Errorf("Expected albedo times sky %v, got %v", expected, got)
	}
}

package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-sprite-raytracer/pkg/core"
)

func TestTriangle_Hit(t *testing.T) {
	// Create a triangle in the XY plane
	v0 := core.NewVec3(0, 0, 0)
	v1 := core.NewVec3(1, 0, 0)
	v2 := core.NewVec3(0, 1, 0)
	triangle := NewTriangle(v0, v1, v2, testMaterial)

	tests := []struct {
		name           string
		ray            core.Ray
		tMin           float64
		tMax           float64
		shouldHit      bool
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "Ray hits triangle interior from behind the face normal",
			ray:            core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1)),
			tMin:           0.001,
			tMax:           10.0,
			shouldHit:      true,
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "Ray hits triangle edge",
			ray:            core.NewRay(core.NewVec3(0.5, 0, -1), core.NewVec3(0, 0, 1)),
			tMin:           0.001,
			tMax:           10.0,
			shouldHit:      true,
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:      "Ray misses triangle",
			ray:       core.NewRay(core.NewVec3(1, 1, -1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:      "Ray parallel to triangle",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 0), core.NewVec3(1, 0, 0)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
		{
			name:           "Ray hits along the face normal side",
			ray:            core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1)),
			tMin:           0.001,
			tMax:           10.0,
			shouldHit:      true,
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:      "Hit beyond tMax",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1)),
			tMin:      0.001,
			tMax:      0.5,
			shouldHit: false,
		},
		{
			name:      "Triangle behind ray origin",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, 1)),
			tMin:      0.001,
			tMax:      10.0,
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := triangle.Hit(tt.ray, tt.tMin, tt.tMax)

			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got hit=%v", tt.shouldHit, isHit)
			}
			if !tt.shouldHit {
				return
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-6 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}

			expectedPoint := tt.ray.At(hit.T)
			if expectedPoint.Subtract(hit.Point).Length() > 1e-6 {
				t.Errorf("Hit point mismatch: expected %v, got %v", expectedPoint, hit.Point)
			}
		})
	}
}

func TestTriangle_DerivedFields(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(3, 0, 0), core.NewVec3(0, 3, 0), testMaterial)

	if triangle.Edge1 != core.NewVec3(3, 0, 0) || triangle.Edge2 != core.NewVec3(0, 3, 0) {
		t.Errorf("Unexpected edges %v %v", triangle.Edge1, triangle.Edge2)
	}
	if triangle.Normal != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected unit normal (0,0,1), got %v", triangle.Normal)
	}
	if triangle.Centroid != core.NewVec3(1, 1, 0) {
		t.Errorf("Expected centroid (1,1,0), got %v", triangle.Centroid)
	}
}

func TestTriangle_BarycentricBounds(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	randomVec := func() core.Vec3 {
		return core.NewVec3(random.Float64()*4-2, random.Float64()*4-2, random.Float64()*4-2)
	}

	const epsilon = 1e-9
	hits := 0
	for i := 0; i < 5000; i++ {
		triangle := NewTriangle(randomVec(), randomVec(), randomVec(), testMaterial)
		ray := core.NewRay(randomVec().Multiply(2), randomVec())

		u, v, tParam, ok := triangle.Barycentric(ray)
		if !ok {
			continue
		}
		hits++
		if u < -epsilon || v < -epsilon || u+v > 1+epsilon {
			t.Fatalf("Barycentric coordinates out of range: u=%g v=%g", u, v)
		}

		// The barycentric point and the ray point must coincide
		onTriangle := triangle.V0.Add(triangle.Edge1.Multiply(u)).Add(triangle.Edge2.Multiply(v))
		if onTriangle.Subtract(ray.At(tParam)).Length() > 1e-6 {
			t.Fatalf("Barycentric point %v differs from ray point %v", onTriangle, ray.At(tParam))
		}

		if hit, ok := triangle.Hit(ray, 0.001, math.MaxFloat64); ok {
			if hit.Normal.Dot(ray.Direction) >= 0 {
				t.Fatalf("Normal %v does not oppose ray %v", hit.Normal, ray.Direction)
			}
		}
	}

	if hits == 0 {
		t.Fatal("Expected some hits in random trials")
	}
}

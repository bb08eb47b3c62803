package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/gotetra/pkg/geometry"
)

func TestViewRotateClampsPitch(t *testing.T) {
	v := NewView()
	v.Rotate(0, 3)
	if v.Pitch != MaxPitch {
		t.Errorf("expected pitch clamped to %v, got %v", MaxPitch, v.Pitch)
	}
	v.Rotate(0, -10)
	if v.Pitch != -MaxPitch {
		t.Errorf("expected pitch clamped to %v, got %v", -MaxPitch, v.Pitch)
	}
}

func TestViewWrapsHeading(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, -math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{math.NaN(), 0},
	}

	for _, tc := range tests {
		v := NewView()
		v.Set(tc.in, 0)
		if v.Heading < -math.Pi || v.Heading > math.Pi {
			t.Errorf("Set(%v): heading %v outside [-π, π]", tc.in, v.Heading)
		}
		if math.Abs(math.Remainder(v.Heading-tc.want, 2*math.Pi)) > 1e-9 {
			t.Errorf("Set(%v): heading = %v, want %v", tc.in, v.Heading, tc.want)
		}
	}
}

func TestViewDegrees(t *testing.T) {
	v := NewView()
	v.SetDegrees(90, -45)

	h, p := v.Degrees()
	if math.Abs(h-90) > 1e-9 || math.Abs(p+45) > 1e-9 {
		t.Errorf("Degrees() = %v, %v; want 90, -45", h, p)
	}
	if v.Matrix() != geometry.ViewRotation(math.Pi/2, -math.Pi/4) {
		t.Error("Matrix() should match ViewRotation of the stored angles")
	}

	v.Reset()
	if v.Heading != 0 || v.Pitch != 0 {
		t.Errorf("Reset left %v, %v", v.Heading, v.Pitch)
	}
}

package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func vecClose(a Vector3, b mgl64.Vec3) bool {
	return math.Abs(a.X-b[0]) < 1e-9 && math.Abs(a.Y-b[1]) < 1e-9 && math.Abs(a.Z-b[2]) < 1e-9
}

func TestViewRotationIdentity(t *testing.T) {
	m := ViewRotation(0, 0)
	if m != Identity3() {
		t.Errorf("ViewRotation(0, 0) failed: expected identity, got %v", m)
	}

	v := NewVector3(100, -100, 100)
	if got := m.Transform(v); got != v {
		t.Errorf("identity transform failed: expected %v, got %v", v, got)
	}
}

func TestMatrix3MulIsMatrixProduct(t *testing.T) {
	a := Matrix3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := Matrix3{9, 8, 7, 6, 5, 4, 3, 2, 1}

	expected := Matrix3{
		30, 24, 18,
		84, 69, 54,
		138, 114, 90,
	}
	if got := a.Mul(b); got != expected {
		t.Errorf("Mul failed: expected %v, got %v", expected, got)
	}

	// Composition must not degrade into elementwise addition
	var sum Matrix3
	for i := range a {
		sum[i] = a[i] + b[i]
	}
	if a.Mul(b) == sum {
		t.Error("Mul returned the elementwise sum")
	}
}

func TestMatrix3MulAgainstMathgl(t *testing.T) {
	a := ViewRotation(0.3, -0.7)
	b := Matrix3{2, 0, 1, -1, 3, 0.5, 0, 4, 1}

	// A row-major array read as column-major is the transpose, and (AB)ᵀ = BᵀAᵀ
	expected := mgl64.Mat3(b).Mul3(mgl64.Mat3(a))
	got := mgl64.Mat3(a.Mul(b))
	if !got.ApproxEqualThreshold(expected, 1e-12) {
		t.Errorf("Mul failed: expected %v, got %v", expected, got)
	}
}

func TestAxisRotationsAgainstMathgl(t *testing.T) {
	v := NewVector3(100, -50, 25)
	mv := mgl64.Vec3{v.X, v.Y, v.Z}

	angles := []float64{-math.Pi, -math.Pi / 2, -0.4, 0, 0.25, math.Pi / 3, math.Pi}
	for _, angle := range angles {
		if got, want := HeadingMatrix(angle).Transform(v), mgl64.Rotate3DY(angle).Mul3x1(mv); !vecClose(got, want) {
			t.Errorf("heading %v: expected %v, got %v", angle, want, got)
		}
		if got, want := PitchMatrix(angle).Transform(v), mgl64.Rotate3DX(angle).Mul3x1(mv); !vecClose(got, want) {
			t.Errorf("pitch %v: expected %v, got %v", angle, want, got)
		}
	}
}

func TestViewRotationAppliesHeadingThenPitch(t *testing.T) {
	v := NewVector3(100, 100, -100)
	mv := mgl64.Vec3{v.X, v.Y, v.Z}

	cases := [][2]float64{{0.5, 0.2}, {-2.0, 1.2}, {math.Pi, -math.Pi / 2}}
	for _, c := range cases {
		heading, pitch := c[0], c[1]
		want := mgl64.Rotate3DX(pitch).Mul3(mgl64.Rotate3DY(heading)).Mul3x1(mv)
		got := ViewRotation(heading, pitch).Transform(v)
		if !vecClose(got, want) {
			t.Errorf("ViewRotation(%v, %v): expected %v, got %v", heading, pitch, want, got)
		}

		stepwise := PitchMatrix(pitch).Transform(HeadingMatrix(heading).Transform(v))
		if !vecClose(got, mgl64.Vec3{stepwise.X, stepwise.Y, stepwise.Z}) {
			t.Errorf("ViewRotation(%v, %v) differs from stepwise rotation: %v vs %v", heading, pitch, got, stepwise)
		}
	}
}

func TestRotationPreservesLength(t *testing.T) {
	v := NewVector3(100, -100, 100)
	m := ViewRotation(1.1, -0.6)
	if math.Abs(m.Transform(v).Length()-v.Length()) > 1e-9 {
		t.Errorf("rotation changed vector length: %v -> %v", v.Length(), m.Transform(v).Length())
	}
}

package viewer

import (
	"math"

	"github.com/philipparndt/gotetra/pkg/geometry"
)

// MaxPitch limits the pitch to straight up or straight down
const MaxPitch = math.Pi / 2

// View holds the interactive heading and pitch, in radians. Heading wraps
// around [-π, π]; pitch is clamped to [-π/2, π/2].
type View struct {
	Heading float64
	Pitch   float64
}

// NewView creates a view looking straight at the scene
func NewView() *View {
	return &View{}
}

// Rotate adds the given deltas
func (v *View) Rotate(deltaHeading, deltaPitch float64) {
	v.Set(v.Heading+deltaHeading, v.Pitch+deltaPitch)
}

// Set replaces both angles, wrapping heading and clamping pitch
func (v *View) Set(heading, pitch float64) {
	v.Heading = wrapAngle(heading)
	if math.IsNaN(pitch) {
		pitch = 0
	}
	v.Pitch = math.Max(-MaxPitch, math.Min(MaxPitch, pitch))
}

// SetDegrees is Set with angles in degrees
func (v *View) SetDegrees(heading, pitch float64) {
	v.Set(heading*math.Pi/180, pitch*math.Pi/180)
}

// Degrees returns heading and pitch in degrees
func (v *View) Degrees() (heading, pitch float64) {
	return v.Heading * 180 / math.Pi, v.Pitch * 180 / math.Pi
}

// Reset returns to the initial straight-on view
func (v *View) Reset() {
	v.Heading = 0
	v.Pitch = 0
}

// Matrix returns the composed heading-then-pitch rotation
func (v *View) Matrix() geometry.Matrix3 {
	return geometry.ViewRotation(v.Heading, v.Pitch)
}

func wrapAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	if a >= -math.Pi && a <= math.Pi {
		return a
	}
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

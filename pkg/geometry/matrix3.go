package geometry

import "math"

// Matrix3 is a 3x3 matrix with its coefficients stored row-major:
//
//	[0 1 2
//	 3 4 5
//	 6 7 8]
//
// Vectors are treated as row vectors, so Transform computes v·M and a
// product A.Mul(B) applies A first, then B.
type Matrix3 [9]float64

// Identity3 returns the 3x3 identity matrix
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// HeadingMatrix rotates in the X-Z plane (about the vertical axis), leaving Y unchanged.
func HeadingMatrix(theta float64) Matrix3 {
	sin, cos := math.Sincos(theta)
	return Matrix3{
		cos, 0, -sin,
		0, 1, 0,
		sin, 0, cos,
	}
}

// PitchMatrix rotates in the Y-Z plane (about the horizontal axis), leaving X unchanged.
func PitchMatrix(theta float64) Matrix3 {
	sin, cos := math.Sincos(theta)
	return Matrix3{
		1, 0, 0,
		0, cos, sin,
		0, -sin, cos,
	}
}

// ViewRotation composes heading then pitch into one matrix (heading × pitch).
// Roll is not exposed; it can be reached by combining the other two.
func ViewRotation(heading, pitch float64) Matrix3 {
	return HeadingMatrix(heading).Mul(PitchMatrix(pitch))
}

// Mul returns the matrix product m × other (row of m dotted with column of other).
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var result Matrix3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum float64
			for i := 0; i < 3; i++ {
				sum += m[row*3+i] * other[i*3+col]
			}
			result[row*3+col] = sum
		}
	}
	return result
}

// Transform applies the matrix to a row vector, returning v·M.
func (m Matrix3) Transform(v Vector3) Vector3 {
	return Vector3{
		X: v.X*m[0] + v.Y*m[3] + v.Z*m[6],
		Y: v.X*m[1] + v.Y*m[4] + v.Z*m[7],
		Z: v.X*m[2] + v.Y*m[5] + v.Z*m[8],
	}
}

// At returns the coefficient at the given row and column
func (m Matrix3) At(row, col int) float64 {
	return m[row*3+col]
}

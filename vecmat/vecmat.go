// Package vecmat provides the fixed-size vectors and matrices used by the
// colorimetric conversion packages. Everything is a value type: operations
// return new values and never mutate their receivers.
package vecmat

import (
	"fmt"
	"math"
)

// Vec3 is a 3-component column vector of IEEE double-precision values.
type Vec3 [3]float64

// Mat3 is a 3x3 matrix in row-major order.
type Mat3 [3][3]float64

// Identity is the 3x3 identity matrix.
var Identity = Mat3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// Add returns v + o component-wise.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o component-wise.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Scale returns v with every component multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Map applies f to each component and returns the result.
func (v Vec3) Map(f func(float64) float64) Vec3 {
	return Vec3{f(v[0]), f(v[1]), f(v[2])}
}

// MulVec returns the matrix-vector product m * v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Mul returns the matrix product m * o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += m[i][k] * o[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Transpose returns the transpose of m.
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// Diagonal returns the matrix with v on the main diagonal and zeros elsewhere.
func Diagonal(v Vec3) Mat3 {
	return Mat3{
		{v[0], 0, 0},
		{0, v[1], 0},
		{0, 0, v[2]},
	}
}

// Determinant returns the determinant of m.
func (m Mat3) Determinant() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverse of m by cofactor expansion. A matrix whose
// determinant is negligible relative to its largest entry is reported as
// singular.
func (m Mat3) Inverse() (Mat3, error) {
	det := m.Determinant()
	scale := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			scale = math.Max(scale, math.Abs(m[i][j]))
		}
	}
	if math.Abs(det) <= 1e-12*scale*scale*scale {
		return Mat3{}, fmt.Errorf("vecmat: matrix is singular (determinant %g)", det)
	}
	inv := Mat3{
		{m[1][1]*m[2][2] - m[1][2]*m[2][1], m[0][2]*m[2][1] - m[0][1]*m[2][2], m[0][1]*m[1][2] - m[0][2]*m[1][1]},
		{m[1][2]*m[2][0] - m[1][0]*m[2][2], m[0][0]*m[2][2] - m[0][2]*m[2][0], m[0][2]*m[1][0] - m[0][0]*m[1][2]},
		{m[1][0]*m[2][1] - m[1][1]*m[2][0], m[0][1]*m[2][0] - m[0][0]*m[2][1], m[0][0]*m[1][1] - m[0][1]*m[1][0]},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inv[i][j] /= det
		}
	}
	return inv, nil
}

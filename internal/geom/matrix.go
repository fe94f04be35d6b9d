package geom

import "math"

// Matrix represents a 2D affine transformation as a 2x3 matrix in
// row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// which maps a point through:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(dx, dy float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: dx,
		D: 0, E: 1, F: dy,
	}
}

// Scale creates a uniform scaling matrix.
func Scale(k float64) Matrix {
	return Matrix{
		A: k, B: 0, C: 0,
		D: 0, E: k, F: 0,
	}
}

// Rotate creates a rotation matrix for an angle in degrees. With y
// growing down, a positive angle rotates clockwise on screen.
func Rotate(degrees float64) Matrix {
	rad := degrees * math.Pi / 180
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// RotationAbout creates a rotation of the given angle in degrees
// pivoted at c, composed as translate(c) → rotate → translate(-c).
func RotationAbout(c Point, degrees float64) Matrix {
	return Translate(c.X, c.Y).Multiply(Rotate(degrees)).Multiply(Translate(-c.X, -c.Y))
}

// ScalingAbout creates a uniform scaling by factor k pivoted at c,
// composed as translate(c) → scale → translate(-c).
func ScalingAbout(c Point, k float64) Matrix {
	return Translate(c.X, c.Y).Multiply(Scale(k)).Multiply(Translate(-c.X, -c.Y))
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// scaleFactor reports the length a unit vector maps to. For the
// similarity transforms used here (translate, rotate, uniform scale)
// this is the uniform scale component.
func (m Matrix) scaleFactor() float64 {
	return math.Hypot(m.A, m.D)
}

/*****************************************************************************************************************/

//	@package	github.com/lumenforge/astromatch
//	@license	Copyright © 2021-2025 observerly, adapted 2026

/*****************************************************************************************************************/

package geometry

/*****************************************************************************************************************/

import (
	"errors"
	"math"
)

/*****************************************************************************************************************/

func DistanceBetweenTwoCartesianPoints(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

/*****************************************************************************************************************/

func AngleBetweenThreeCartesianPoints(x1, y1, x2, y2, x3, y3 float64) (float64, error) {
	a := DistanceBetweenTwoCartesianPoints(x2, y2, x3, y3) // Side opposite to point A (x1, y1)
	b := DistanceBetweenTwoCartesianPoints(x1, y1, x3, y3) // Side opposite to point B (x2, y2)
	c := DistanceBetweenTwoCartesianPoints(x1, y1, x2, y2) // Side opposite to point C (x3, y3)

	// Check for degenerate triangle (i.e. coincident points):
	if a == 0 || b == 0 || c == 0 {
		return 0, errors.New("degenerate triangle with zero-length sides")
	}

	// From the Law of Cosines, we can calculate the numerator of the arc-cosine:
	n := (math.Pow(b, 2) + math.Pow(c, 2) - math.Pow(a, 2))

	// From the Law of Cosines, we can calculate the denominator of the arc-cosine:
	d := 2 * b * c

	if d == 0 {
		return 0, errors.New("division by zero")
	}

	// Calculate the angle between the three points:
	return math.Acos(clip(n/d, -1, 1)) * 180 / math.Pi, nil
}

/*****************************************************************************************************************/

// clip constrains v to [lo, hi], absorbing the floating-point noise that would otherwise push
// an arccos argument a hair outside its domain.
func clip(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

/*****************************************************************************************************************/

// Pad appends a column of ones to a slice of 2D points, lifting them into homogeneous
// coordinates for affine matrix multiplication.
func Pad(xy [][2]float64) [][3]float64 {
	padded := make([][3]float64, len(xy))
	for i, p := range xy {
		padded[i] = [3]float64{p[0], p[1], 1}
	}
	return padded
}

/*****************************************************************************************************************/

// Apply left-multiplies every homogeneous point in xy by the 3x3 affine matrix m and returns the
// resulting (x, y) pairs, dropping the homogeneous row.
func Apply(m [3][3]float64, xy [][2]float64) [][2]float64 {
	out := make([][2]float64, len(xy))
	for i, p := range xy {
		x, y := p[0], p[1]
		out[i] = [2]float64{
			m[0][0]*x + m[0][1]*y + m[0][2],
			m[1][0]*x + m[1][1]*y + m[1][2],
		}
	}
	return out
}

/*****************************************************************************************************************/

// ApplyOne applies the affine matrix to a single point; a convenience wrapper around Apply.
func ApplyOne(m [3][3]float64, p [2]float64) [2]float64 {
	return Apply(m, [][2]float64{p})[0]
}

/*****************************************************************************************************************/

// Identity3 returns the 3x3 identity matrix.
func Identity3() [3][3]float64 {
	return [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

/*****************************************************************************************************************/

// Multiply3 computes the 3x3 matrix product a*b.
func Multiply3(a, b [3][3]float64) [3][3]float64 {
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

/*****************************************************************************************************************/

// TransformMatrix composes T·S·R, in that order: rotate about the origin by rotation radians,
// scale uniformly, then translate. This mirrors the Lang2009/twirl convention and is the basis
// both for building round-trip test fixtures and for the closed-form similarity estimate in
// pkg/transform.
func TransformMatrix(scale, rotation float64, translation [2]float64) [3][3]float64 {
	cos, sin := math.Cos(rotation), math.Sin(rotation)

	r := [3][3]float64{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}

	s := [3][3]float64{
		{scale, 0, 0},
		{0, scale, 0},
		{0, 0, 1},
	}

	t := [3][3]float64{
		{1, 0, translation[0]},
		{0, 1, translation[1]},
		{0, 0, 1},
	}

	return Multiply3(t, Multiply3(s, r))
}

/*****************************************************************************************************************/

// Rotate rigidly rotates point about pivot by angle radians.
func Rotate(point, pivot [2]float64, angle float64) [2]float64 {
	co, si := math.Cos(angle), math.Sin(angle)
	dx, dy := point[0]-pivot[0], point[1]-pivot[1]
	return [2]float64{
		pivot[0] + co*dx - si*dy,
		pivot[1] + si*dx + co*dy,
	}
}

/*****************************************************************************************************************/

// ProjectOntoAxis returns the signed scalar projection of p-origin onto the unit vector running
// from origin to axis. Used to resolve a quad's C and D points into the Lang2009 u1/u2 frame.
func ProjectOntoAxis(p, origin, axis [2]float64) float64 {
	nx, ny := axis[0]-origin[0], axis[1]-origin[1]
	norm := math.Hypot(nx, ny)
	if norm == 0 {
		return math.NaN()
	}
	nx, ny = nx/norm, ny/norm
	return (p[0]-origin[0])*nx + (p[1]-origin[1])*ny
}

/*****************************************************************************************************************/

// U1U2 returns the two axis endpoints of the Lang2009 frame: b rotated about a by -π/4 and +π/4
// respectively.
func U1U2(a, b [2]float64) (u1, u2 [2]float64) {
	return Rotate(b, a, -math.Pi/4), Rotate(b, a, math.Pi/4)
}

/*****************************************************************************************************************/

// TriangleAngles computes the three interior angles (in radians) of the triangle t, ordered to
// match t's vertex order: angle at t[0], angle at t[1], angle at t[2].
func TriangleAngles(t [3][2]float64) ([3]float64, error) {
	a := DistanceBetweenTwoCartesianPoints(t[1][0], t[1][1], t[2][0], t[2][1]) // opposite t[0]
	b := DistanceBetweenTwoCartesianPoints(t[0][0], t[0][1], t[2][0], t[2][1]) // opposite t[1]
	c := DistanceBetweenTwoCartesianPoints(t[0][0], t[0][1], t[1][0], t[1][1]) // opposite t[2]

	if a == 0 || b == 0 || c == 0 {
		return [3]float64{}, errors.New("degenerate triangle with zero-length sides")
	}

	angleA := math.Acos(clip((b*b+c*c-a*a)/(2*b*c), -1, 1))
	angleB := math.Acos(clip((c*c+a*a-b*b)/(2*c*a), -1, 1))
	angleC := math.Acos(clip((a*a+b*b-c*c)/(2*a*b), -1, 1))

	return [3]float64{angleA, angleB, angleC}, nil
}

/*****************************************************************************************************************/

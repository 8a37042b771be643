/*****************************************************************************************************************/

//	@package	github.com/lumenforge/astromatch
//	@license	Copyright © 2021-2025 observerly, adapted 2026

/*****************************************************************************************************************/

package transform

/*****************************************************************************************************************/

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

/*****************************************************************************************************************/

func clip(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

/*****************************************************************************************************************/

// EstimateSimilarity computes the closed-form rotation + uniform scale + translation mapping
// the bound pair v1 = (v1[0], v1[1]) onto v2 = (v2[0], v2[1]). This is the fast path used to
// evaluate a single candidate asterism pair before committing to the more expensive
// least-squares refit in EstimateAffine.
func EstimateSimilarity(v1, v2 [2][2]float64) ([3][3]float64, error) {
	u1x, u1y := v1[1][0]-v1[0][0], v1[1][1]-v1[0][1]
	u2x, u2y := v2[1][0]-v2[0][0], v2[1][1]-v2[0][1]

	n1 := math.Hypot(u1x, u1y)
	n2 := math.Hypot(u2x, u2y)

	if n1 == 0 || n2 == 0 {
		return [3][3]float64{}, errors.New("degenerate asterism pair: coincident bound points")
	}

	scale := n2 / n1

	u1x, u1y = u1x/n1, u1y/n1
	u2x, u2y = u2x/n2, u2y/n2

	cosTheta := clip(u1x*u2x+u1y*u2y, -1, 1)
	theta := math.Acos(cosTheta)

	// The sign of the rotation is recovered from the z-component of the 2D cross product of the
	// two unit vectors, since arccos alone can't distinguish a clockwise turn from a counter-
	// clockwise one.
	if cross := u1x*u2y - u1y*u2x; cross < 0 {
		theta = -theta
	}

	cos, sin := math.Cos(theta), math.Sin(theta)

	sr00, sr01 := scale*cos, scale*-sin
	sr10, sr11 := scale*sin, scale*cos

	tx := v2[0][0] - (sr00*v1[0][0] + sr01*v1[0][1])
	ty := v2[0][1] - (sr10*v1[0][0] + sr11*v1[0][1])

	return [3][3]float64{
		{sr00, sr01, tx},
		{sr10, sr11, ty},
		{0, 0, 1},
	}, nil
}

/*****************************************************************************************************************/

// EstimateAffine fits the best-fit affine matrix M (3x3, bottom row (0, 0, 1)) mapping src points
// onto dst points by least squares, given many corresponding inlier pairs. Solved over
// gonum.org/v1/gonum/mat's QR factorization: the general n-point overdetermined solve this needs
// is exactly what it's for, unlike EstimateSimilarity's fixed 2x2 closed form above.
func EstimateAffine(src, dst [][2]float64) ([3][3]float64, error) {
	n := len(src)

	if n < 3 {
		return [3][3]float64{}, errors.New("least-squares affine fit requires at least 3 point pairs")
	}

	if len(dst) != n {
		return [3][3]float64{}, errors.New("src and dst must have the same length")
	}

	x := mat.NewDense(n, 3, nil)
	yx := mat.NewDense(n, 1, nil)
	yy := mat.NewDense(n, 1, nil)

	for i := 0; i < n; i++ {
		x.Set(i, 0, src[i][0])
		x.Set(i, 1, src[i][1])
		x.Set(i, 2, 1)
		yx.Set(i, 0, dst[i][0])
		yy.Set(i, 0, dst[i][1])
	}

	var qr mat.QR
	qr.Factorize(x)

	var solX, solY mat.Dense

	if err := qr.SolveTo(&solX, false, yx); err != nil {
		return [3][3]float64{}, fmt.Errorf("least-squares affine fit: %w", err)
	}

	if err := qr.SolveTo(&solY, false, yy); err != nil {
		return [3][3]float64{}, fmt.Errorf("least-squares affine fit: %w", err)
	}

	return [3][3]float64{
		{solX.At(0, 0), solX.At(1, 0), solX.At(2, 0)},
		{solY.At(0, 0), solY.At(1, 0), solY.At(2, 0)},
		{0, 0, 1},
	}, nil
}

/*****************************************************************************************************************/

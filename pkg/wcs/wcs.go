/*****************************************************************************************************************/

//	@package	github.com/lumenforge/astromatch
//	@license	Copyright © 2021-2025 observerly, adapted 2026

/*****************************************************************************************************************/

// Package wcs models a linear tangent-plane World Coordinate System: the FITS-standard way of
// recording how pixel coordinates map onto sky coordinates. compute_wcs (pkg/matcher) fits one
// of these from a set of pixel <-> catalog correspondences; PixelToEquatorialCoordinate is its
// inverse, letting a caller turn any pixel in the frame into a sky position once solved.
package wcs

/*****************************************************************************************************************/

import (
	"errors"

	"github.com/lumenforge/astromatch/pkg/astrometry"
	"github.com/lumenforge/astromatch/pkg/projection"
	"github.com/lumenforge/astromatch/pkg/transform"
)

/*****************************************************************************************************************/

type WCS struct {
	CRPIX1 float64 // reference pixel X
	CRPIX2 float64 // reference pixel Y
	CRVAL1 float64 // reference RA, degrees
	CRVAL2 float64 // reference Dec, degrees
	CD1_1  float64 // linear transform element, degrees/pixel
	CD1_2  float64
	CD2_1  float64
	CD2_2  float64
}

/*****************************************************************************************************************/

func NewWorldCoordinateSystem(wcs WCS) WCS {
	return wcs
}

/*****************************************************************************************************************/

// PixelToEquatorialCoordinate maps a pixel position onto RA/Dec by the linear CD-matrix model:
// valid near CRPIX where the tangent plane is well approximated by its own offsets in RA/Dec.
func (wcs *WCS) PixelToEquatorialCoordinate(
	x, y float64,
) (coordinate astrometry.ICRSEquatorialCoordinate) {
	return astrometry.ICRSEquatorialCoordinate{
		RA:  wcs.CRVAL1 + wcs.CD1_1*(x-wcs.CRPIX1) + wcs.CD1_2*(y-wcs.CRPIX2),
		Dec: wcs.CRVAL2 + wcs.CD2_1*(x-wcs.CRPIX1) + wcs.CD2_2*(y-wcs.CRPIX2),
	}
}

/*****************************************************************************************************************/

// FitWCS fits a linear WCS from a set of matched pixel <-> catalog correspondences: the final
// step of compute_wcs once find_transform and the inlier refit have settled on which catalog
// source backs which pixel-space point. The tangent point is the centroid of the matched
// catalog positions; each catalog RA/Dec is projected onto the plane tangent there via
// projection.ConvertEquatorialToGnomic, and a least-squares affine fit
// (pkg/transform.EstimateAffine) maps pixel coordinates onto that tangent plane. Requires at
// least 3 correspondences, the same floor EstimateAffine itself enforces.
func FitWCS(pixels [][2]float64, sources []astrometry.ICRSEquatorialCoordinate) (WCS, error) {
	if len(pixels) != len(sources) {
		return WCS{}, errors.New("fit wcs: pixels and sources must have the same length")
	}

	if len(pixels) < 3 {
		return WCS{}, errors.New("fit wcs: requires at least 3 correspondences")
	}

	var ra0, dec0 float64
	for _, s := range sources {
		ra0 += s.RA
		dec0 += s.Dec
	}
	n := float64(len(sources))
	ra0 /= n
	dec0 /= n

	tangent := make([][2]float64, len(sources))
	for i, s := range sources {
		x, y := projection.ConvertEquatorialToGnomic(s.RA, s.Dec, ra0, dec0)
		tangent[i] = [2]float64{x, y}
	}

	var px0, py0 float64
	for _, p := range pixels {
		px0 += p[0]
		py0 += p[1]
	}
	px0 /= n
	py0 /= n

	// Center the pixel coordinates on CRPIX before fitting, so the recovered CD matrix slots
	// directly into the CD1_1*(x-CRPIX1) + CD1_2*(y-CRPIX2) model PixelToEquatorialCoordinate
	// uses: the fitted intercept then only absorbs the centroid's own small offset from the
	// tangent point, rather than conflating it with the CD terms.
	centered := make([][2]float64, len(pixels))
	for i, p := range pixels {
		centered[i] = [2]float64{p[0] - px0, p[1] - py0}
	}

	fit, err := transform.EstimateAffine(centered, tangent)
	if err != nil {
		return WCS{}, err
	}

	return WCS{
		CRPIX1: px0,
		CRPIX2: py0,
		CRVAL1: ra0,
		CRVAL2: dec0,
		CD1_1:  fit[0][0],
		CD1_2:  fit[0][1],
		CD2_1:  fit[1][0],
		CD2_2:  fit[1][1],
	}, nil
}

/*****************************************************************************************************************/

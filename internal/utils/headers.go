/*****************************************************************************************************************/

//	@package	github.com/lumenforge/astromatch
//	@license	Copyright © 2021-2025 observerly, adapted 2026

/*****************************************************************************************************************/

package utils

/*****************************************************************************************************************/

import (
	"fmt"
	"math"

	"github.com/observerly/iris/pkg/fits"
)

/*****************************************************************************************************************/

func ResolveOrExtractRAFromHeaders(value float32, header fits.FITSHeader) (float32, error) {
	// First, pick a candidate RA (v):
	v := value

	// If the candidate RA (v) is NaN, try to get it from the header:
	if math.IsNaN(float64(v)) {
		ra, exists := header.Floats["RA"]
		if !exists {
			return float32(math.NaN()), fmt.Errorf("ra header not found in the supplied FITS file")
		}
		v = ra.Value
	}

	// Validate the candidate RA (v) is a valid float32:
	if math.IsNaN(float64(v)) {
		return float32(math.NaN()), fmt.Errorf("ra value needs to be a valid float32")
	}

	// Validate the candidate RA (v) is within the range [0, 360]:
	if v < 0 || v > 360 {
		return float32(math.NaN()), fmt.Errorf("ra value is out of range: %f", v)
	}

	// Return the candidate RA (v):
	return v, nil
}

/*****************************************************************************************************************/

func ResolveOrExtractDecFromHeaders(value float32, header fits.FITSHeader) (float32, error) {
	// First, pick a candidate Dec (v):
	v := value

	// If the candidate Dec (v) is NaN, try to get it from the header:
	if math.IsNaN(float64(v)) {
		dec, exists := header.Floats["DEC"]
		if !exists {
			return float32(math.NaN()), fmt.Errorf("dec header not found in the supplied FITS file")
		}
		v = dec.Value
	}

	// Validate the candidate Dec (v) is a valid float32:
	if math.IsNaN(float64(v)) {
		return float32(math.NaN()), fmt.Errorf("dec value needs to be a valid float32")
	}

	// Validate the candidate Dec (v) is within the range [-90, 90]:
	if v < -90 || v > 90 {
		return float32(math.NaN()), fmt.Errorf("dec value is out of range: %f", v)
	}

	// Return the candidate Dec (v):
	return v, nil
}

/*****************************************************************************************************************/

// ExtractImageWidthFromHeaders returns the image width (in pixels) from the FITS header's
// NAXIS1 keyword, the x-axis dimension of the exposure.
func ExtractImageWidthFromHeaders(header fits.FITSHeader) (int, error) {
	if header.Naxis1 <= 0 {
		return 0, fmt.Errorf("naxis1 (width) header is missing or non-positive: %d", header.Naxis1)
	}

	return header.Naxis1, nil
}

/*****************************************************************************************************************/

// ExtractImageHeightFromHeaders returns the image height (in pixels) from the FITS header's
// NAXIS2 keyword, the y-axis dimension of the exposure.
func ExtractImageHeightFromHeaders(header fits.FITSHeader) (int, error) {
	if header.Naxis2 <= 0 {
		return 0, fmt.Errorf("naxis2 (height) header is missing or non-positive: %d", header.Naxis2)
	}

	return header.Naxis2, nil
}

/*****************************************************************************************************************/

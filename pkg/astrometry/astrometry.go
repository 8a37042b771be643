/*****************************************************************************************************************/

//	@package	github.com/lumenforge/astromatch
//	@license	Copyright © 2021-2025 observerly, adapted 2026

/*****************************************************************************************************************/

package astrometry

/*****************************************************************************************************************/

// ICRSEquatorialCoordinate is a right ascension / declination pair, in degrees, on the
// International Celestial Reference System.
type ICRSEquatorialCoordinate struct {
	RA  float64
	Dec float64
}

/*****************************************************************************************************************/

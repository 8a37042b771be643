/*****************************************************************************************************************/

//	@package	github.com/lumenforge/astromatch
//	@license	Copyright © 2021-2025 observerly, adapted 2026

/*****************************************************************************************************************/

// Package catalog describes the shape of a reference source a caller supplies to compute_wcs.
// It carries no client for any remote archive: fetching a source list is the caller's
// responsibility, per the catalog-queries non-goal.
package catalog

/*****************************************************************************************************************/

// Source is one reference point a caller has already resolved from wherever they keep their
// star catalog: pixel-space candidates are correlated against Source.RA/Source.Dec by
// pkg/matcher's compute_wcs.
type Source struct {
	UID                       string  `json:"uid"`
	Designation               string  `json:"designation"`
	RA                        float64 `json:"ra"`        // degrees
	Dec                       float64 `json:"dec"`       // degrees
	ProperMotionRA            float64 `json:"pmra"`      // mas/yr
	ProperMotionDec           float64 `json:"pmdec"`     // mas/yr
	Parallax                  float64 `json:"parallax"`  // mas
	PhotometricGMeanFlux      float64 `json:"flux"`       // e-/s
	PhotometricGMeanMagnitude float64 `json:"magnitude"`  // mag
}

/*****************************************************************************************************************/

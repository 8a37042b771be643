/*****************************************************************************************************************/

//	@package	github.com/lumenforge/astromatch
//	@license	Copyright © 2021-2025 observerly, adapted 2026

/*****************************************************************************************************************/

package matcher

/*****************************************************************************************************************/

import "errors"

/*****************************************************************************************************************/

// ErrBadInput signals invalid input shape: fewer points than the chosen asterism size, or a
// point set with zero length.
var ErrBadInput = errors.New("matcher: bad input")

/*****************************************************************************************************************/

// ErrSingular signals a singular least-squares system during refinement: pathological inlier
// geometry (e.g. all inliers collinear) that the affine fit can't invert.
var ErrSingular = errors.New("matcher: singular system")

/*****************************************************************************************************************/

// ErrNoMatch is not a failure: it reports that no candidate pair survived scoring, a normal,
// recoverable outcome a caller may retry with looser tolerances.
var ErrNoMatch = errors.New("matcher: no match")

/*****************************************************************************************************************/

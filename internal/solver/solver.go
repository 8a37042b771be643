/*****************************************************************************************************************/

//	@package	github.com/lumenforge/astromatch
//	@license	Copyright © 2021-2025 observerly, adapted 2026

/*****************************************************************************************************************/

// Package solver wires the FITS-loading, star-extraction and catalog-reading concerns a real
// plate-solving client carries around pkg/matcher's pure point-set registration core. None of
// this package's logic participates in the matching math: it resolves an image's approximate
// geometry from its FITS headers, extracts bright-pixel centroids with iris/pkg/photometry, reads
// a caller-supplied catalog source list from disk, and hands both point sets to
// pkg/matcher.ComputeWCS.
package solver

/*****************************************************************************************************************/

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/observerly/iris/pkg/fits"
	"github.com/observerly/iris/pkg/photometry"
	stats "github.com/observerly/iris/pkg/statistics"
	"github.com/observerly/sidera/pkg/humanize"
	"github.com/spf13/cobra"

	"github.com/lumenforge/astromatch/internal/utils"
	"github.com/lumenforge/astromatch/pkg/catalog"
	"github.com/lumenforge/astromatch/pkg/matcher"
)

/*****************************************************************************************************************/

var (
	InputFileLocation   string
	CatalogFileLocation string
	RA                  float32
	Dec                 float32
	PixelScaleX         float64
	PixelScaleY         float64
	Asterism            int
	QuadsTolerance      float64
	PixelTolerance      float64
	MinMatch            float64
)

/*****************************************************************************************************************/

func getFilePathStem(file *os.File) string {
	path := file.Name()
	directory := filepath.Dir(path)
	base := filepath.Base(path)
	extension := filepath.Ext(base)
	name := strings.TrimSuffix(base, extension)
	return filepath.Join(directory, name)
}

/*****************************************************************************************************************/

var AstrometryCommand = &cobra.Command{
	Use:   "astrometry",
	Short: "astrometry",
	Long:  "resolve a World Coordinate System for a FITS exposure against a supplied catalog",
	Run: func(cmd *cobra.Command, args []string) {
		inputFile, err := os.Open(InputFileLocation)
		if err != nil {
			fmt.Println("failed to open input file:", err)
			cmd.Usage()
			return
		}
		defer inputFile.Close()

		fmt.Println("Input File Location:", InputFileLocation)

		catalogFile, err := os.Open(CatalogFileLocation)
		if err != nil {
			fmt.Println("failed to open catalog file:", err)
			cmd.Usage()
			return
		}
		defer catalogFile.Close()

		params := RunSolverParams{
			InputFile:      inputFile,
			CatalogFile:    catalogFile,
			RA:             RA,
			Dec:            Dec,
			PixelScaleX:    PixelScaleX,
			PixelScaleY:    PixelScaleY,
			Asterism:       Asterism,
			QuadsTolerance: QuadsTolerance,
			PixelTolerance: PixelTolerance,
			MinMatch:       MinMatch,
		}

		if err := RunSolver(params); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	},
}

/*****************************************************************************************************************/

func init() {
	AstrometryCommand.Flags().StringVarP(
		&InputFileLocation,
		"input",
		"i",
		"",
		"The input FITS file location on the filesystem",
	)
	AstrometryCommand.MarkFlagRequired("input")

	AstrometryCommand.Flags().StringVarP(
		&CatalogFileLocation,
		"catalog",
		"c",
		"",
		"A JSON file holding the catalog sources ([]catalog.Source) to register against",
	)
	AstrometryCommand.MarkFlagRequired("catalog")

	AstrometryCommand.Flags().Float32VarP(
		&RA,
		"ra",
		"",
		float32(math.NaN()),
		"The approximate right ascension of the image, if not recoverable from its headers",
	)

	AstrometryCommand.Flags().Float32VarP(
		&Dec,
		"dec",
		"",
		float32(math.NaN()),
		"The approximate declination of the image, if not recoverable from its headers",
	)

	AstrometryCommand.Flags().Float64VarP(
		&PixelScaleX,
		"pixel-scale-x",
		"x",
		math.Inf(-1),
		"The pixel scale in the x-axis of the image, in degrees/pixel",
	)

	AstrometryCommand.Flags().Float64VarP(
		&PixelScaleY,
		"pixel-scale-y",
		"y",
		math.Inf(-1),
		"The pixel scale in the y-axis of the image, in degrees/pixel",
	)

	AstrometryCommand.Flags().IntVarP(
		&Asterism,
		"asterism",
		"a",
		4,
		"The asterism tuple size to hash on: 3 (triangle) or 4 (quad)",
	)

	AstrometryCommand.Flags().Float64VarP(
		&QuadsTolerance,
		"quads-tolerance",
		"",
		0.02,
		"The hash-space radius for candidate pairing",
	)

	AstrometryCommand.Flags().Float64VarP(
		&PixelTolerance,
		"pixel-tolerance",
		"",
		12,
		"The pixel-space inlier distance threshold",
	)

	AstrometryCommand.Flags().Float64VarP(
		&MinMatch,
		"min-match",
		"",
		0.7,
		"The fraction of the pixel point set that must cross-match to accept a candidate transform",
	)
}

/*****************************************************************************************************************/

type RunSolverParams struct {
	InputFile      *os.File `json:"inputFile"`
	CatalogFile    *os.File `json:"catalogFile"`
	RA             float32  `json:"ra"`
	Dec            float32  `json:"dec"`
	PixelScaleX    float64  `json:"pixelScaleX"`
	PixelScaleY    float64  `json:"pixelScaleY"`
	Asterism       int      `json:"asterism"`
	QuadsTolerance float64  `json:"quadsTolerance"`
	PixelTolerance float64  `json:"pixelTolerance"`
	MinMatch       float64  `json:"minMatch"`
}

/*****************************************************************************************************************/

// extractPixels runs sigma-clipped background estimation and bright-pixel extraction over the
// exposure, returning up to limit of the brightest centroids as a plain point set.
func extractPixels(fit *fits.FITSImage, limit int) [][2]float64 {
	xs := int(fit.Header.Naxis1)
	ys := int(fit.Header.Naxis2)

	st := stats.NewStats(fit.Data, fit.ADU, xs)
	location, scale := st.FastApproxSigmaClippedMedianAndQn()

	sexp := photometry.NewStarsExtractor(fit.Data, xs, ys, 16, fit.ADU)
	sexp.Threshold = location + scale*2.5

	stars := sexp.GetBrightPixels()

	sort.Slice(stars, func(i, j int) bool {
		return stars[i].Intensity > stars[j].Intensity
	})

	if limit > len(stars) {
		limit = len(stars)
	}
	stars = stars[:limit]

	pixels := make([][2]float64, len(stars))
	for i, s := range stars {
		pixels[i] = [2]float64{float64(s.X), float64(s.Y)}
	}

	return pixels
}

/*****************************************************************************************************************/

func loadCatalogSources(file *os.File) ([]catalog.Source, error) {
	var sources []catalog.Source
	if err := json.NewDecoder(file).Decode(&sources); err != nil {
		return nil, fmt.Errorf("failed to decode catalog sources: %w", err)
	}
	return sources, nil
}

/*****************************************************************************************************************/

func RunSolver(params RunSolverParams) error {
	fit := fits.NewFITSImage(2, 0, 0, 65535)

	if err := fit.Read(params.InputFile); err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	ra, err := utils.ResolveOrExtractRAFromHeaders(params.RA, fit.Header)
	if err != nil {
		return fmt.Errorf("failed to resolve or extract RA from headers: %w", err)
	}
	log.Printf("Right Ascension: %v° (%s)", ra, humanize.FormatDecimalToDMS(float64(ra), "%s%dh%dm%.2fs"))

	dec, err := utils.ResolveOrExtractDecFromHeaders(params.Dec, fit.Header)
	if err != nil {
		return fmt.Errorf("failed to resolve or extract Dec from headers: %w", err)
	}
	log.Printf("Declination: %v° (%s)", dec, humanize.FormatDecimalToDMS(float64(dec), "%s%d°%d'%.2f\""))

	height, err := utils.ExtractImageHeightFromHeaders(fit.Header)
	if err != nil {
		return fmt.Errorf("failed to extract height from headers: %w", err)
	}

	width, err := utils.ExtractImageWidthFromHeaders(fit.Header)
	if err != nil {
		return fmt.Errorf("failed to extract width from headers: %w", err)
	}
	log.Printf("Frame: %dx%d pixels", width, height)

	sources, err := loadCatalogSources(params.CatalogFile)
	if err != nil {
		return err
	}
	log.Printf("Catalog: %d sources", len(sources))

	pixels := extractPixels(fit, 64)
	log.Printf("Extracted %d bright-pixel centroids", len(pixels))

	opts := matcher.DefaultOptions()
	opts.Asterism = params.Asterism
	opts.QuadsTolerance = params.QuadsTolerance
	opts.Tolerance = params.PixelTolerance
	opts.MinMatch = params.MinMatch

	fit.Header.Set("WCSAXES", 2, "Number of World Coordinate System axes")

	solved, pairs, err := matcher.ComputeWCS(pixels, sources, opts)
	if err != nil {
		return fmt.Errorf("failed to compute wcs: %w", err)
	}

	log.Printf("Matched %d/%d pixel centroids against the catalog", len(pairs), len(pixels))

	fmt.Printf("CRPIX1: %.6f\n", solved.CRPIX1)
	fmt.Printf("CRPIX2: %.6f\n", solved.CRPIX2)
	fmt.Printf("CRVAL1: %.6f\n", solved.CRVAL1)
	fmt.Printf("CRVAL2: %.6f\n", solved.CRVAL2)
	fmt.Printf("CD1_1:  %.9f\n", solved.CD1_1)
	fmt.Printf("CD1_2:  %.9f\n", solved.CD1_2)
	fmt.Printf("CD2_1:  %.9f\n", solved.CD2_1)
	fmt.Printf("CD2_2:  %.9f\n", solved.CD2_2)

	fit.Header.Set("CRPIX1", solved.CRPIX1, "X pixel coordinate of reference point")
	fit.Header.Set("CRPIX2", solved.CRPIX2, "Y pixel coordinate of reference point")
	fit.Header.Set("CRVAL1", solved.CRVAL1, "Right ascension at reference point")
	fit.Header.Set("CRVAL2", solved.CRVAL2, "Declination at reference point")
	fit.Header.Set("CD1_1", solved.CD1_1, "Coordinate transformation matrix element")
	fit.Header.Set("CD1_2", solved.CD1_2, "Coordinate transformation matrix element")
	fit.Header.Set("CD2_1", solved.CD2_1, "Coordinate transformation matrix element")
	fit.Header.Set("CD2_2", solved.CD2_2, "Coordinate transformation matrix element")

	buf, err := fit.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("failed to write to buffer: %w", err)
	}

	stem := getFilePathStem(params.InputFile)

	outputFile, err := os.Create(fmt.Sprintf("%s.wcs.fits", stem))
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outputFile.Close()

	if _, err := buf.WriteTo(outputFile); err != nil {
		return fmt.Errorf("failed to write to output file: %w", err)
	}

	wcsOutputFile, err := os.Create(fmt.Sprintf("%s.wcs.json", stem))
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer wcsOutputFile.Close()

	encoder := json.NewEncoder(wcsOutputFile)
	encoder.SetIndent("", "\t")
	if err := encoder.Encode(solved); err != nil {
		return fmt.Errorf("failed to encode wcs solution to json: %w", err)
	}

	fmt.Printf("Solution written to: %s\n", outputFile.Name())

	return nil
}

/*****************************************************************************************************************/

package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"gridiron/domain/table"
	"gridiron/internal/errors"
)

// PairResult holds a fitted linear relationship between two dataset columns
type PairResult struct {
	XColumn     string
	YColumn     string
	XS          []float64
	YS          []float64
	Slope       float64
	Intercept   float64
	Correlation float64
	SampleSize  int
}

// AnalyzePair validates that both columns exist, coerces them to numbers,
// drops every row where either side is absent, then fits a degree-1 least
// squares line and computes the Pearson correlation of the cleaned series.
//
// Fewer than two cleaned rows, or a constant X column, leave the fit
// undefined and are reported as DEGENERATE_INPUT rather than producing NaN
// coefficients.
func AnalyzePair(tbl *table.Table, yColumn, xColumn string) (*PairResult, error) {
	if err := tbl.Require(yColumn, xColumn); err != nil {
		return nil, err
	}

	xCells := table.CoerceColumn(tbl.Column(xColumn))
	yCells := table.CoerceColumn(tbl.Column(yColumn))
	xs, ys := table.DropMissingPairs(xCells, yCells)

	if len(xs) < 2 {
		return nil, errors.DegenerateInput(fmt.Sprintf(
			"need at least 2 rows with numeric %q and %q values, have %d", xColumn, yColumn, len(xs)))
	}
	// min == max catches constant columns exactly, unlike a variance check.
	if floats.Min(xs) == floats.Max(xs) {
		return nil, errors.DegenerateInput(fmt.Sprintf(
			"column %q is constant across all usable rows, line of best fit is undefined", xColumn))
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	correlation := stat.Correlation(xs, ys, nil)

	return &PairResult{
		XColumn:     xColumn,
		YColumn:     yColumn,
		XS:          xs,
		YS:          ys,
		Slope:       slope,
		Intercept:   intercept,
		Correlation: correlation,
		SampleSize:  len(xs),
	}, nil
}

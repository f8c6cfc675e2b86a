package table

import (
	"math"
	"strconv"
	"strings"
)

// Cell is the result of coercing one raw cell: a float64 that may be absent.
type Cell struct {
	Value float64
	Valid bool
}

// ParseNumeric attempts to parse a raw cell as a finite float64.
// Empty or whitespace-only cells are absent; NaN and infinities are rejected.
func ParseNumeric(raw string) Cell {
	cleanVal := strings.TrimSpace(raw)
	if cleanVal == "" {
		return Cell{}
	}

	val, err := strconv.ParseFloat(cleanVal, 64)
	if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
		return Cell{}
	}
	return Cell{Value: val, Valid: true}
}

// CoerceColumn applies ParseNumeric to every value, preserving order.
func CoerceColumn(values []string) []Cell {
	cells := make([]Cell, len(values))
	for i, v := range values {
		cells[i] = ParseNumeric(v)
	}
	return cells
}

// ValidValues returns just the present values of a coerced column, in order.
func ValidValues(cells []Cell) []float64 {
	out := make([]float64, 0, len(cells))
	for _, c := range cells {
		if c.Valid {
			out = append(out, c.Value)
		}
	}
	return out
}

// DropMissingPairs filters two coerced columns down to the rows where both
// sides are present, preserving relative order. Both slices must have the
// same length.
func DropMissingPairs(xs, ys []Cell) ([]float64, []float64) {
	xClean := make([]float64, 0, len(xs))
	yClean := make([]float64, 0, len(ys))
	for i := range xs {
		if xs[i].Valid && ys[i].Valid {
			xClean = append(xClean, xs[i].Value)
			yClean = append(yClean, ys[i].Value)
		}
	}
	return xClean, yClean
}
